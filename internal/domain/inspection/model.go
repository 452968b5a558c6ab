package inspection

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const DefaultStatus = "Em andamento"

// Inspection is a site visit or inspection record of a contract
type Inspection struct {
	ID            string     `db:"id" json:"id"`
	ProcessID     string     `db:"processo_id" json:"processo_id"`
	Type          string     `db:"tipo" json:"tipo"`
	InspectorName *string    `db:"responsavel_fiscal" json:"responsavel_fiscal,omitempty"`
	InspectedAt   types.Date `db:"data_vistoria" json:"data_vistoria"`
	Status        string     `db:"status" json:"status"`
	Note          *string    `db:"observacao" json:"observacao,omitempty"`
	FileURL       *string    `db:"arquivo_url" json:"arquivo_url,omitempty"`
	FileName      *string    `db:"arquivo_nome" json:"arquivo_nome,omitempty"`
	types.BaseModel
}
