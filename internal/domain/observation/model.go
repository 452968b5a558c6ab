package observation

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Observation is a free text note left on a process
type Observation struct {
	ID        string  `db:"id" json:"id"`
	ProcessID string  `db:"processo_id" json:"processo_id"`
	Content   string  `db:"conteudo" json:"conteudo"`
	UserName  *string `db:"usuario_nome" json:"usuario_nome,omitempty"`
	UserEmail *string `db:"usuario_email" json:"usuario_email,omitempty"`
	types.BaseModel
}
