package fiscal

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const DefaultKind = "titular"

// Fiscal is a contract inspector appointed to a process
type Fiscal struct {
	ID                 string  `db:"id" json:"id"`
	ProcessID          string  `db:"processo_id" json:"processo_id"`
	Name               string  `db:"nome" json:"nome"`
	Role               string  `db:"cargo" json:"cargo"`
	RegistrationNumber *string `db:"matricula" json:"matricula,omitempty"`
	Phone              *string `db:"telefone" json:"telefone,omitempty"`
	Email              *string `db:"email" json:"email,omitempty"`
	Notes              *string `db:"observacoes" json:"observacoes,omitempty"`
	Kind               string  `db:"tipo_fiscal" json:"tipo_fiscal"`
	types.BaseModel
}

func (f *Fiscal) HistoryFields() history.Fields {
	return history.Fields{
		"nome":        history.Text(f.Name),
		"cargo":       history.Text(f.Role),
		"matricula":   history.OptionalText(f.RegistrationNumber),
		"telefone":    history.OptionalText(f.Phone),
		"email":       history.OptionalText(f.Email),
		"observacoes": history.OptionalText(f.Notes),
		"tipo_fiscal": history.Text(f.Kind),
	}
}
