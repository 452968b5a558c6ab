package financial

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

// Movement is a financial movement of a process (commitment, liquidation, reinforcement...)
type Movement struct {
	ID          string          `db:"id" json:"id"`
	ProcessID   string          `db:"processo_id" json:"processo_id"`
	Type        string          `db:"tipo" json:"tipo"`
	Amount      decimal.Decimal `db:"valor" json:"valor"`
	Date        types.Date      `db:"data" json:"data"`
	Description *string         `db:"descricao" json:"descricao,omitempty"`
	Responsible *string         `db:"responsavel" json:"responsavel,omitempty"`
	types.BaseModel
}

func (m *Movement) HistoryFields() history.Fields {
	return history.Fields{
		"tipo":        history.Text(m.Type),
		"valor":       history.Money(m.Amount),
		"data":        history.Date(m.Date),
		"descricao":   history.OptionalText(m.Description),
		"responsavel": history.OptionalText(m.Responsible),
	}
}
