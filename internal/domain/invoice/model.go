package invoice

import (
	"fmt"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

const DefaultStatus = "pendente"

// Invoice is a nota fiscal issued against a process
type Invoice struct {
	ID          string          `db:"id" json:"id"`
	ProcessID   string          `db:"processo_id" json:"processo_id"`
	Number      string          `db:"numero_nota" json:"numero_nota"`
	IssueDate   types.Date      `db:"data_emissao" json:"data_emissao"`
	DueDate     *types.Date     `db:"data_vencimento" json:"data_vencimento,omitempty"`
	Amount      decimal.Decimal `db:"valor" json:"valor"`
	Supplier    *string         `db:"fornecedor" json:"fornecedor,omitempty"`
	Description *string         `db:"descricao" json:"descricao,omitempty"`
	Status      string          `db:"status" json:"status"`
	FileName    *string         `db:"nome_arquivo" json:"nome_arquivo,omitempty"`
	FileURL     *string         `db:"url_arquivo" json:"url_arquivo,omitempty"`
	types.BaseModel
}

func (i *Invoice) HistoryFields() history.Fields {
	return history.Fields{
		"numero_nota":     history.Text(i.Number),
		"data_emissao":    history.Date(i.IssueDate),
		"data_vencimento": history.OptionalDate(i.DueDate),
		"valor":           history.Money(i.Amount),
		"fornecedor":      history.OptionalText(i.Supplier),
		"descricao":       history.OptionalText(i.Description),
		"status":          history.Text(i.Status),
		"nome_arquivo":    history.OptionalText(i.FileName),
	}
}

// Summary identifies the invoice in creation and deletion descriptions
func (i *Invoice) Summary() string {
	return fmt.Sprintf("invoice nº %s worth %s", i.Number, types.FormatCurrency(i.Amount))
}
