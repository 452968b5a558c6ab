package process

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

// Process is an administrative process: a bid (licitação) or a contract.
// Number is allocated once at creation and never changes.
type Process struct {
	ID             string              `db:"id" json:"id"`
	Number         string              `db:"numero_processo" json:"numero_processo"`
	Type           types.ProcessType   `db:"tipo" json:"tipo"`
	Object         string              `db:"objeto" json:"objeto"`
	Status         types.ProcessStatus `db:"status" json:"status"`
	Department     *string             `db:"secretaria" json:"secretaria,omitempty"`
	Modality       *types.Modality     `db:"modalidade" json:"modalidade,omitempty"`
	Responsible    *string             `db:"responsavel" json:"responsavel,omitempty"`
	EstimatedValue *decimal.Decimal    `db:"valor_estimado" json:"valor_estimado,omitempty"`
	TotalValue     *decimal.Decimal    `db:"valor_total" json:"valor_total,omitempty"`
	Supplier       *string             `db:"fornecedor" json:"fornecedor,omitempty"`
	SupplierCNPJ   *string             `db:"cnpj_fornecedor" json:"cnpj_fornecedor,omitempty"`
	OpeningDate    *types.Date         `db:"data_abertura" json:"data_abertura,omitempty"`
	StartDate      *types.Date         `db:"data_inicio" json:"data_inicio,omitempty"`
	EndDate        *types.Date         `db:"data_fim" json:"data_fim,omitempty"`
	FundingSource  *string             `db:"fonte_recursos" json:"fonte_recursos,omitempty"`
	Notes          *string             `db:"observacoes" json:"observacoes,omitempty"`
	types.BaseModel
}

// IsTerminal reports whether the process was canceled
func (p *Process) IsTerminal() bool {
	return p.Status == p.Type.TerminalStatus()
}

// HistoryFields is the auditable snapshot of the process
func (p *Process) HistoryFields() history.Fields {
	var modality *string
	if p.Modality != nil {
		m := string(*p.Modality)
		modality = &m
	}
	return history.Fields{
		"numero_processo": history.Text(p.Number),
		"tipo":            history.Text(string(p.Type)),
		"objeto":          history.Text(p.Object),
		"status":          history.Text(string(p.Status)),
		"secretaria":      history.OptionalText(p.Department),
		"modalidade":      history.OptionalText(modality),
		"responsavel":     history.OptionalText(p.Responsible),
		"valor_estimado":  history.OptionalMoney(p.EstimatedValue),
		"valor_total":     history.OptionalMoney(p.TotalValue),
		"fornecedor":      history.OptionalText(p.Supplier),
		"cnpj_fornecedor": history.OptionalText(p.SupplierCNPJ),
		"data_abertura":   history.OptionalDate(p.OpeningDate),
		"data_inicio":     history.OptionalDate(p.StartDate),
		"data_fim":        history.OptionalDate(p.EndDate),
		"fonte_recursos":  history.OptionalText(p.FundingSource),
		"observacoes":     history.OptionalText(p.Notes),
	}
}

// Stats is the dashboard summary of a tenant's processes
type Stats struct {
	Total               int             `json:"total"`
	ByStatus            map[string]int  `json:"by_status"`
	ByModality          map[string]int  `json:"by_modality"`
	ByDepartment        map[string]int  `json:"by_department"`
	TotalEstimatedValue decimal.Decimal `json:"total_estimated_value"`
	ExpiringContracts   []*Process      `json:"expiring_contracts"`
}
