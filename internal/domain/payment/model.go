package payment

import (
	"fmt"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

const DefaultType = "outros"

// Payment is a payment made under a process
type Payment struct {
	ID                   string          `db:"id" json:"id"`
	ProcessID            string          `db:"processo_id" json:"processo_id"`
	Type                 string          `db:"tipo_pagamento" json:"tipo_pagamento"`
	PaymentProcessNumber *string         `db:"numero_processo_pagamento" json:"numero_processo_pagamento,omitempty"`
	PaidAt               types.Date      `db:"data_pagamento" json:"data_pagamento"`
	Amount               decimal.Decimal `db:"valor" json:"valor"`
	Method               *string         `db:"forma_pagamento" json:"forma_pagamento,omitempty"`
	Note                 *string         `db:"observacao" json:"observacao,omitempty"`
	ReceiptURL           *string         `db:"url_comprovante" json:"url_comprovante,omitempty"`
	ReceiptName          *string         `db:"nome_comprovante" json:"nome_comprovante,omitempty"`
	UserName             *string         `db:"usuario_nome" json:"usuario_nome,omitempty"`
	types.BaseModel
}

func (p *Payment) Summary() string {
	return fmt.Sprintf("payment of %s on %s", types.FormatCurrency(p.Amount), p.PaidAt.Display())
}
