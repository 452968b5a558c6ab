package dto

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/payment"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	Type                 *string         `json:"tipo_pagamento,omitempty"`
	PaymentProcessNumber *string         `json:"numero_processo_pagamento,omitempty"`
	PaidAt               types.Date      `json:"data_pagamento"`
	Amount               decimal.Decimal `json:"valor"`
	Method               *string         `json:"forma_pagamento,omitempty"`
	Note                 *string         `json:"observacao,omitempty"`
	ReceiptURL           *string         `json:"url_comprovante,omitempty"`
	ReceiptName          *string         `json:"nome_comprovante,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	missing := make([]string, 0)
	if r.PaidAt.IsZero() {
		missing = append(missing, "data_pagamento")
	}
	if r.Amount.IsZero() {
		missing = append(missing, "valor")
	}
	if len(missing) > 0 {
		return missingFieldsError(missing)
	}
	if r.Amount.IsNegative() {
		return invalidFieldError("valor", "Payment amount must be positive")
	}
	return nil
}

// ToPayment stamps the payment with the name of who registered it
func (r *CreatePaymentRequest) ToPayment(ctx context.Context, processID, userName string) *payment.Payment {
	kind := payment.DefaultType
	if t := cleanText(r.Type); t != nil {
		kind = *t
	}
	return &payment.Payment{
		ID:                   types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		ProcessID:            processID,
		Type:                 kind,
		PaymentProcessNumber: cleanText(r.PaymentProcessNumber),
		PaidAt:               r.PaidAt,
		Amount:               r.Amount,
		Method:               cleanText(r.Method),
		Note:                 cleanText(r.Note),
		ReceiptURL:           cleanText(r.ReceiptURL),
		ReceiptName:          cleanText(r.ReceiptName),
		UserName:             cleanText(&userName),
		BaseModel:            types.GetDefaultBaseModel(ctx),
	}
}
