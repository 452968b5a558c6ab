package dto

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/financial"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateFinancialMovementRequest struct {
	Type        string          `json:"tipo" validate:"required,max=50"`
	Amount      decimal.Decimal `json:"valor"`
	Date        types.Date      `json:"data"`
	Description *string         `json:"descricao,omitempty"`
	Responsible *string         `json:"responsavel,omitempty"`
}

func (r *CreateFinancialMovementRequest) Validate() error {
	missing := make([]string, 0)
	if blank(r.Type) {
		missing = append(missing, "tipo")
	}
	if r.Amount.IsZero() {
		missing = append(missing, "valor")
	}
	if r.Date.IsZero() {
		missing = append(missing, "data")
	}
	if len(missing) > 0 {
		return missingFieldsError(missing)
	}
	return validator.ValidateRequest(r)
}

func (r *CreateFinancialMovementRequest) ToMovement(ctx context.Context, processID string) *financial.Movement {
	return &financial.Movement{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FINANCIAL),
		ProcessID:   processID,
		Type:        strings.TrimSpace(r.Type),
		Amount:      r.Amount,
		Date:        r.Date,
		Description: cleanText(r.Description),
		Responsible: cleanText(r.Responsible),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateFinancialMovementRequest struct {
	Type        *string          `json:"tipo,omitempty"`
	Amount      *decimal.Decimal `json:"valor,omitempty"`
	Date        *types.Date      `json:"data,omitempty"`
	Description *string          `json:"descricao,omitempty"`
	Responsible *string          `json:"responsavel,omitempty"`

	present presentFields
}

func (r *UpdateFinancialMovementRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateFinancialMovementRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	present, err := decodePresent(data)
	if err != nil {
		return err
	}
	*r = UpdateFinancialMovementRequest(a)
	r.present = present
	return nil
}

func (r *UpdateFinancialMovementRequest) has(field string, set bool) bool {
	if r.present == nil {
		return set
	}
	return r.present.has(field)
}

func (r *UpdateFinancialMovementRequest) Validate() error {
	if r.has("tipo", r.Type != nil) && (r.Type == nil || blank(*r.Type)) {
		return invalidFieldError("tipo", "Movement type cannot be empty")
	}
	if r.has("valor", r.Amount != nil) && (r.Amount == nil || r.Amount.IsZero()) {
		return invalidFieldError("valor", "Movement amount is required")
	}
	if r.has("data", r.Date != nil) && (r.Date == nil || r.Date.IsZero()) {
		return invalidFieldError("data", "Movement date is required")
	}
	return nil
}

func (r *UpdateFinancialMovementRequest) Apply(m *financial.Movement) {
	if r.has("tipo", r.Type != nil) {
		m.Type = strings.TrimSpace(*r.Type)
	}
	if r.has("valor", r.Amount != nil) {
		m.Amount = *r.Amount
	}
	if r.has("data", r.Date != nil) {
		m.Date = *r.Date
	}
	if r.has("descricao", r.Description != nil) {
		m.Description = cleanText(r.Description)
	}
	if r.has("responsavel", r.Responsible != nil) {
		m.Responsible = cleanText(r.Responsible)
	}
}
