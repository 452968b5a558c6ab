package dto

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/fiscal"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
)

type CreateFiscalRequest struct {
	Name               string  `json:"nome" validate:"required,max=255"`
	Role               string  `json:"cargo" validate:"required,max=255"`
	RegistrationNumber *string `json:"matricula,omitempty"`
	Phone              *string `json:"telefone,omitempty"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Notes              *string `json:"observacoes,omitempty"`
	Kind               *string `json:"tipo_fiscal,omitempty" validate:"omitempty,oneof=titular suplente"`
}

func (r *CreateFiscalRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	return validator.ValidateRequest(r)
}

func (r *CreateFiscalRequest) ToFiscal(ctx context.Context, processID string) *fiscal.Fiscal {
	kind := fiscal.DefaultKind
	if k := cleanText(r.Kind); k != nil {
		kind = *k
	}
	return &fiscal.Fiscal{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FISCAL),
		ProcessID:          processID,
		Name:               r.Name,
		Role:               r.Role,
		RegistrationNumber: cleanText(r.RegistrationNumber),
		Phone:              cleanText(r.Phone),
		Email:              cleanText(r.Email),
		Notes:              cleanText(r.Notes),
		Kind:               kind,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
}

type UpdateFiscalRequest struct {
	Name               *string `json:"nome,omitempty"`
	Role               *string `json:"cargo,omitempty"`
	RegistrationNumber *string `json:"matricula,omitempty"`
	Phone              *string `json:"telefone,omitempty"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Notes              *string `json:"observacoes,omitempty"`
	Kind               *string `json:"tipo_fiscal,omitempty" validate:"omitempty,oneof=titular suplente"`

	present presentFields
}

func (r *UpdateFiscalRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateFiscalRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	present, err := decodePresent(data)
	if err != nil {
		return err
	}
	*r = UpdateFiscalRequest(a)
	r.present = present
	return nil
}

func (r *UpdateFiscalRequest) has(field string, set bool) bool {
	if r.present == nil {
		return set
	}
	return r.present.has(field)
}

func (r *UpdateFiscalRequest) Validate() error {
	if r.has("nome", r.Name != nil) && (r.Name == nil || blank(*r.Name)) {
		return invalidFieldError("nome", "Name cannot be empty")
	}
	if r.has("cargo", r.Role != nil) && (r.Role == nil || blank(*r.Role)) {
		return invalidFieldError("cargo", "Role cannot be empty")
	}
	if r.has("tipo_fiscal", r.Kind != nil) && (r.Kind == nil || blank(*r.Kind)) {
		return invalidFieldError("tipo_fiscal", "Fiscal kind cannot be empty")
	}
	return validator.ValidateRequest(r)
}

func (r *UpdateFiscalRequest) Apply(f *fiscal.Fiscal) {
	if r.has("nome", r.Name != nil) {
		f.Name = strings.TrimSpace(*r.Name)
	}
	if r.has("cargo", r.Role != nil) {
		f.Role = strings.TrimSpace(*r.Role)
	}
	if r.has("matricula", r.RegistrationNumber != nil) {
		f.RegistrationNumber = cleanText(r.RegistrationNumber)
	}
	if r.has("telefone", r.Phone != nil) {
		f.Phone = cleanText(r.Phone)
	}
	if r.has("email", r.Email != nil) {
		f.Email = cleanText(r.Email)
	}
	if r.has("observacoes", r.Notes != nil) {
		f.Notes = cleanText(r.Notes)
	}
	if r.has("tipo_fiscal", r.Kind != nil) {
		f.Kind = strings.TrimSpace(*r.Kind)
	}
}
