package dto

import (
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
)

type CreateTenantRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	CNPJ  *string `json:"cnpj,omitempty" validate:"omitempty,max=18"`
	City  *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State *string `json:"state,omitempty" validate:"omitempty,len=2"`
}

func (r *CreateTenantRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.State != nil {
		state := strings.ToUpper(strings.TrimSpace(*r.State))
		r.State = &state
	}
	return validator.ValidateRequest(r)
}

func (r *CreateTenantRequest) ToTenant() *tenant.Tenant {
	t := tenant.NewTenant(r.Name)
	t.CNPJ = cleanText(r.CNPJ)
	t.City = cleanText(r.City)
	t.State = cleanText(r.State)
	return t
}

type TenantResponse struct {
	*tenant.Tenant
}

func NewTenantResponse(t *tenant.Tenant) *TenantResponse {
	return &TenantResponse{Tenant: t}
}
