package tenant

import (
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Tenant is a municipality (prefeitura). Every process belongs to exactly one.
type Tenant struct {
	ID        string       `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	CNPJ      *string      `db:"cnpj" json:"cnpj,omitempty"`
	City      *string      `db:"city" json:"city,omitempty"`
	State     *string      `db:"state" json:"state,omitempty"`
	Status    types.Status `db:"status" json:"status"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

func NewTenant(name string) *Tenant {
	now := time.Now().UTC()
	return &Tenant{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT),
		Name:      name,
		Status:    types.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (t *Tenant) IsActive() bool {
	return t != nil && t.Status == types.StatusActive
}
