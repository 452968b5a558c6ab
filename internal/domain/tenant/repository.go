package tenant

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
	// FirstActive returns the oldest active tenant, NotFound when there is none
	FirstActive(ctx context.Context) (*Tenant, error)
}
