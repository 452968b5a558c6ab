package testutil

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
)

type InMemoryTenantStore struct {
	*InMemoryStore[*tenant.Tenant]
	Faults
}

func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		InMemoryStore: NewInMemoryStore[*tenant.Tenant](),
	}
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	if err := s.fault("create"); err != nil {
		return err
	}
	c := *t
	return s.InMemoryStore.Create(ctx, t.ID, &c)
}

func (s *InMemoryTenantStore) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	if err := s.fault("get"); err != nil {
		return nil, err
	}
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, tenant.NewTenantNotFoundError(id)
	}
	c := *t
	return &c, nil
}

func (s *InMemoryTenantStore) List(ctx context.Context) ([]*tenant.Tenant, error) {
	if err := s.fault("list"); err != nil {
		return nil, err
	}
	return s.InMemoryStore.List(ctx, nil, nil, tenantsOldestFirst)
}

func (s *InMemoryTenantStore) FirstActive(ctx context.Context) (*tenant.Tenant, error) {
	if err := s.fault("first_active"); err != nil {
		return nil, err
	}
	tenants, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, t *tenant.Tenant, _ interface{}) bool {
		return t.IsActive()
	}, tenantsOldestFirst)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, tenant.NewTenantNotFoundError("")
	}
	return tenants[0], nil
}

func tenantsOldestFirst(a, b *tenant.Tenant) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
