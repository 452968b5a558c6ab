package testutil

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

// InMemoryHistoryStore implements history.Repository
type InMemoryHistoryStore struct {
	*InMemoryStore[*history.Entry]
	Faults
}

func NewInMemoryHistoryStore() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{
		InMemoryStore: NewInMemoryStore[*history.Entry](),
	}
}

func (s *InMemoryHistoryStore) Create(ctx context.Context, e *history.Entry) error {
	if err := s.fault("create"); err != nil {
		return err
	}
	c := *e
	return s.InMemoryStore.Create(ctx, e.ID, &c)
}

func (s *InMemoryHistoryStore) ListByProcess(ctx context.Context, processID string) ([]*history.Entry, error) {
	if _, err := postgres.RequireTenantID(ctx); err != nil {
		return nil, err
	}
	if err := s.fault("list"); err != nil {
		return nil, err
	}
	return s.InMemoryStore.List(ctx, processID, func(ctx context.Context, e *history.Entry, f interface{}) bool {
		return e.ProcessID == f.(string) && CheckTenantFilter(ctx, e.TenantID)
	}, func(a, b *history.Entry) bool {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// All returns every entry regardless of tenant, newest first
func (s *InMemoryHistoryStore) All() []*history.Entry {
	entries, _ := s.InMemoryStore.List(context.Background(), nil, nil, func(a, b *history.Entry) bool {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return entries
}
