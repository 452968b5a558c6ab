package testutil

import (
	"context"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/document"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/financial"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/fiscal"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/inspection"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/invoice"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/observation"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/payment"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

// childKey is what the store needs to know about a process child row
type childKey struct {
	ID        string
	ProcessID string
	TenantID  string
	CreatedAt time.Time
}

// InMemoryChildStore stores the rows of one process child table
type InMemoryChildStore[T any] struct {
	*InMemoryStore[*T]
	Faults
	entity string
	key    func(*T) childKey
}

func newChildStore[T any](entity string, key func(*T) childKey) *InMemoryChildStore[T] {
	return &InMemoryChildStore[T]{
		InMemoryStore: NewInMemoryStore[*T](),
		entity:        entity,
		key:           key,
	}
}

func (s *InMemoryChildStore[T]) notFound(id string) error {
	return ierr.NewErrorf("%s not found", s.entity).
		WithHintf("%s not found", s.entity).
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryChildStore[T]) Create(ctx context.Context, item *T) error {
	if err := s.fault("create"); err != nil {
		return err
	}
	c := *item
	return s.InMemoryStore.Create(ctx, s.key(item).ID, &c)
}

func (s *InMemoryChildStore[T]) Get(ctx context.Context, id string) (*T, error) {
	if _, err := postgres.RequireTenantID(ctx); err != nil {
		return nil, err
	}
	if err := s.fault("get"); err != nil {
		return nil, err
	}
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenantFilter(ctx, s.key(item).TenantID) {
		return nil, s.notFound(id)
	}
	c := *item
	return &c, nil
}

func (s *InMemoryChildStore[T]) Update(ctx context.Context, item *T) error {
	if err := s.fault("update"); err != nil {
		return err
	}
	c := *item
	return s.InMemoryStore.Update(ctx, s.key(item).ID, &c)
}

func (s *InMemoryChildStore[T]) Delete(ctx context.Context, id string) error {
	if _, err := postgres.RequireTenantID(ctx); err != nil {
		return err
	}
	if err := s.fault("delete"); err != nil {
		return err
	}
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenantFilter(ctx, s.key(item).TenantID) {
		return s.notFound(id)
	}
	return s.InMemoryStore.Delete(ctx, id)
}

// ListByProcess returns the rows of the process, newest first
func (s *InMemoryChildStore[T]) ListByProcess(ctx context.Context, processID string) ([]*T, error) {
	if _, err := postgres.RequireTenantID(ctx); err != nil {
		return nil, err
	}
	if err := s.fault("list"); err != nil {
		return nil, err
	}
	return s.InMemoryStore.List(ctx, processID, func(ctx context.Context, item *T, f interface{}) bool {
		k := s.key(item)
		return k.ProcessID == f.(string) && CheckTenantFilter(ctx, k.TenantID)
	}, func(a, b *T) bool {
		ka, kb := s.key(a), s.key(b)
		if ka.CreatedAt.Equal(kb.CreatedAt) {
			return ka.ID > kb.ID
		}
		return ka.CreatedAt.After(kb.CreatedAt)
	})
}

type (
	InMemoryFinancialStore   = InMemoryChildStore[financial.Movement]
	InMemoryInvoiceStore     = InMemoryChildStore[invoice.Invoice]
	InMemoryPaymentStore     = InMemoryChildStore[payment.Payment]
	InMemoryDocumentStore    = InMemoryChildStore[document.Document]
	InMemoryFiscalStore      = InMemoryChildStore[fiscal.Fiscal]
	InMemoryInspectionStore  = InMemoryChildStore[inspection.Inspection]
	InMemoryObservationStore = InMemoryChildStore[observation.Observation]
)

func NewInMemoryFinancialStore() *InMemoryFinancialStore {
	return newChildStore("Financial movement", func(m *financial.Movement) childKey {
		return childKey{m.ID, m.ProcessID, m.TenantID, m.CreatedAt}
	})
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return newChildStore("Invoice", func(i *invoice.Invoice) childKey {
		return childKey{i.ID, i.ProcessID, i.TenantID, i.CreatedAt}
	})
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return newChildStore("Payment", func(p *payment.Payment) childKey {
		return childKey{p.ID, p.ProcessID, p.TenantID, p.CreatedAt}
	})
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return newChildStore("Document", func(d *document.Document) childKey {
		return childKey{d.ID, d.ProcessID, d.TenantID, d.CreatedAt}
	})
}

func NewInMemoryFiscalStore() *InMemoryFiscalStore {
	return newChildStore("Fiscal", func(f *fiscal.Fiscal) childKey {
		return childKey{f.ID, f.ProcessID, f.TenantID, f.CreatedAt}
	})
}

func NewInMemoryInspectionStore() *InMemoryInspectionStore {
	return newChildStore("Inspection", func(i *inspection.Inspection) childKey {
		return childKey{i.ID, i.ProcessID, i.TenantID, i.CreatedAt}
	})
}

func NewInMemoryObservationStore() *InMemoryObservationStore {
	return newChildStore("Observation", func(o *observation.Observation) childKey {
		return childKey{o.ID, o.ProcessID, o.TenantID, o.CreatedAt}
	})
}
