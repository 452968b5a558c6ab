package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InMemoryProcessStore implements process.Repository
type InMemoryProcessStore struct {
	*InMemoryStore[*process.Process]
	Faults
}

func NewInMemoryProcessStore() *InMemoryProcessStore {
	return &InMemoryProcessStore{
		InMemoryStore: NewInMemoryStore[*process.Process](),
	}
}

func copyProcess(p *process.Process) *process.Process {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func (s *InMemoryProcessStore) Create(ctx context.Context, p *process.Process) error {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return err
	}
	if err := s.fault("create"); err != nil {
		return err
	}
	p.TenantID = tenantID
	return s.InMemoryStore.Create(ctx, p.ID, copyProcess(p))
}

func (s *InMemoryProcessStore) Get(ctx context.Context, id string) (*process.Process, error) {
	if err := s.fault("get"); err != nil {
		return nil, err
	}
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenantFilter(ctx, p.TenantID) {
		return nil, process.NewNotFoundError(id)
	}
	return copyProcess(p), nil
}

func (s *InMemoryProcessStore) Update(ctx context.Context, p *process.Process) error {
	if err := s.fault("update"); err != nil {
		return err
	}
	existing, err := s.InMemoryStore.Get(ctx, p.ID)
	if err != nil || !CheckTenantFilter(ctx, existing.TenantID) {
		return process.NewNotFoundError(p.ID)
	}
	updated := copyProcess(p)
	updated.Number = existing.Number
	updated.Type = existing.Type
	updated.TenantID = existing.TenantID
	updated.CreatedAt = existing.CreatedAt
	updated.CreatedBy = existing.CreatedBy
	return s.InMemoryStore.Update(ctx, p.ID, updated)
}

func (s *InMemoryProcessStore) List(ctx context.Context, filter *types.ProcessFilter) ([]*process.Process, error) {
	if err := s.fault("list"); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = types.NewNoLimitProcessFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	items, err := s.InMemoryStore.List(ctx, filter, processFilterFn, processSortFn(filter))
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(p *process.Process, _ int) *process.Process { return copyProcess(p) }), nil
}

func (s *InMemoryProcessStore) Count(ctx context.Context, filter *types.ProcessFilter) (int, error) {
	if err := s.fault("count"); err != nil {
		return 0, err
	}
	if filter == nil {
		filter = types.NewNoLimitProcessFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, processFilterFn)
}

func (s *InMemoryProcessStore) Stats(ctx context.Context, now time.Time, window time.Duration) (*process.Stats, error) {
	if err := s.fault("stats"); err != nil {
		return nil, err
	}
	all, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, p *process.Process, _ interface{}) bool {
		return CheckTenantFilter(ctx, p.TenantID)
	}, func(a, b *process.Process) bool {
		return dateBefore(a.EndDate, b.EndDate)
	})
	if err != nil {
		return nil, err
	}

	stats := &process.Stats{
		ByStatus:            make(map[string]int),
		ByModality:          make(map[string]int),
		ByDepartment:        make(map[string]int),
		TotalEstimatedValue: decimal.Zero,
		ExpiringContracts:   make([]*process.Process, 0),
	}
	from := types.DateOf(now)
	to := types.DateOf(now.Add(window))

	for _, p := range all {
		stats.Total++
		stats.ByStatus[string(p.Status)]++
		if p.IsTerminal() {
			continue
		}
		if p.Modality != nil {
			stats.ByModality[string(*p.Modality)]++
		}
		if p.Department != nil {
			stats.ByDepartment[*p.Department]++
		}
		if p.EstimatedValue != nil {
			stats.TotalEstimatedValue = stats.TotalEstimatedValue.Add(*p.EstimatedValue)
		}
		if p.Type == types.ProcessTypeContract && p.Status == types.ContractStatusActive && p.EndDate != nil &&
			!p.EndDate.Before(from.Time) && !p.EndDate.After(to.Time) {
			stats.ExpiringContracts = append(stats.ExpiringContracts, copyProcess(p))
		}
	}
	return stats, nil
}

// numbersWithPrefix lists the process numbers of a tenant starting with prefix
func (s *InMemoryProcessStore) numbersWithPrefix(tenantID, prefix string) []string {
	items, _ := s.InMemoryStore.List(context.Background(), nil, func(_ context.Context, p *process.Process, _ interface{}) bool {
		return p.TenantID == tenantID && strings.HasPrefix(p.Number, prefix)
	}, nil)
	return lo.Map(items, func(p *process.Process, _ int) string { return p.Number })
}

func processFilterFn(ctx context.Context, p *process.Process, f interface{}) bool {
	filter, ok := f.(*types.ProcessFilter)
	if !ok || filter == nil {
		return CheckTenantFilter(ctx, p.TenantID)
	}
	if !CheckTenantFilter(ctx, p.TenantID) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		matches := strings.Contains(strings.ToLower(p.Number), needle) ||
			strings.Contains(strings.ToLower(p.Object), needle) ||
			strings.Contains(strings.ToLower(lo.FromPtr(p.Responsible)), needle)
		if !matches {
			return false
		}
	}
	if filter.Type != "" && p.Type != filter.Type {
		return false
	}
	if filter.Modality != "" && (p.Modality == nil || *p.Modality != filter.Modality) {
		return false
	}
	if filter.Status != "" {
		if p.Status != filter.Status {
			return false
		}
	} else if !filter.IncludeTerminal && p.IsTerminal() {
		return false
	}
	if filter.Department != "" &&
		!strings.Contains(strings.ToLower(lo.FromPtr(p.Department)), strings.ToLower(filter.Department)) {
		return false
	}

	from, to, err := filter.OpenedRange()
	if err != nil {
		return false
	}
	if from != nil && (p.OpeningDate == nil || p.OpeningDate.Before(from.Time)) {
		return false
	}
	if to != nil && (p.OpeningDate == nil || p.OpeningDate.After(to.Time)) {
		return false
	}

	minValue, maxValue, err := filter.ValueRange()
	if err != nil {
		return false
	}
	if minValue != nil && (p.EstimatedValue == nil || p.EstimatedValue.LessThan(*minValue)) {
		return false
	}
	if maxValue != nil && (p.EstimatedValue == nil || p.EstimatedValue.GreaterThan(*maxValue)) {
		return false
	}
	return true
}

func processSortFn(filter *types.ProcessFilter) SortFunc[*process.Process] {
	asc := filter.QueryFilter != nil && filter.GetOrder() == types.OrderAsc
	sortBy := types.FILTER_DEFAULT_SORT
	if filter.QueryFilter != nil {
		sortBy = filter.GetSort()
	}
	return func(a, b *process.Process) bool {
		var less, equal bool
		switch sortBy {
		case "numero_processo":
			less, equal = a.Number < b.Number, a.Number == b.Number
		case "updated_at":
			less, equal = a.UpdatedAt.Before(b.UpdatedAt), a.UpdatedAt.Equal(b.UpdatedAt)
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			less = a.ID < b.ID
		}
		if asc {
			return less
		}
		return !less
	}
}

func dateBefore(a, b *types.Date) bool {
	if a == nil || b == nil {
		return b != nil
	}
	return a.Before(b.Time)
}
