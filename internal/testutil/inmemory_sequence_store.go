package testutil

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/sequence"
)

// InMemorySequenceStore implements sequence.Repository on top of a process store,
// seeding a scope the same way the postgres counter does
type InMemorySequenceStore struct {
	Faults
	processes *InMemoryProcessStore

	mu       sync.Mutex
	counters map[sequence.Scope]int64
}

func NewInMemorySequenceStore(processes *InMemoryProcessStore) *InMemorySequenceStore {
	return &InMemorySequenceStore{
		processes: processes,
		counters:  make(map[sequence.Scope]int64),
	}
}

func (s *InMemorySequenceStore) Next(ctx context.Context, scope sequence.Scope) (int64, error) {
	if err := s.fault("next"); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.counters[scope]; ok {
		s.counters[scope] = last + 1
		return last + 1, nil
	}

	numbers := s.processes.numbersWithPrefix(scope.TenantID, scope.NumberPrefix())
	seed := int64(len(numbers))
	for _, n := range numbers {
		v, err := strconv.ParseInt(strings.TrimPrefix(n, scope.NumberPrefix()), 10, 64)
		if err == nil && v > seed {
			seed = v
		}
	}
	s.counters[scope] = seed + 1
	return seed + 1, nil
}

func (s *InMemorySequenceStore) CountInScope(ctx context.Context, scope sequence.Scope) (int64, error) {
	if err := s.fault("count"); err != nil {
		return 0, err
	}
	return int64(len(s.processes.numbersWithPrefix(scope.TenantID, scope.NumberPrefix()))), nil
}

// Clear forgets every counter
func (s *InMemorySequenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = make(map[sequence.Scope]int64)
}
