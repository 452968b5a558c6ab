package observation

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, o *Observation) error
	ListByProcess(ctx context.Context, processID string) ([]*Observation, error)
}
