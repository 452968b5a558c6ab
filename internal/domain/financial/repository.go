package financial

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, m *Movement) error
	Get(ctx context.Context, id string) (*Movement, error)
	Update(ctx context.Context, m *Movement) error
	ListByProcess(ctx context.Context, processID string) ([]*Movement, error)
}
