package invoice

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id string) error
	ListByProcess(ctx context.Context, processID string) ([]*Invoice, error)
}
