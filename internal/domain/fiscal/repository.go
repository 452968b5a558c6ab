package fiscal

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, f *Fiscal) error
	Get(ctx context.Context, id string) (*Fiscal, error)
	Update(ctx context.Context, f *Fiscal) error
	ListByProcess(ctx context.Context, processID string) ([]*Fiscal, error)
}
