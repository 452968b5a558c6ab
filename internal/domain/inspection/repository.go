package inspection

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, i *Inspection) error
	ListByProcess(ctx context.Context, processID string) ([]*Inspection, error)
}
