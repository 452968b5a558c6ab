package document

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	ListByProcess(ctx context.Context, processID string) ([]*Document, error)
}
