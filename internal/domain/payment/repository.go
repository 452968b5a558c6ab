package payment

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByProcess(ctx context.Context, processID string) ([]*Payment, error)
}
