package history

import (
	"context"
)

// Repository is append only
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	// ListByProcess returns entries newest first
	ListByProcess(ctx context.Context, processID string) ([]*Entry, error)
}
