package process

import (
	"context"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Repository is scoped to the tenant in ctx
type Repository interface {
	Create(ctx context.Context, p *Process) error
	Get(ctx context.Context, id string) (*Process, error)
	Update(ctx context.Context, p *Process) error
	List(ctx context.Context, filter *types.ProcessFilter) ([]*Process, error)
	Count(ctx context.Context, filter *types.ProcessFilter) (int, error)
	// Stats summarizes non canceled processes, contracts ending within window of now are listed
	Stats(ctx context.Context, now time.Time, window time.Duration) (*Stats, error)
}
