package sequence

import (
	"context"
)

type Repository interface {
	// Next atomically increments and returns the counter of the scope.
	// A scope seen for the first time is seeded from the processes already numbered in it.
	Next(ctx context.Context, scope Scope) (int64, error)
	// CountInScope counts processes whose number belongs to the scope
	CountInScope(ctx context.Context, scope Scope) (int64, error)
}
