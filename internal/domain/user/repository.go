package user

import (
	"context"
	"time"
)

// Repository is not tenant scoped: users are looked up before their tenant is known
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	AssignTenant(ctx context.Context, userID, tenantID string) error
	TouchLastAccess(ctx context.Context, userID string, at time.Time) error
}
