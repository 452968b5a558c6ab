package user

import (
	"strings"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// User is a municipal employee. TenantID is empty until the user is linked to a municipality.
type User struct {
	ID           string         `db:"id" json:"id"`
	TenantID     *string        `db:"tenant_id" json:"tenant_id,omitempty"`
	Email        string         `db:"email" json:"email"`
	Name         *string        `db:"name" json:"name,omitempty"`
	Role         types.UserRole `db:"role" json:"role"`
	Active       bool           `db:"active" json:"active"`
	LastAccessAt *time.Time     `db:"last_access_at" json:"last_access_at,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

func NewUser(id, email string) *User {
	now := time.Now().UTC()
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER)
	}
	return &User{
		ID:        id,
		Email:     email,
		Role:      types.DefaultUserRole,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetTenantID returns the linked tenant or an empty string
func (u *User) GetTenantID() string {
	if u == nil || u.TenantID == nil {
		return ""
	}
	return *u.TenantID
}

// ActorName is the name recorded in history entries
func (u *User) ActorName() string {
	if u == nil {
		return types.DefaultActorName
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		return strings.TrimSpace(*u.Name)
	}
	return ActorNameFromEmail(u.Email)
}

// ActorNameFromEmail falls back to the local part of an email address
func ActorNameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	if local == "" {
		return types.DefaultActorName
	}
	return local
}
