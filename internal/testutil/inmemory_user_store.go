package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

type InMemoryUserStore struct {
	*InMemoryStore[*user.User]
	Faults
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*user.User](),
	}
}

func userNotFound() error {
	return ierr.NewError("user not found").
		WithHint("User not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	if err := s.fault("create"); err != nil {
		return err
	}
	c := *u
	return s.InMemoryStore.Create(ctx, u.ID, &c)
}

func (s *InMemoryUserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	if err := s.fault("get"); err != nil {
		return nil, err
	}
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, userNotFound()
	}
	c := *u
	return &c, nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	users, err := s.InMemoryStore.List(ctx, email, func(_ context.Context, u *user.User, f interface{}) bool {
		return strings.EqualFold(u.Email, f.(string))
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, userNotFound()
	}
	c := *users[0]
	return &c, nil
}

func (s *InMemoryUserStore) AssignTenant(ctx context.Context, userID, tenantID string) error {
	if err := s.fault("assign_tenant"); err != nil {
		return err
	}
	u, err := s.InMemoryStore.Get(ctx, userID)
	if err != nil {
		return userNotFound()
	}
	c := *u
	c.TenantID = &tenantID
	c.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, userID, &c)
}

func (s *InMemoryUserStore) TouchLastAccess(ctx context.Context, userID string, at time.Time) error {
	u, err := s.InMemoryStore.Get(ctx, userID)
	if err != nil {
		return userNotFound()
	}
	c := *u
	c.LastAccessAt = &at
	return s.InMemoryStore.Update(ctx, userID, &c)
}
