package auth

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// localAuth validates tokens signed with auth.secret, for development and tests.
// It holds no credentials so password login is unavailable.
type localAuth struct {
	AuthConfig config.AuthConfig
	logger     *logger.Logger
}

func NewLocalAuth(cfg *config.Configuration, log *logger.Logger) Provider {
	return &localAuth{
		AuthConfig: cfg.Auth,
		logger:     log,
	}
}

func (l *localAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderLocal
}

func (l *localAuth) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	return nil, ierr.NewError("password login not supported by local provider").
		WithHint("Password login requires the supabase auth provider").
		Mark(ierr.ErrInvalidOperation)
}

func (l *localAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	return parseToken(token, l.AuthConfig.Secret)
}

// AssignUserToTenant is a no-op, the users table is the only record
func (l *localAuth) AssignUserToTenant(ctx context.Context, userID, tenantID string) error {
	l.logger.Debugw("local auth provider keeps no tenant metadata", "user_id", userID, "tenant_id", tenantID)
	return nil
}
