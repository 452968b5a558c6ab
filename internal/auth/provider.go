package auth

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Claims is what the API trusts from a validated access token
type Claims struct {
	UserID string
	Email  string
	// TenantID comes from app_metadata and may be empty
	TenantID string
}

type LoginResponse struct {
	AccessToken string
	ExpiresIn   int
	UserID      string
	Email       string
}

type Provider interface {
	GetProvider() types.AuthProvider
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
	// AssignUserToTenant records the tenant in the provider's user metadata
	AssignUserToTenant(ctx context.Context, userID, tenantID string) error
}

func NewProvider(cfg *config.Configuration, log *logger.Logger) Provider {
	switch cfg.Auth.Provider {
	case types.AuthProviderSupabase:
		return NewSupabaseAuth(cfg, log)
	default:
		return NewLocalAuth(cfg, log)
	}
}
