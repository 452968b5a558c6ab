package auth

import (
	"context"

	"github.com/nedpals/supabase-go"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type supabaseAuth struct {
	AuthConfig config.AuthConfig
	client     *supabase.Client
	logger     *logger.Logger
}

func NewSupabaseAuth(cfg *config.Configuration, log *logger.Logger) Provider {
	client := supabase.CreateClient(cfg.Auth.Supabase.BaseURL, cfg.Auth.Supabase.ServiceKey)
	if client == nil {
		log.Fatalw("failed to create Supabase client", "base_url", cfg.Auth.Supabase.BaseURL)
	}

	return &supabaseAuth{
		AuthConfig: cfg.Auth,
		client:     client,
		logger:     log,
	}
}

func (s *supabaseAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

func (s *supabaseAuth) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	details, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	return &LoginResponse{
		AccessToken: details.AccessToken,
		ExpiresIn:   details.ExpiresIn,
		UserID:      details.User.ID,
		Email:       details.User.Email,
	}, nil
}

func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	return parseToken(token, s.AuthConfig.Secret)
}

func (s *supabaseAuth) AssignUserToTenant(ctx context.Context, userID string, tenantID string) error {
	params := supabase.AdminUserParams{
		AppMetadata: map[string]interface{}{
			"tenant_id": tenantID,
		},
	}

	if _, err := s.client.Admin.UpdateUser(ctx, userID, params); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to assign municipality to user").
			Mark(ierr.ErrHTTPClient)
	}

	s.logger.Debugw("assigned tenant to user in supabase",
		"user_id", userID,
		"tenant_id", tenantID,
	)
	return nil
}
