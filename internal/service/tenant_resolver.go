package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/cache"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Tenant resolution sources, in the order they are tried
const (
	TenantSourceToken       = "token"
	TenantSourceUser        = "user"
	TenantSourceFirstActive = "first_active"
	TenantSourceDefault     = "default"
)

type TenantResolution struct {
	TenantID string
	Source   string
}

// TenantResolver decides which municipality an authenticated request acts on
type TenantResolver interface {
	Resolve(ctx context.Context, claims *auth.Claims) (*TenantResolution, error)
	Invalidate(ctx context.Context, userID string)
}

type tenantResolver struct {
	ServiceParams
}

func NewTenantResolver(params ServiceParams) TenantResolver {
	return &tenantResolver{ServiceParams: params}
}

func (s *tenantResolver) cacheKey(userID string) string {
	return cache.GenerateKey(cache.PrefixTenantResolution, userID)
}

// Resolve tries, in order: the token app_metadata, the users row, the first active
// tenant and finally an auto created default tenant when enabled.
func (s *tenantResolver) Resolve(ctx context.Context, claims *auth.Claims) (*TenantResolution, error) {
	if claims == nil || claims.UserID == "" {
		return nil, ierr.NewError("missing claims").
			WithHint("Authentication required").
			Mark(ierr.ErrUnauthorized)
	}

	key := s.cacheKey(claims.UserID)
	if cached, found := s.Cache.Get(ctx, key); found {
		if res, ok := cached.(*TenantResolution); ok {
			return res, nil
		}
	}

	res, err := s.resolve(ctx, claims)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, res, cache.TenantResolutionTTL)
	s.Logger.Debugw("resolved tenant for user",
		"user_id", claims.UserID,
		"tenant_id", res.TenantID,
		"source", res.Source,
	)
	return res, nil
}

func (s *tenantResolver) resolve(ctx context.Context, claims *auth.Claims) (*TenantResolution, error) {
	if claims.TenantID != "" {
		return &TenantResolution{TenantID: claims.TenantID, Source: TenantSourceToken}, nil
	}

	u, err := s.loadOrCreateUser(ctx, claims)
	if err != nil {
		return nil, err
	}
	if tenantID := u.GetTenantID(); tenantID != "" {
		return &TenantResolution{TenantID: tenantID, Source: TenantSourceUser}, nil
	}

	first, err := s.TenantRepo.FirstActive(ctx)
	if err == nil {
		s.assign(ctx, claims.UserID, first.ID)
		return &TenantResolution{TenantID: first.ID, Source: TenantSourceFirstActive}, nil
	}
	if !ierr.IsNotFound(err) {
		return nil, err
	}

	if !s.Config.Tenancy.AutoCreateDefault {
		s.Logger.Warnw("no tenant available for user", "user_id", claims.UserID)
		return nil, tenant.NewProvisioningError(claims.UserID)
	}

	name := s.Config.Tenancy.DefaultName
	if name == "" {
		name = types.DefaultTenantNameFallback
	}
	created := tenant.NewTenant(name)
	if err := s.TenantRepo.Create(ctx, created); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create the default municipality").
			Mark(ierr.ErrTenantProvisioning)
	}
	s.Logger.Infow("created default tenant", "tenant_id", created.ID, "name", created.Name)

	s.assign(ctx, claims.UserID, created.ID)
	return &TenantResolution{TenantID: created.ID, Source: TenantSourceDefault}, nil
}

// loadOrCreateUser returns the users row of the caller, creating it on first access
func (s *tenantResolver) loadOrCreateUser(ctx context.Context, claims *auth.Claims) (*user.User, error) {
	u, err := s.UserRepo.GetByID(ctx, claims.UserID)
	if err == nil {
		return u, nil
	}
	if !ierr.IsNotFound(err) {
		return nil, err
	}

	u = user.NewUser(claims.UserID, claims.Email)
	if err := s.UserRepo.Create(ctx, u); err != nil && !ierr.IsAlreadyExists(err) {
		return nil, err
	}
	return u, nil
}

// assign links the user to the tenant. Failures are logged, the resolution stands.
func (s *tenantResolver) assign(ctx context.Context, userID, tenantID string) {
	if err := s.UserRepo.AssignTenant(ctx, userID, tenantID); err != nil {
		s.Logger.Warnw("failed to assign tenant to user",
			"user_id", userID,
			"tenant_id", tenantID,
			"error", err,
		)
	}
	if s.AuthProvider == nil {
		return
	}
	if err := s.AuthProvider.AssignUserToTenant(ctx, userID, tenantID); err != nil {
		s.Logger.Warnw("failed to assign tenant in auth provider",
			"user_id", userID,
			"tenant_id", tenantID,
			"error", err,
		)
	}
	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixUser, userID))
}

func (s *tenantResolver) Invalidate(ctx context.Context, userID string) {
	s.Cache.Delete(ctx, s.cacheKey(userID))
}
