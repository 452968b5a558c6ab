package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
	resolver TenantResolver
}

func NewAuthService(params ServiceParams, resolver TenantResolver) AuthService {
	return &authService{
		ServiceParams: params,
		resolver:      resolver,
	}
}

// Login signs in with the auth provider, records the access and resolves the tenant
// the user will act on. A missing tenant does not block the login.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.AuthProvider.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.TouchLastAccess(ctx, resp.UserID, s.now().UTC()); err != nil {
		if !ierr.IsNotFound(err) {
			s.Logger.Warnw("failed to update last access", "user_id", resp.UserID, "error", err)
		} else if createErr := s.UserRepo.Create(ctx, user.NewUser(resp.UserID, resp.Email)); createErr != nil {
			s.Logger.Warnw("failed to create user on login", "user_id", resp.UserID, "error", createErr)
		}
	}

	authResp := &dto.AuthResponse{
		Token:     resp.AccessToken,
		ExpiresIn: resp.ExpiresIn,
		UserID:    resp.UserID,
	}

	claims, err := s.AuthProvider.ValidateToken(ctx, resp.AccessToken)
	if err != nil {
		claims = &auth.Claims{UserID: resp.UserID, Email: resp.Email}
	}

	res, err := s.resolver.Resolve(ctx, claims)
	if err != nil {
		s.Logger.Warnw("no tenant resolved at login", "user_id", resp.UserID, "error", err)
		return authResp, nil
	}
	authResp.TenantID = res.TenantID
	return authResp, nil
}
