package service

import (
	"context"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/cache"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const userCacheTTL = 5 * time.Minute

type UserService interface {
	GetUserInfo(ctx context.Context) (*dto.UserResponse, error)
	// Actor returns the caller as recorded in history entries
	Actor(ctx context.Context) history.Actor
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{ServiceParams: params}
}

func (s *userService) GetUserInfo(ctx context.Context) (*dto.UserResponse, error) {
	userID := types.GetUserID(ctx)
	if userID == "" {
		return nil, ierr.NewError("user id missing from context").
			WithHint("Authentication required").
			Mark(ierr.ErrUnauthorized)
	}

	u, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tenantID := types.GetTenantID(ctx)
	if tenantID == "" {
		tenantID = u.GetTenantID()
	}
	if tenantID == "" {
		return dto.NewUserResponse(u, nil), nil
	}

	t, err := s.TenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return dto.NewUserResponse(u, nil), nil
		}
		return nil, err
	}
	return dto.NewUserResponse(u, t), nil
}

func (s *userService) Actor(ctx context.Context) history.Actor {
	return actorFromContext(ctx, s.ServiceParams)
}

// actorFromContext names the caller from the users row, falling back to the email
// in the context and finally to the generic actor name
func actorFromContext(ctx context.Context, params ServiceParams) history.Actor {
	userID := types.GetUserID(ctx)
	actor := history.Actor{ID: userID, Name: user.ActorNameFromEmail(types.GetUserEmail(ctx))}
	if userID == "" {
		return actor
	}

	key := cache.GenerateKey(cache.PrefixUser, userID)
	if cached, found := params.Cache.Get(ctx, key); found {
		if u, ok := cached.(*user.User); ok {
			actor.Name = u.ActorName()
			return actor
		}
	}

	u, err := params.UserRepo.GetByID(ctx, userID)
	if err != nil {
		if !ierr.IsNotFound(err) {
			params.Logger.Warnw("failed to load actor, using fallback name", "user_id", userID, "error", err)
		}
		return actor
	}

	params.Cache.Set(ctx, key, u, userCacheTTL)
	actor.Name = u.ActorName()
	return actor
}
