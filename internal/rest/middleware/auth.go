package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// AuthenticateMiddleware validates the Bearer token and sets the user in the request context.
// Routes that act on municipal data are also wrapped with TenantMiddleware.
func AuthenticateMiddleware(provider auth.Provider, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			abortWith(c, ierr.NewError("missing authorization header").
				WithHint("Authentication required").
				Mark(ierr.ErrUnauthorized))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, ierr.NewError("invalid authorization header").
				WithHint("Invalid authorization header format").
				Mark(ierr.ErrUnauthorized))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := provider.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debugw("failed to validate token", "error", err)
			abortWith(c, err)
			return
		}

		if claims == nil || claims.UserID == "" {
			abortWith(c, ierr.NewError("token without subject").
				WithHint("Invalid token claims").
				Mark(ierr.ErrUnauthorized))
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetUserID(ctx, claims.UserID)
		ctx = types.SetUserEmail(ctx, claims.Email)
		ctx = types.SetJWT(ctx, tokenString)
		c.Request = c.Request.WithContext(ctx)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// TenantMiddleware resolves the municipality of the authenticated user and scopes the
// request to it. A user without any tenant gets a 403 with a provisioning hint.
func TenantMiddleware(resolver service.TenantResolver, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			abortWith(c, ierr.NewError("tenant resolution without authentication").
				WithHint("Authentication required").
				Mark(ierr.ErrUnauthorized))
			return
		}

		res, err := resolver.Resolve(c.Request.Context(), claims)
		if err != nil {
			logger.Warnw("tenant resolution failed", "user_id", claims.UserID, "error", err)
			abortWith(c, err)
			return
		}

		c.Request = c.Request.WithContext(types.SetTenantID(c.Request.Context(), res.TenantID))
		c.Next()
	}
}

const claimsKey = "auth_claims"

// ClaimsFromContext returns the claims set by AuthenticateMiddleware
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok && claims != nil
}

// abortWith hands err to ErrorHandler and stops the chain
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
