package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

// parseToken validates an HMAC signed access token and extracts the claims.
// Supabase signs with the project JWT secret, the local provider with auth.secret.
func parseToken(token, secret string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewErrorf("unexpected signing method: %v", t.Header["alg"]).
				Mark(ierr.ErrUnauthorized)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired access token").
			Mark(ierr.ErrUnauthorized)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid or expired access token").
			Mark(ierr.ErrUnauthorized)
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, ierr.NewError("token missing subject").
			WithHint("Access token does not identify a user").
			Mark(ierr.ErrUnauthorized)
	}

	email, _ := claims["email"].(string)

	var tenantID string
	if appMetadata, ok := claims["app_metadata"].(map[string]interface{}); ok {
		tenantID, _ = appMetadata["tenant_id"].(string)
	}

	return &Claims{
		UserID:   userID,
		Email:    email,
		TenantID: tenantID,
	}, nil
}

// IssueToken signs an access token in the same shape Supabase issues
func IssueToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
		"role":  "authenticated",
	}
	if claims.TenantID != "" {
		mapClaims["app_metadata"] = map[string]interface{}{"tenant_id": claims.TenantID}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString([]byte(secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}
