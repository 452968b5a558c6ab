package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-unit-tests"

func newLocalProvider() Provider {
	cfg := config.GetDefaultConfig()
	cfg.Auth = config.AuthConfig{Provider: types.AuthProviderLocal, Secret: testSecret}
	return NewProvider(cfg, logger.NewNoopLogger())
}

func TestValidateTokenWithTenant(t *testing.T) {
	token, err := IssueToken(testSecret, Claims{UserID: "user_1", Email: "ana@prefeitura.gov.br", TenantID: "tenant_a"}, time.Hour)
	require.NoError(t, err)

	claims, err := newLocalProvider().ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "ana@prefeitura.gov.br", claims.Email)
	assert.Equal(t, "tenant_a", claims.TenantID)
}

func TestValidateTokenWithoutTenant(t *testing.T) {
	token, err := IssueToken(testSecret, Claims{UserID: "user_1"}, time.Hour)
	require.NoError(t, err)

	claims, err := newLocalProvider().ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
}

func TestValidateTokenRejects(t *testing.T) {
	p := newLocalProvider()

	wrongSecret, err := IssueToken("another-secret", Claims{UserID: "user_1"}, time.Hour)
	require.NoError(t, err)
	_, err = p.ValidateToken(context.Background(), wrongSecret)
	assert.True(t, ierr.IsUnauthorized(err))

	expired, err := IssueToken(testSecret, Claims{UserID: "user_1"}, -time.Minute)
	require.NoError(t, err)
	_, err = p.ValidateToken(context.Background(), expired)
	assert.True(t, ierr.IsUnauthorized(err))

	noSubject, err := IssueToken(testSecret, Claims{}, time.Hour)
	require.NoError(t, err)
	_, err = p.ValidateToken(context.Background(), noSubject)
	assert.True(t, ierr.IsUnauthorized(err))

	_, err = p.ValidateToken(context.Background(), "not-a-jwt")
	assert.True(t, ierr.IsUnauthorized(err))
}

func TestLocalLoginUnsupported(t *testing.T) {
	_, err := newLocalProvider().Login(context.Background(), "a@b.c", "x")
	assert.Error(t, err)
}
