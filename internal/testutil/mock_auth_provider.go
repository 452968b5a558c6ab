package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const TestAuthSecret = "test-secret-for-unit-tests-only"

var _ auth.Provider = (*MockAuthProvider)(nil)

// MockAuthProvider accepts the passwords it was given and issues tokens signed with
// TestAuthSecret, so ValidateToken behaves like the real providers
type MockAuthProvider struct {
	tokens auth.Provider

	mu          sync.Mutex
	accounts    map[string]mockAccount
	assignments map[string]string
	assignErr   error
}

type mockAccount struct {
	password string
	claims   auth.Claims
}

func NewMockAuthProvider() *MockAuthProvider {
	cfg := &config.Configuration{Auth: config.AuthConfig{Provider: types.AuthProviderLocal, Secret: TestAuthSecret}}
	return &MockAuthProvider{
		tokens:      auth.NewLocalAuth(cfg, logger.NewNoopLogger()),
		accounts:    make(map[string]mockAccount),
		assignments: make(map[string]string),
	}
}

// AddAccount registers credentials for Login
func (m *MockAuthProvider) AddAccount(claims auth.Claims, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[claims.Email] = mockAccount{password: password, claims: claims}
}

// FailAssignments makes AssignUserToTenant return err
func (m *MockAuthProvider) FailAssignments(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignErr = err
}

// Assignment returns the tenant recorded for the user in the provider metadata
func (m *MockAuthProvider) Assignment(userID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assignments[userID]
}

// Token issues a valid access token for the claims
func (m *MockAuthProvider) Token(claims auth.Claims) string {
	token, err := auth.IssueToken(TestAuthSecret, claims, time.Hour)
	if err != nil {
		panic(err)
	}
	return token
}

func (m *MockAuthProvider) GetProvider() types.AuthProvider {
	return types.AuthProviderLocal
}

func (m *MockAuthProvider) Login(ctx context.Context, email, password string) (*auth.LoginResponse, error) {
	m.mu.Lock()
	account, ok := m.accounts[email]
	m.mu.Unlock()
	if !ok || account.password != password {
		return nil, ierr.NewError("invalid credentials").
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}
	return &auth.LoginResponse{
		AccessToken: m.Token(account.claims),
		ExpiresIn:   int(time.Hour.Seconds()),
		UserID:      account.claims.UserID,
		Email:       account.claims.Email,
	}, nil
}

func (m *MockAuthProvider) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	return m.tokens.ValidateToken(ctx, token)
}

func (m *MockAuthProvider) AssignUserToTenant(ctx context.Context, userID, tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.assignErr != nil {
		return m.assignErr
	}
	m.assignments[userID] = tenantID
	return nil
}
