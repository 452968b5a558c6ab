package testutil

import (
	"context"
	"sync"

	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil) // Ensure MockPostgresClient implements IClient

// MockPostgresClient runs transactional functions without a database.
// In-memory stores do not roll back, tests assert on what a failed function left behind.
type MockPostgresClient struct {
	logger *logger.Logger

	mu    sync.Mutex
	calls int
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient(logger *logger.Logger) *MockPostgresClient {
	return &MockPostgresClient{
		logger: logger,
	}
}

// WithTx executes the given function within a transaction
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return fn(ctx)
}

// TxCount returns how many transactions were opened
func (c *MockPostgresClient) TxCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
