package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestRetryTransientFailures(t *testing.T) {
	rc := RetryConfig{Attempts: 3, Interval: time.Millisecond}

	calls := 0
	err := Retry(context.Background(), rc, func() error {
		calls++
		if calls < 3 {
			return &pq.Error{Code: "08006"}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryGivesUpAfterAttempts(t *testing.T) {
	rc := RetryConfig{Attempts: 3, Interval: time.Millisecond}

	calls := 0
	err := Retry(context.Background(), rc, func() error {
		calls++
		return driver.ErrBadConn
	})
	assert.ErrorIs(t, err, driver.ErrBadConn)
	assert.Equal(t, 3, calls)
}

func TestRetryPermanentFailure(t *testing.T) {
	rc := RetryConfig{Attempts: 3, Interval: time.Millisecond}

	calls := 0
	undefined := &pq.Error{Code: CodeUndefinedTable}
	err := Retry(context.Background(), rc, func() error {
		calls++
		return undefined
	})
	assert.Equal(t, 1, calls)
	assert.True(t, IsUndefinedTable(err))
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("boom")))
	assert.True(t, IsTransient(&pq.Error{Code: CodeSerializationFail}))
	assert.True(t, IsTransient(&pq.Error{Code: "08001"}))
	assert.False(t, IsTransient(&pq.Error{Code: CodeUniqueViolation}))
}
