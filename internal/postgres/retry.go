package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lib/pq"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

// RetryConfig bounds how read queries are retried on transient failures
type RetryConfig struct {
	Attempts int
	Interval time.Duration
}

func NewRetryConfig(cfg config.PostgresConfig) RetryConfig {
	rc := RetryConfig{Attempts: cfg.RetryAttempts, Interval: cfg.RetryInterval}
	if rc.Attempts <= 0 {
		rc.Attempts = 3
	}
	if rc.Interval <= 0 {
		rc.Interval = 200 * time.Millisecond
	}
	return rc
}

// linearBackOff waits interval, 2*interval, 3*interval...
type linearBackOff struct {
	interval time.Duration
	attempt  int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.interval
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// Retry runs op until it succeeds, fails permanently or runs out of attempts.
// Only transient failures are retried, everything else is returned at once.
func Retry(ctx context.Context, rc RetryConfig, op func() error) error {
	var b backoff.BackOff = &linearBackOff{interval: rc.Interval}
	b = backoff.WithMaxRetries(b, uint64(rc.Attempts-1))
	b = backoff.WithContext(b, ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil || !IsTransient(err) {
			if err != nil {
				return backoff.Permanent(err)
			}
			return nil
		}
		return err
	}, b)
}

// ReadWithRetry runs a read against the querier in ctx with linear retries
func (db *DB) ReadWithRetry(ctx context.Context, op func(q Querier) error) error {
	return Retry(ctx, db.retry, func() error {
		return op(db.GetQuerier(ctx))
	})
}

// IsTransient reports failures worth retrying: dropped connections,
// serialization conflicts and a server that is starting or shutting down
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if ierr.Is(err, driver.ErrBadConn) || ierr.Is(err, sql.ErrConnDone) {
		return true
	}

	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		if pqErr.Code.Class() == "08" {
			return true
		}
		switch string(pqErr.Code) {
		case CodeSerializationFail, CodeDeadlockDetected, CodeTooManyConnections,
			CodeAdminShutdown, CodeCannotConnectNow:
			return true
		}
		return false
	}

	var netErr net.Error
	return ierr.As(err, &netErr)
}
