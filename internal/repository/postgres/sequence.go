package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/sequence"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

type sequenceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSequenceRepository(db *postgres.DB, logger *logger.Logger) sequence.Repository {
	return &sequenceRepository{db: db, logger: logger}
}

// Next increments the scope counter in a single statement. The first allocation of a
// scope seeds the counter past every process already numbered in it, so numbers issued
// before the counter table existed are never reused.
func (r *sequenceRepository) Next(ctx context.Context, scope sequence.Scope) (int64, error) {
	span := StartRepositorySpan(ctx, "sequence", "next", map[string]interface{}{
		"prefix": scope.Prefix,
		"year":   scope.Year,
		"month":  scope.Month,
	})
	defer FinishSpan(span)

	query := `
	INSERT INTO process_sequences (tenant_id, prefix, year, month, last_value, created_at, updated_at)
	VALUES ($1, $2, $3, $4, (
		SELECT GREATEST(COUNT(*), COALESCE(MAX(CAST(RIGHT(numero_processo, 5) AS BIGINT)), 0)) + 1
		FROM processos_administrativos
		WHERE tenant_id = $1 AND numero_processo LIKE $5
	), NOW(), NOW())
	ON CONFLICT (tenant_id, prefix, year, month) DO UPDATE
	SET last_value = process_sequences.last_value + 1,
		updated_at = NOW()
	RETURNING last_value`

	var value int64
	err := r.db.GetQuerier(ctx).GetContext(ctx, &value, query,
		scope.TenantID, scope.Prefix, scope.Year, scope.Month, prefixPattern(scope.NumberPrefix()))
	if err != nil {
		SetSpanError(span, err)
		return 0, ierr.WithError(postgres.WrapError(err, "process sequence")).
			WithHint("Could not allocate a process number").
			WithReportableDetails(map[string]any{"prefix": scope.Prefix}).
			Mark(ierr.ErrAllocation)
	}

	r.logger.Infow("allocated process sequence",
		"tenant_id", scope.TenantID,
		"prefix", scope.Prefix,
		"year", scope.Year,
		"month", scope.Month,
		"sequence", value,
	)

	SetSpanSuccess(span)
	return value, nil
}

func (r *sequenceRepository) CountInScope(ctx context.Context, scope sequence.Scope) (int64, error) {
	query := `
	SELECT COUNT(*) FROM processos_administrativos
	WHERE tenant_id = $1 AND numero_processo LIKE $2`

	var count int64
	err := r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &count, query, scope.TenantID, prefixPattern(scope.NumberPrefix()))
	})
	if err != nil {
		return 0, ierr.WithError(postgres.WrapError(err, "process")).
			WithHint("Could not allocate a process number").
			WithReportableDetails(map[string]any{"prefix": scope.Prefix}).
			Mark(ierr.ErrAllocation)
	}
	return count, nil
}
