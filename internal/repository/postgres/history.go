package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const historyColumns = `id, process_id, tenant_id, actor_id, actor_name, section, action,
	field_changed, previous_value, new_value, description, created_at`

type historyRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewHistoryRepository(db *postgres.DB, logger *logger.Logger) history.Repository {
	return &historyRepository{db: db, logger: logger}
}

func (r *historyRepository) Create(ctx context.Context, e *history.Entry) error {
	span := StartRepositorySpan(ctx, "history", "create", map[string]interface{}{
		"process_id": e.ProcessID,
		"action":     e.Action,
	})
	defer FinishSpan(span)

	query := `
	INSERT INTO processo_historico (` + historyColumns + `)
	VALUES (:id, :process_id, :tenant_id, :actor_id, :actor_name, :section, :action,
		:field_changed, :previous_value, :new_value, :description, :created_at)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, e); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, "history entry")
	}

	SetSpanSuccess(span)
	return nil
}

// ListByProcess keeps the postgres error in the chain so a missing table can be detected
func (r *historyRepository) ListByProcess(ctx context.Context, processID string) ([]*history.Entry, error) {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	span := StartRepositorySpan(ctx, "history", "list_by_process", map[string]interface{}{"process_id": processID})
	defer FinishSpan(span)

	entries := make([]*history.Entry, 0)
	query := `SELECT ` + historyColumns + ` FROM processo_historico
	WHERE process_id = $1 AND tenant_id = $2
	ORDER BY created_at DESC, id DESC`
	err = r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.SelectContext(ctx, &entries, query, processID, tenantID)
	})
	if err != nil {
		SetSpanError(span, err)
		return nil, postgres.WrapError(err, "history")
	}

	SetSpanSuccess(span)
	return entries, nil
}
