package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/getsentry/sentry-go"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

// StartRepositorySpan creates a span for a repository operation.
// Returns nil when no Sentry hub is attached to ctx.
func StartRepositorySpan(ctx context.Context, repository, operation string, params map[string]interface{}) *sentry.Span {
	if sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	span := sentry.StartSpan(ctx, "repository."+repository+"."+operation)
	span.Description = "repository." + repository + "." + operation
	span.Op = "db.postgres"
	span.SetData("repository", repository)
	span.SetData("operation", operation)
	for k, v := range params {
		span.SetData(k, v)
	}
	return span
}

// FinishSpan safely finishes a span, handling nil spans
func FinishSpan(span *sentry.Span) {
	if span != nil {
		span.Finish()
	}
}

// SetSpanError marks the span failed
func SetSpanError(span *sentry.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.Status = sentry.SpanStatusInternalError
	span.SetData("error", err.Error())
}

// SetSpanSuccess marks a span as successful
func SetSpanSuccess(span *sentry.Span) {
	if span != nil {
		span.Status = sentry.SpanStatusOK
	}
}

// likePattern escapes LIKE metacharacters in s and wraps it for a contains match
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

// prefixPattern escapes s for a starts-with LIKE match
func prefixPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s) + "%"
}

// whereBuilder collects "?" placeholder clauses, rebound to $n by sqlx before execution
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func (w *whereBuilder) add(clause string, args ...interface{}) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func isNoRows(err error) bool {
	return ierr.Is(err, sql.ErrNoRows)
}

// listByProcess loads every row of a process child table for the tenant in ctx, oldest first
func listByProcess[T any](ctx context.Context, db *postgres.DB, table, columns, processID, entity string) ([]*T, error) {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	span := StartRepositorySpan(ctx, entity, "list_by_process", map[string]interface{}{"process_id": processID})
	defer FinishSpan(span)

	items := make([]*T, 0)
	query := `SELECT ` + columns + ` FROM ` + table + `
	WHERE processo_id = $1 AND tenant_id = $2
	ORDER BY created_at DESC, id DESC`
	err = db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.SelectContext(ctx, &items, query, processID, tenantID)
	})
	if err != nil {
		SetSpanError(span, err)
		return nil, postgres.WrapError(err, entity)
	}

	SetSpanSuccess(span)
	return items, nil
}

// getByID loads one row of a process child table for the tenant in ctx
func getByID[T any](ctx context.Context, db *postgres.DB, table, columns, id, entity string) (*T, error) {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	span := StartRepositorySpan(ctx, entity, "get", map[string]interface{}{"id": id})
	defer FinishSpan(span)

	var item T
	query := `SELECT ` + columns + ` FROM ` + table + ` WHERE id = $1 AND tenant_id = $2`
	err = db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &item, query, id, tenantID)
	})
	if err != nil {
		SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.NewErrorf("%s not found", entity).
				WithHintf("%s not found", capitalize(entity)).
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, postgres.WrapError(err, entity)
	}

	SetSpanSuccess(span)
	return &item, nil
}

// insertNamed runs a named INSERT of all columns
func insertNamed(ctx context.Context, db *postgres.DB, table, columns string, arg interface{}, entity string) error {
	span := StartRepositorySpan(ctx, entity, "create", nil)
	defer FinishSpan(span)

	query := `INSERT INTO ` + table + ` (` + columns + `) VALUES (` + namedValues(columns) + `)`
	if _, err := db.GetQuerier(ctx).NamedExecContext(ctx, query, arg); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, entity)
	}

	SetSpanSuccess(span)
	return nil
}

// namedValues turns "a, b" into ":a, :b"
func namedValues(columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = ":" + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
