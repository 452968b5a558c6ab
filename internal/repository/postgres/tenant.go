package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const tenantColumns = `id, name, cnpj, city, state, status, created_at, updated_at`

type tenantRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTenantRepository(db *postgres.DB, logger *logger.Logger) tenant.Repository {
	return &tenantRepository{db: db, logger: logger}
}

func (r *tenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	r.logger.Debugw("creating tenant", "tenant_id", t.ID, "name", t.Name)

	span := StartRepositorySpan(ctx, "tenant", "create", map[string]interface{}{"tenant_id": t.ID})
	defer FinishSpan(span)

	query := `
	INSERT INTO tenants (` + tenantColumns + `)
	VALUES (:id, :name, :cnpj, :city, :state, :status, :created_at, :updated_at)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, t); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, "municipality")
	}

	SetSpanSuccess(span)
	return nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	span := StartRepositorySpan(ctx, "tenant", "get_by_id", map[string]interface{}{"tenant_id": id})
	defer FinishSpan(span)

	var t tenant.Tenant
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	err := r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &t, query, id)
	})
	if err != nil {
		SetSpanError(span, err)
		if isNoRows(err) {
			return nil, tenant.NewTenantNotFoundError(id)
		}
		return nil, postgres.WrapError(err, "municipality")
	}

	SetSpanSuccess(span)
	return &t, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	span := StartRepositorySpan(ctx, "tenant", "list", nil)
	defer FinishSpan(span)

	tenants := make([]*tenant.Tenant, 0)
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at ASC`
	err := r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.SelectContext(ctx, &tenants, query)
	})
	if err != nil {
		SetSpanError(span, err)
		return nil, postgres.WrapError(err, "municipality")
	}

	SetSpanSuccess(span)
	return tenants, nil
}

func (r *tenantRepository) FirstActive(ctx context.Context) (*tenant.Tenant, error) {
	span := StartRepositorySpan(ctx, "tenant", "first_active", nil)
	defer FinishSpan(span)

	var t tenant.Tenant
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE status = $1 ORDER BY created_at ASC, id ASC LIMIT 1`
	err := r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &t, query, types.StatusActive)
	})
	if err != nil {
		SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.NewError("no active tenant").
				WithHint("No active municipality is registered").
				Mark(ierr.ErrNotFound)
		}
		return nil, postgres.WrapError(err, "municipality")
	}

	SetSpanSuccess(span)
	return &t, nil
}
