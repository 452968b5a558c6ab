package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/fiscal"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	fiscalTable   = "processo_fiscais"
	fiscalColumns = `id, processo_id, tenant_id, nome, cargo, matricula, telefone, email, observacoes,
	tipo_fiscal, created_at, updated_at, created_by, updated_by`
	fiscalEntity = "fiscal"
)

type fiscalRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewFiscalRepository(db *postgres.DB, logger *logger.Logger) fiscal.Repository {
	return &fiscalRepository{db: db, logger: logger}
}

func (r *fiscalRepository) Create(ctx context.Context, f *fiscal.Fiscal) error {
	return insertNamed(ctx, r.db, fiscalTable, fiscalColumns, f, fiscalEntity)
}

func (r *fiscalRepository) Get(ctx context.Context, id string) (*fiscal.Fiscal, error) {
	return getByID[fiscal.Fiscal](ctx, r.db, fiscalTable, fiscalColumns, id, fiscalEntity)
}

func (r *fiscalRepository) Update(ctx context.Context, f *fiscal.Fiscal) error {
	span := StartRepositorySpan(ctx, "fiscal", "update", map[string]interface{}{"id": f.ID})
	defer FinishSpan(span)

	query := `
	UPDATE processo_fiscais SET
		nome = :nome,
		cargo = :cargo,
		matricula = :matricula,
		telefone = :telefone,
		email = :email,
		observacoes = :observacoes,
		tipo_fiscal = :tipo_fiscal,
		updated_at = :updated_at,
		updated_by = :updated_by
	WHERE id = :id AND tenant_id = :tenant_id`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, f); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, fiscalEntity)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *fiscalRepository) ListByProcess(ctx context.Context, processID string) ([]*fiscal.Fiscal, error) {
	return listByProcess[fiscal.Fiscal](ctx, r.db, fiscalTable, fiscalColumns, processID, fiscalEntity)
}
