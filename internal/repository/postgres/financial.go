package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/financial"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	financialTable   = "processo_financeiro"
	financialColumns = `id, processo_id, tenant_id, tipo, valor, data, descricao, responsavel,
	created_at, updated_at, created_by, updated_by`
	financialEntity = "financial movement"
)

type financialRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewFinancialRepository(db *postgres.DB, logger *logger.Logger) financial.Repository {
	return &financialRepository{db: db, logger: logger}
}

func (r *financialRepository) Create(ctx context.Context, m *financial.Movement) error {
	return insertNamed(ctx, r.db, financialTable, financialColumns, m, financialEntity)
}

func (r *financialRepository) Get(ctx context.Context, id string) (*financial.Movement, error) {
	return getByID[financial.Movement](ctx, r.db, financialTable, financialColumns, id, financialEntity)
}

func (r *financialRepository) Update(ctx context.Context, m *financial.Movement) error {
	span := StartRepositorySpan(ctx, "financial", "update", map[string]interface{}{"id": m.ID})
	defer FinishSpan(span)

	query := `
	UPDATE processo_financeiro SET
		tipo = :tipo,
		valor = :valor,
		data = :data,
		descricao = :descricao,
		responsavel = :responsavel,
		updated_at = :updated_at,
		updated_by = :updated_by
	WHERE id = :id AND tenant_id = :tenant_id`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, m); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, financialEntity)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *financialRepository) ListByProcess(ctx context.Context, processID string) ([]*financial.Movement, error) {
	return listByProcess[financial.Movement](ctx, r.db, financialTable, financialColumns, processID, financialEntity)
}
