package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/invoice"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	invoiceTable   = "processo_notas_fiscais"
	invoiceColumns = `id, processo_id, tenant_id, numero_nota, data_emissao, data_vencimento, valor,
	fornecedor, descricao, status, nome_arquivo, url_arquivo, created_at, updated_at, created_by, updated_by`
	invoiceEntity = "invoice"
)

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	return insertNamed(ctx, r.db, invoiceTable, invoiceColumns, inv, invoiceEntity)
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	return getByID[invoice.Invoice](ctx, r.db, invoiceTable, invoiceColumns, id, invoiceEntity)
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	span := StartRepositorySpan(ctx, "invoice", "update", map[string]interface{}{"id": inv.ID})
	defer FinishSpan(span)

	query := `
	UPDATE processo_notas_fiscais SET
		numero_nota = :numero_nota,
		data_emissao = :data_emissao,
		data_vencimento = :data_vencimento,
		valor = :valor,
		fornecedor = :fornecedor,
		descricao = :descricao,
		status = :status,
		nome_arquivo = :nome_arquivo,
		url_arquivo = :url_arquivo,
		updated_at = :updated_at,
		updated_by = :updated_by
	WHERE id = :id AND tenant_id = :tenant_id`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, inv); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, invoiceEntity)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	span := StartRepositorySpan(ctx, "invoice", "delete", map[string]interface{}{"id": id})
	defer FinishSpan(span)

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM processo_notas_fiscais WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, invoiceEntity)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *invoiceRepository) ListByProcess(ctx context.Context, processID string) ([]*invoice.Invoice, error) {
	return listByProcess[invoice.Invoice](ctx, r.db, invoiceTable, invoiceColumns, processID, invoiceEntity)
}
