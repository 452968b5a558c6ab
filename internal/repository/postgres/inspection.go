package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/inspection"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	inspectionTable   = "processo_fiscalizacao"
	inspectionColumns = `id, processo_id, tenant_id, tipo, responsavel_fiscal, data_vistoria, status,
	observacao, arquivo_url, arquivo_nome, created_at, updated_at, created_by, updated_by`
	inspectionEntity = "inspection"
)

type inspectionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInspectionRepository(db *postgres.DB, logger *logger.Logger) inspection.Repository {
	return &inspectionRepository{db: db, logger: logger}
}

func (r *inspectionRepository) Create(ctx context.Context, i *inspection.Inspection) error {
	return insertNamed(ctx, r.db, inspectionTable, inspectionColumns, i, inspectionEntity)
}

func (r *inspectionRepository) ListByProcess(ctx context.Context, processID string) ([]*inspection.Inspection, error) {
	return listByProcess[inspection.Inspection](ctx, r.db, inspectionTable, inspectionColumns, processID, inspectionEntity)
}
