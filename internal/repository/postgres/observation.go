package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/observation"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	observationTable   = "processo_observacoes"
	observationColumns = `id, processo_id, tenant_id, conteudo, usuario_nome, usuario_email,
	created_at, updated_at, created_by, updated_by`
	observationEntity = "observation"
)

type observationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewObservationRepository(db *postgres.DB, logger *logger.Logger) observation.Repository {
	return &observationRepository{db: db, logger: logger}
}

func (r *observationRepository) Create(ctx context.Context, o *observation.Observation) error {
	return insertNamed(ctx, r.db, observationTable, observationColumns, o, observationEntity)
}

func (r *observationRepository) ListByProcess(ctx context.Context, processID string) ([]*observation.Observation, error) {
	return listByProcess[observation.Observation](ctx, r.db, observationTable, observationColumns, processID, observationEntity)
}
