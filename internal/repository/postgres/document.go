package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/document"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	documentTable   = "processo_documentos"
	documentColumns = `id, processo_id, tenant_id, tipo_documento, nome_arquivo, tipo_arquivo, tamanho_bytes,
	url_arquivo, storage_key, observacao, usuario_nome, created_at, updated_at, created_by, updated_by`
	documentEntity = "document"
)

type documentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDocumentRepository(db *postgres.DB, logger *logger.Logger) document.Repository {
	return &documentRepository{db: db, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, d *document.Document) error {
	return insertNamed(ctx, r.db, documentTable, documentColumns, d, documentEntity)
}

func (r *documentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	return getByID[document.Document](ctx, r.db, documentTable, documentColumns, id, documentEntity)
}

func (r *documentRepository) ListByProcess(ctx context.Context, processID string) ([]*document.Document, error) {
	return listByProcess[document.Document](ctx, r.db, documentTable, documentColumns, processID, documentEntity)
}
