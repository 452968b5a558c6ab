package postgres

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/payment"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const (
	paymentTable   = "processo_pagamentos"
	paymentColumns = `id, processo_id, tenant_id, tipo_pagamento, numero_processo_pagamento, data_pagamento,
	valor, forma_pagamento, observacao, url_comprovante, nome_comprovante, usuario_nome,
	created_at, updated_at, created_by, updated_by`
	paymentEntity = "payment"
)

type paymentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return &paymentRepository{db: db, logger: logger}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	return insertNamed(ctx, r.db, paymentTable, paymentColumns, p, paymentEntity)
}

func (r *paymentRepository) ListByProcess(ctx context.Context, processID string) ([]*payment.Payment, error) {
	return listByProcess[payment.Payment](ctx, r.db, paymentTable, paymentColumns, processID, paymentEntity)
}
