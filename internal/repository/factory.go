package repository

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/document"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/financial"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/fiscal"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/inspection"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/invoice"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/observation"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/payment"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/sequence"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	postgresRepo "github.com/rafaelredel/sglc-prefeituras/internal/repository/postgres"
)

func NewTenantRepository(db *postgres.DB, logger *logger.Logger) tenant.Repository {
	return postgresRepo.NewTenantRepository(db, logger)
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewProcessRepository(db *postgres.DB, logger *logger.Logger) process.Repository {
	return postgresRepo.NewProcessRepository(db, logger)
}

func NewSequenceRepository(db *postgres.DB, logger *logger.Logger) sequence.Repository {
	return postgresRepo.NewSequenceRepository(db, logger)
}

func NewHistoryRepository(db *postgres.DB, logger *logger.Logger) history.Repository {
	return postgresRepo.NewHistoryRepository(db, logger)
}

func NewFinancialRepository(db *postgres.DB, logger *logger.Logger) financial.Repository {
	return postgresRepo.NewFinancialRepository(db, logger)
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(db, logger)
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return postgresRepo.NewPaymentRepository(db, logger)
}

func NewDocumentRepository(db *postgres.DB, logger *logger.Logger) document.Repository {
	return postgresRepo.NewDocumentRepository(db, logger)
}

func NewFiscalRepository(db *postgres.DB, logger *logger.Logger) fiscal.Repository {
	return postgresRepo.NewFiscalRepository(db, logger)
}

func NewInspectionRepository(db *postgres.DB, logger *logger.Logger) inspection.Repository {
	return postgresRepo.NewInspectionRepository(db, logger)
}

func NewObservationRepository(db *postgres.DB, logger *logger.Logger) observation.Repository {
	return postgresRepo.NewObservationRepository(db, logger)
}
