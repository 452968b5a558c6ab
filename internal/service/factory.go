package service

import (
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/cache"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
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
	"github.com/rafaelredel/sglc-prefeituras/internal/s3"
	"github.com/rafaelredel/sglc-prefeituras/internal/sentry"
)

// Clock returns the current time. Process numbers depend on it.
type Clock func() time.Time

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	DB           postgres.IClient
	Sentry       *sentry.Service
	Cache        cache.Cache
	S3           s3.Service
	AuthProvider auth.Provider
	Now          Clock

	// Repositories
	TenantRepo      tenant.Repository
	UserRepo        user.Repository
	ProcessRepo     process.Repository
	SequenceRepo    sequence.Repository
	HistoryRepo     history.Repository
	FinancialRepo   financial.Repository
	InvoiceRepo     invoice.Repository
	PaymentRepo     payment.Repository
	DocumentRepo    document.Repository
	FiscalRepo      fiscal.Repository
	InspectionRepo  inspection.Repository
	ObservationRepo observation.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	sentrySvc *sentry.Service,
	cache cache.Cache,
	s3Service s3.Service,
	authProvider auth.Provider,
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	processRepo process.Repository,
	sequenceRepo sequence.Repository,
	historyRepo history.Repository,
	financialRepo financial.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
	documentRepo document.Repository,
	fiscalRepo fiscal.Repository,
	inspectionRepo inspection.Repository,
	observationRepo observation.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		DB:              db,
		Sentry:          sentrySvc,
		Cache:           cache,
		S3:              s3Service,
		AuthProvider:    authProvider,
		Now:             time.Now,
		TenantRepo:      tenantRepo,
		UserRepo:        userRepo,
		ProcessRepo:     processRepo,
		SequenceRepo:    sequenceRepo,
		HistoryRepo:     historyRepo,
		FinancialRepo:   financialRepo,
		InvoiceRepo:     invoiceRepo,
		PaymentRepo:     paymentRepo,
		DocumentRepo:    documentRepo,
		FiscalRepo:      fiscalRepo,
		InspectionRepo:  inspectionRepo,
		ObservationRepo: observationRepo,
	}
}

func (p ServiceParams) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
