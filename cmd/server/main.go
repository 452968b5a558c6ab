package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api"
	v1 "github.com/rafaelredel/sglc-prefeituras/internal/api/v1"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/cache"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/repository"
	"github.com/rafaelredel/sglc-prefeituras/internal/s3"
	"github.com/rafaelredel/sglc-prefeituras/internal/sentry"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Dates in process numbers and history are computed in UTC
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			provideCache,

			// Object storage
			s3.NewService,

			// Auth
			auth.NewProvider,

			// Repositories
			repository.NewTenantRepository,
			repository.NewUserRepository,
			repository.NewProcessRepository,
			repository.NewSequenceRepository,
			repository.NewHistoryRepository,
			repository.NewFinancialRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,
			repository.NewDocumentRepository,
			repository.NewFiscalRepository,
			repository.NewInspectionRepository,
			repository.NewObservationRepository,
		),
		sentry.Module(),
		postgres.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewTenantResolver,
			service.NewTenantService,
			service.NewAuthService,
			service.NewUserService,

			service.NewSequenceAllocator,
			service.NewHistoryRecorder,
			service.NewProcessService,
			service.NewFinancialService,
			service.NewInvoiceService,
			service.NewPaymentService,
			service.NewDocumentService,
			service.NewFiscalService,
			service.NewInspectionService,
			service.NewObservationService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideCache(cfg *config.Configuration, log *logger.Logger) cache.Cache {
	return cache.NewInMemoryCache(cfg, log)
}

func provideHandlers(
	db *postgres.DB,
	logger *logger.Logger,
	authService service.AuthService,
	userService service.UserService,
	tenantService service.TenantService,
	processService service.ProcessService,
	financialService service.FinancialService,
	invoiceService service.InvoiceService,
	paymentService service.PaymentService,
	documentService service.DocumentService,
	fiscalService service.FiscalService,
	inspectionService service.InspectionService,
	observationService service.ObservationService,
) api.Handlers {
	return api.Handlers{
		Health:      v1.NewHealthHandler(db, logger),
		Auth:        v1.NewAuthHandler(authService, logger),
		User:        v1.NewUserHandler(userService, logger),
		Tenant:      v1.NewTenantHandler(tenantService, logger),
		Process:     v1.NewProcessHandler(processService, logger),
		Financial:   v1.NewFinancialHandler(financialService, logger),
		Invoice:     v1.NewInvoiceHandler(invoiceService, logger),
		Payment:     v1.NewPaymentHandler(paymentService, logger),
		Document:    v1.NewDocumentHandler(documentService, logger),
		Fiscal:      v1.NewFiscalHandler(fiscalService, logger),
		Inspection:  v1.NewInspectionHandler(inspectionService, logger),
		Observation: v1.NewObservationHandler(observationService, logger),
	}
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	sentrySvc *sentry.Service,
	authProvider auth.Provider,
	resolver service.TenantResolver,
) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, api.RouterDeps{
		Config:         cfg,
		AuthProvider:   authProvider,
		TenantResolver: resolver,
		Sentry:         sentrySvc,
		Logger:         logger,
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
