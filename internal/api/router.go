package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/rafaelredel/sglc-prefeituras/internal/api/v1"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/rest/middleware"
	"github.com/rafaelredel/sglc-prefeituras/internal/sentry"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type Handlers struct {
	Health      *v1.HealthHandler
	Auth        *v1.AuthHandler
	User        *v1.UserHandler
	Tenant      *v1.TenantHandler
	Process     *v1.ProcessHandler
	Financial   *v1.FinancialHandler
	Invoice     *v1.InvoiceHandler
	Payment     *v1.PaymentHandler
	Document    *v1.DocumentHandler
	Fiscal      *v1.FiscalHandler
	Inspection  *v1.InspectionHandler
	Observation *v1.ObservationHandler
}

// RouterDeps are the collaborators the middleware chain needs
type RouterDeps struct {
	Config         *config.Configuration
	AuthProvider   auth.Provider
	TenantResolver service.TenantResolver
	Sentry         *sentry.Service
	Logger         *logger.Logger
}

func NewRouter(handlers Handlers, deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware(deps.Logger),
		middleware.CORSMiddleware,
		middleware.ErrorHandler(deps.Sentry, deps.Logger),
	)
	if deps.Config != nil {
		router.Use(middleware.SentryMiddleware(deps.Config), middleware.SentryScopeMiddleware)
	}

	router.GET("/health", handlers.Health.Health)

	var loginLimit config.ServerConfig
	if deps.Config != nil {
		loginLimit = deps.Config.Server
	}

	public := router.Group("/v1")
	{
		public.POST("/auth/login", middleware.LoginRateLimitMiddleware(loginLimit), handlers.Auth.Login)
	}

	authenticated := router.Group("/v1", middleware.AuthenticateMiddleware(deps.AuthProvider, deps.Logger))
	{
		// tenants are managed before the caller is linked to one
		tenants := authenticated.Group("/tenants")
		{
			tenants.POST("", handlers.Tenant.CreateTenant)
			tenants.GET("", handlers.Tenant.GetAllTenants)
			tenants.GET("/:id", handlers.Tenant.GetTenantByID)
		}
	}

	scoped := authenticated.Group("", middleware.TenantMiddleware(deps.TenantResolver, deps.Logger))
	registerV1Routes(scoped, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/users/me", handlers.User.GetUserInfo)
	router.GET("/dashboard", handlers.Process.GetDashboard)

	processes := router.Group("/processes")
	{
		processes.POST("", handlers.Process.CreateProcess)
		processes.GET("", handlers.Process.ListProcesses)
		processes.GET("/:id", handlers.Process.GetProcess)
		processes.PUT("/:id", handlers.Process.UpdateProcess)
		processes.DELETE("/:id", handlers.Process.DeleteProcess)
		processes.GET("/:id/history", handlers.Process.ListHistory)

		processes.GET("/:id/financial", handlers.Financial.ListMovements)
		processes.POST("/:id/financial", handlers.Financial.CreateMovement)
		processes.PUT("/:id/financial/:record_id", handlers.Financial.UpdateMovement)

		processes.GET("/:id/invoices", handlers.Invoice.ListInvoices)
		processes.POST("/:id/invoices", handlers.Invoice.CreateInvoice)
		processes.PUT("/:id/invoices/:record_id", handlers.Invoice.UpdateInvoice)
		processes.DELETE("/:id/invoices/:record_id", handlers.Invoice.DeleteInvoice)

		processes.GET("/:id/payments", handlers.Payment.ListPayments)
		processes.POST("/:id/payments", handlers.Payment.CreatePayment)

		processes.GET("/:id/documents", handlers.Document.ListDocuments)
		processes.POST("/:id/documents", handlers.Document.CreateDocument)
		processes.POST("/:id/documents/upload-url", handlers.Document.PresignUpload)

		processes.GET("/:id/fiscals", handlers.Fiscal.ListFiscals)
		processes.POST("/:id/fiscals", handlers.Fiscal.CreateFiscal)
		processes.PUT("/:id/fiscals/:record_id", handlers.Fiscal.UpdateFiscal)

		processes.GET("/:id/inspections", handlers.Inspection.ListInspections)
		processes.POST("/:id/inspections", handlers.Inspection.CreateInspection)

		processes.GET("/:id/observations", handlers.Observation.ListObservations)
		processes.POST("/:id/observations", handlers.Observation.CreateObservation)
	}
}
