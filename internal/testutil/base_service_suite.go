package testutil

import (
	"context"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/cache"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

// Stores holds the in-memory repositories of a test
type Stores struct {
	TenantRepo      *InMemoryTenantStore
	UserRepo        *InMemoryUserStore
	ProcessRepo     *InMemoryProcessStore
	SequenceRepo    *InMemorySequenceStore
	HistoryRepo     *InMemoryHistoryStore
	FinancialRepo   *InMemoryFinancialStore
	InvoiceRepo     *InMemoryInvoiceStore
	PaymentRepo     *InMemoryPaymentStore
	DocumentRepo    *InMemoryDocumentStore
	FiscalRepo      *InMemoryFiscalStore
	InspectionRepo  *InMemoryInspectionStore
	ObservationRepo *InMemoryObservationStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	stores  Stores
	db      *MockPostgresClient
	cache   *cache.InMemoryCache
	auth    *MockAuthProvider
	storage *MockStorage
	logger  *logger.Logger
	config  *config.Configuration
	now     time.Time
}

// TestNow is the fixed clock of every service test, March 2025 in UTC
var TestNow = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

// NewTestConfig returns a configuration usable without any environment
func NewTestConfig() *config.Configuration {
	return &config.Configuration{
		Deployment: config.DeploymentConfig{Mode: types.ModeLocal},
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Auth: config.AuthConfig{
			Provider: types.AuthProviderLocal,
			Secret:   TestAuthSecret,
		},
		Cache: config.CacheConfig{
			Enabled: true,
		},
		Tenancy: config.TenancyConfig{
			DefaultName: "Prefeitura Municipal",
		},
		Sequence: config.SequenceConfig{
			Mode: types.SequenceModeAtomic,
		},
	}
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = NewTestConfig()
	var err error
	s.logger, err = logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.now = TestNow
	s.config = NewTestConfig()
	s.setupStores()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	processes := NewInMemoryProcessStore()
	s.stores = Stores{
		TenantRepo:      NewInMemoryTenantStore(),
		UserRepo:        NewInMemoryUserStore(),
		ProcessRepo:     processes,
		SequenceRepo:    NewInMemorySequenceStore(processes),
		HistoryRepo:     NewInMemoryHistoryStore(),
		FinancialRepo:   NewInMemoryFinancialStore(),
		InvoiceRepo:     NewInMemoryInvoiceStore(),
		PaymentRepo:     NewInMemoryPaymentStore(),
		DocumentRepo:    NewInMemoryDocumentStore(),
		FiscalRepo:      NewInMemoryFiscalStore(),
		InspectionRepo:  NewInMemoryInspectionStore(),
		ObservationRepo: NewInMemoryObservationStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.auth = NewMockAuthProvider()
	s.storage = NewMockStorage()

	s.seedDefaults()
}

// seedDefaults creates the tenant and user of SetupContext
func (s *BaseServiceTestSuite) seedDefaults() {
	t := &tenant.Tenant{
		ID:        types.DefaultTenantID,
		Name:      "Prefeitura de Teste",
		Status:    types.StatusActive,
		CreatedAt: s.now.Add(-24 * time.Hour),
		UpdatedAt: s.now.Add(-24 * time.Hour),
	}
	s.Require().NoError(s.stores.TenantRepo.Create(s.ctx, t))

	u := user.NewUser(types.DefaultUserID, TestUserEmail)
	u.Name = lo.ToPtr("Ana Souza")
	u.TenantID = lo.ToPtr(types.DefaultTenantID)
	s.Require().NoError(s.stores.UserRepo.Create(s.ctx, u))
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.TenantRepo.Clear()
	s.stores.UserRepo.Clear()
	s.stores.ProcessRepo.Clear()
	s.stores.SequenceRepo.Clear()
	s.stores.HistoryRepo.Clear()
	s.stores.FinancialRepo.Clear()
	s.stores.InvoiceRepo.Clear()
	s.stores.PaymentRepo.Clear()
	s.stores.DocumentRepo.Clear()
	s.stores.FiscalRepo.Clear()
	s.stores.InspectionRepo.Clear()
	s.stores.ObservationRepo.Clear()
	if s.cache != nil {
		s.cache.Flush(context.Background())
	}
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext replaces the test context
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() *MockPostgresClient {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

// GetAuthProvider returns the test auth provider
func (s *BaseServiceTestSuite) GetAuthProvider() *MockAuthProvider {
	return s.auth
}

// GetStorage returns the test object storage
func (s *BaseServiceTestSuite) GetStorage() *MockStorage {
	return s.storage
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// SetNow moves the test clock
func (s *BaseServiceTestSuite) SetNow(now time.Time) {
	s.now = now
}

// Clock returns the test time, it follows SetNow
func (s *BaseServiceTestSuite) Clock() time.Time {
	return s.now
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
