package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/rafaelredel/sglc-prefeituras/internal/api/v1"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	testutil.BaseServiceTestSuite
	router *gin.Engine
	token  string
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	gin.SetMode(gin.TestMode)

	stores := s.GetStores()
	log := s.GetLogger()
	params := service.ServiceParams{
		Logger:          log,
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		Cache:           s.GetCache(),
		S3:              s.GetStorage(),
		AuthProvider:    s.GetAuthProvider(),
		Now:             s.Clock,
		TenantRepo:      stores.TenantRepo,
		UserRepo:        stores.UserRepo,
		ProcessRepo:     stores.ProcessRepo,
		SequenceRepo:    stores.SequenceRepo,
		HistoryRepo:     stores.HistoryRepo,
		FinancialRepo:   stores.FinancialRepo,
		InvoiceRepo:     stores.InvoiceRepo,
		PaymentRepo:     stores.PaymentRepo,
		DocumentRepo:    stores.DocumentRepo,
		FiscalRepo:      stores.FiscalRepo,
		InspectionRepo:  stores.InspectionRepo,
		ObservationRepo: stores.ObservationRepo,
	}

	recorder := service.NewHistoryRecorder(params)
	resolver := service.NewTenantResolver(params)
	processes := service.NewProcessService(params, service.NewSequenceAllocator(params), recorder)

	handlers := Handlers{
		Health:      v1.NewHealthHandler(nil, log),
		Auth:        v1.NewAuthHandler(service.NewAuthService(params, resolver), log),
		User:        v1.NewUserHandler(service.NewUserService(params), log),
		Tenant:      v1.NewTenantHandler(service.NewTenantService(params), log),
		Process:     v1.NewProcessHandler(processes, log),
		Financial:   v1.NewFinancialHandler(service.NewFinancialService(params, recorder), log),
		Invoice:     v1.NewInvoiceHandler(service.NewInvoiceService(params, recorder), log),
		Payment:     v1.NewPaymentHandler(service.NewPaymentService(params, recorder), log),
		Document:    v1.NewDocumentHandler(service.NewDocumentService(params, recorder), log),
		Fiscal:      v1.NewFiscalHandler(service.NewFiscalService(params, recorder), log),
		Inspection:  v1.NewInspectionHandler(service.NewInspectionService(params, recorder), log),
		Observation: v1.NewObservationHandler(service.NewObservationService(params, recorder), log),
	}

	s.router = NewRouter(handlers, RouterDeps{
		AuthProvider:   s.GetAuthProvider(),
		TenantResolver: resolver,
		Logger:         log,
	})
	s.token = s.GetAuthProvider().Token(auth.Claims{
		UserID: types.DefaultUserID,
		Email:  testutil.TestUserEmail,
	})
}

func (s *RouterSuite) do(method, path string, body any, token string) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(types.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (s *RouterSuite) TestHealth() {
	w, body := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", body["status"])
}

func (s *RouterSuite) TestProcessLifecycle() {
	w, body := s.do(http.MethodPost, "/v1/processes", map[string]any{
		"tipo":           "licitacao",
		"objeto":         "Aquisição de merenda escolar",
		"secretaria":     "Educação",
		"modalidade":     "pregao_eletronico",
		"responsavel":    "Carlos Lima",
		"data_abertura":  "2025-03-20",
		"valor_estimado": "150000.00",
	}, s.token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal(true, body["success"])
	s.Equal("Process created. Number: LIC-2025-03-00001", body["message"])

	data := body["data"].(map[string]any)
	id := data["id"].(string)
	s.Equal("LIC-2025-03-00001", data["numero_processo"])

	w, body = s.do(http.MethodPut, "/v1/processes/"+id, map[string]any{
		"status":      "em_andamento",
		"responsavel": nil,
	}, s.token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w, body = s.do(http.MethodGet, "/v1/processes/"+id+"/history", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)
	entries := body["data"].([]any)
	s.Len(entries, 3)
	s.Equal("created", entries[2].(map[string]any)["action"])

	w, body = s.do(http.MethodGet, "/v1/processes?tipo=licitacao", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)
	list := body["data"].(map[string]any)
	s.Len(list["items"], 1)

	w, _ = s.do(http.MethodDelete, "/v1/processes/"+id, nil, s.token)
	s.Equal(http.StatusOK, w.Code)

	w, body = s.do(http.MethodGet, "/v1/processes", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Empty(body["data"].(map[string]any)["items"])
}

func (s *RouterSuite) TestCreateProcessValidation() {
	w, body := s.do(http.MethodPost, "/v1/processes", map[string]any{
		"tipo": "contrato",
	}, s.token)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(false, body["success"])
	s.Equal("validation_error", body["code"])
	s.NotEmpty(body["details"].(map[string]any)["missing_fields"])
}

func (s *RouterSuite) TestUnknownProcess() {
	w, body := s.do(http.MethodGet, "/v1/processes/proc_missing/invoices", nil, s.token)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("not_found", body["code"])
}

func (s *RouterSuite) TestAuthentication() {
	w, _ := s.do(http.MethodGet, "/v1/processes", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	s.GetAuthProvider().AddAccount(auth.Claims{UserID: types.DefaultUserID, Email: testutil.TestUserEmail}, "senha")
	w, body := s.do(http.MethodPost, "/v1/auth/login", map[string]any{
		"email":    testutil.TestUserEmail,
		"password": "senha",
	}, "")
	s.Require().Equal(http.StatusOK, w.Code)
	token := body["data"].(map[string]any)["token"].(string)

	w, body = s.do(http.MethodGet, "/v1/users/me", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)
	me := body["data"].(map[string]any)
	s.Equal("Prefeitura de Teste", me["tenant"].(map[string]any)["name"])
}

func (s *RouterSuite) TestUserWithoutTenant() {
	s.GetStores().TenantRepo.Clear()
	token := s.GetAuthProvider().Token(auth.Claims{UserID: "user_orphan", Email: "orfao@prefeitura.gov.br"})

	w, body := s.do(http.MethodGet, "/v1/dashboard", nil, token)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("tenant_provisioning_error", body["code"])

	// tenant management stays reachable so the municipality can be registered
	w, _ = s.do(http.MethodPost, "/v1/tenants", map[string]any{"name": "Prefeitura de Mariana"}, token)
	s.Equal(http.StatusCreated, w.Code)
}
