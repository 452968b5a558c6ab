package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	tenantID string
	err      error
}

func (r *stubResolver) Resolve(_ context.Context, _ *auth.Claims) (*service.TenantResolution, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &service.TenantResolution{TenantID: r.tenantID, Source: service.TenantSourceUser}, nil
}

func (r *stubResolver) Invalidate(context.Context, string) {}

func newTestEngine(resolver service.TenantResolver) (*gin.Engine, *testutil.MockAuthProvider) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	provider := testutil.NewMockAuthProvider()

	r := gin.New()
	r.Use(RequestIDMiddleware, CORSMiddleware, ErrorHandler(nil, log))
	protected := r.Group("/", AuthenticateMiddleware(provider, log), TenantMiddleware(resolver, log))
	protected.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"user_id":   types.GetUserID(ctx),
			"email":     types.GetUserEmail(ctx),
			"tenant_id": types.GetTenantID(ctx),
		})
	})
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("objeto is required").
			WithHint("Missing required fields: objeto").
			WithReportableDetails(map[string]any{"missing_fields": []string{"objeto"}}).
			Mark(ierr.ErrValidation))
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))
	})
	return r, provider
}

func doRequest(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ierr.ErrorResponse {
	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthenticateMiddleware(t *testing.T) {
	r, provider := newTestEngine(&stubResolver{tenantID: "tenant_ouro_preto"})
	valid := provider.Token(auth.Claims{UserID: "user_1", Email: "ana@prefeitura.gov.br"})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers[types.HeaderAuthorization] = tt.header
			}
			w := doRequest(r, http.MethodGet, "/whoami", headers)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				resp := decodeError(t, w)
				assert.False(t, resp.Success)
				assert.Equal(t, ierr.ErrCodeUnauthorized, resp.Code)
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "user_1", body["user_id"])
			assert.Equal(t, "ana@prefeitura.gov.br", body["email"])
			assert.Equal(t, "tenant_ouro_preto", body["tenant_id"])
		})
	}
}

func TestTenantMiddlewareWithoutTenant(t *testing.T) {
	r, provider := newTestEngine(&stubResolver{err: tenant.NewProvisioningError("user_1")})
	token := provider.Token(auth.Claims{UserID: "user_1"})

	w := doRequest(r, http.MethodGet, "/whoami", map[string]string{
		types.HeaderAuthorization: "Bearer " + token,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, ierr.ErrCodeTenantProvisioning, resp.Code)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Hint)
	assert.Equal(t, "user_1", resp.Details["user_id"])
}

func TestErrorHandler(t *testing.T) {
	r, _ := newTestEngine(&stubResolver{})

	w := doRequest(r, http.MethodGet, "/fail", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Missing required fields: objeto", resp.Message)
	assert.Equal(t, []interface{}{"objeto"}, resp.Details["missing_fields"])
	assert.Equal(t, ierr.ErrCodeValidation, resp.Code)

	w = doRequest(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp = decodeError(t, w)
	assert.Equal(t, "An unexpected error occurred", resp.Message)
	assert.Equal(t, ierr.ErrCodeDatabase, resp.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r, _ := newTestEngine(&stubResolver{})

	w := doRequest(r, http.MethodGet, "/fail", map[string]string{types.HeaderRequestID: "req-123"})
	assert.Equal(t, "req-123", w.Header().Get(types.HeaderRequestID))

	w = doRequest(r, http.MethodGet, "/fail", nil)
	assert.Len(t, w.Header().Get(types.HeaderRequestID), 36)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestEngine(&stubResolver{})

	w := doRequest(r, http.MethodOptions, "/whoami", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestLoginRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newEngine := func(cfg config.ServerConfig) *gin.Engine {
		r := gin.New()
		r.Use(ErrorHandler(nil, logger.NewNoopLogger()))
		r.POST("/login", LoginRateLimitMiddleware(cfg), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	r := newEngine(config.ServerConfig{LoginRatePerMinute: 1, LoginBurst: 2})
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/login", nil).Code)

	w := doRequest(r, http.MethodPost, "/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, ierr.ErrCodeRateLimited, resp.Code)
	assert.Equal(t, "Too many login attempts, wait a minute and try again", resp.Message)

	unlimited := newEngine(config.ServerConfig{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(unlimited, http.MethodPost, "/login", nil).Code)
	}
}
