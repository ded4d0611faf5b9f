package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Service stubs ─────────────────────────────────────────────────────────────

type stubAuthService struct {
	loginResp *dto.LoginResponse
	loginErr  error
}

func (s *stubAuthService) Login(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Register(context.Context, dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return &dto.RegisterResponse{Message: "User registered successfully", UserID: 1}, nil
}

type stubClienteService struct {
	saldo    decimal.Decimal
	saldoErr error
	buscados []dto.ClienteResponse
}

func (s *stubClienteService) Registrar(context.Context, dto.RegisterClienteRequest) (*dto.RegisterClienteResponse, error) {
	return &dto.RegisterClienteResponse{Message: "Client registered successfully", ClientID: 1}, nil
}

func (s *stubClienteService) Listar(context.Context) ([]dto.ClienteResponse, error) {
	return s.buscados, nil
}

func (s *stubClienteService) Buscar(context.Context, dto.SearchClientesRequest) ([]dto.ClienteResponse, error) {
	return s.buscados, nil
}

func (s *stubClienteService) Obtener(context.Context, uint) (*dto.ClienteResponse, error) {
	return nil, apierror.NotFound("Client not found")
}

func (s *stubClienteService) Actualizar(context.Context, uint, dto.UpdateClienteRequest) error {
	return nil
}

func (s *stubClienteService) ActualizarStatus(context.Context, uint, string) error { return nil }

func (s *stubClienteService) AjustarSaldo(context.Context, uint, decimal.Decimal) (decimal.Decimal, error) {
	return s.saldo, s.saldoErr
}

func (s *stubClienteService) UltimaUbicacion(context.Context, uint) (*dto.LastLocationResponse, error) {
	return &dto.LastLocationResponse{}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func loginRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Same verb the production router uses: credentials travel in the query.
	r.GET("/login", NewAuthHandler(svc).Login)
	return r
}

func clientesRouter(svc *stubClienteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewClientesHandler(svc)
	r.POST("/search-clients", h.Buscar)
	r.POST("/updateSaldo", h.UpdateSaldo)
	r.PUT("/clients/:id/status", h.ActualizarStatus)
	return r
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLoginHandler_Success(t *testing.T) {
	svc := &stubAuthService{loginResp: &dto.LoginResponse{
		Message:     "Login successful",
		User:        dto.LoginUser{ID: 1, Username: "admin", Hierarchy: 0},
		AccessToken: "tok",
		TokenType:   "Bearer",
	}}
	r := loginRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/login?Username=admin&Password=admin123", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.AccessToken)
}

func TestLoginHandler_MissingCredentials(t *testing.T) {
	r := loginRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/login?Username=admin", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler_Unauthorized(t *testing.T) {
	r := loginRouter(&stubAuthService{loginErr: apierror.Unauthorized("Invalid username or password")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/login?Username=admin&Password=bad", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body apierror.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierror.KindUnauthorized, body.Kind)
}

func TestSearchClientsHandler_InvalidField(t *testing.T) {
	// oneof=description dni nombreRef — anything else never reaches the DB.
	r := clientesRouter(&stubClienteService{})

	w := doJSON(t, r, http.MethodPost, "/search-clients", gin.H{"field": "saldo", "searchText": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSaldoHandler(t *testing.T) {
	svc := &stubClienteService{saldo: decimal.RequireFromString("750")}
	r := clientesRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/updateSaldo", gin.H{"clientId": 1, "deuda": 250})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UpdateSaldoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.NewSaldo.Equal(decimal.RequireFromString("750")))
}

func TestUpdateSaldoHandler_MissingDeuda(t *testing.T) {
	r := clientesRouter(&stubClienteService{})

	w := doJSON(t, r, http.MethodPost, "/updateSaldo", gin.H{"clientId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientStatusHandler_BadID(t *testing.T) {
	r := clientesRouter(&stubClienteService{})

	w := doJSON(t, r, http.MethodPut, "/clients/abc/status", gin.H{"status": "Inactive"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
