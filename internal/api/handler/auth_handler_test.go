package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	user        *domain.User
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.user, nil
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "stub-token", s.user, nil
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	stub := &stubAuthService{user: &domain.User{
		ID:       1,
		Username: "alice",
		Role:     domain.RoleUser,
		Balance:  decimal.Zero,
	}}
	h := NewAuthHandler(stub)

	body := `{"username":"alice","password":"s3cret-pass","email":"alice@example.com","full_name":"Alice"}`
	c, rec := newTestContext(http.MethodPost, "/v1/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the registration response")
	}
	if resp.User == nil || resp.User.Username != "alice" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandler_RegisterRejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"username":"alice","password":"x","email":"alice@example.com"}`
	c, _ := newTestContext(http.MethodPost, "/v1/auth/register", body)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	body := `{"username":"alice","password":"s3cret-pass","email":"alice@example.com"}`
	c, _ := newTestContext(http.MethodPost, "/v1/auth/register", body)

	err := h.Register(c)
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate to the error handler, got %v", err)
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	body := `{"username":"alice","password":"wrong-pass"}`
	c, _ := newTestContext(http.MethodPost, "/v1/auth/login", body)

	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	stub := &stubAuthService{user: &domain.User{ID: 1, Username: "alice", Role: domain.RoleUser}}
	h := NewAuthHandler(stub)

	body := `{"username":"alice","password":"s3cret-pass"}`
	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "stub-token" {
		t.Errorf("token = %q, want stub-token", resp.Token)
	}
}
