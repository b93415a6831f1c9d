package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coursecompass/course-discovery/internal/core/domain"
	"github.com/coursecompass/course-discovery/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, name string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, email, password, name)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret1" || name != "Alice" {
				t.Fatalf("unexpected args: %s %s %s", email, password, name)
			}
			return &ports.AuthResult{
				Admin: &domain.Admin{
					ID:           "admin_1",
					Email:        email,
					Name:         name,
					PasswordHash: "$2a$12$hash",
					CreatedAt:    time.Now().UTC(),
				},
				Token: "token123",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"secret1","name":"Alice"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "secret1") || strings.Contains(body, "$2a$12$hash") {
		t.Fatalf("response leaks credentials: %s", body)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != true || resp["message"] != "Admin registered successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["token"] != "token123" {
		t.Fatalf("expected token, got %v", data["token"])
	}
	admin, ok := data["admin"].(map[string]any)
	if !ok || admin["email"] != "alice@example.com" || admin["id"] != "admin_1" {
		t.Fatalf("unexpected admin payload: %+v", admin)
	}
	if _, leaked := admin["passwordHash"]; leaked {
		t.Fatalf("admin payload contains password hash")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
			return nil, domain.ErrAdminExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"secret1","name":"Bob"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != false || resp["message"] != "Admin with this email already exists" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"bad email", `{"email":"nope","password":"secret1","name":"X Y"}`},
		{"short password", `{"email":"a@example.com","password":"12345","name":"X Y"}`},
		{"missing name", `{"email":"a@example.com","password":"secret1"}`},
	}
	for _, tc := range cases {
		c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register", tc.body)
		_ = handler.Register(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Admin: &domain.Admin{ID: "admin_1", Email: email, Name: "Alice"},
				Token: "token456",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	data := resp["data"].(map[string]any)
	if data["token"] != "token456" {
		t.Fatalf("expected token, got %v", data["token"])
	}
}

func TestAuthHandler_Login_Unauthorized(t *testing.T) {
	// Both failure modes must produce the same body.
	for _, serviceErr := range []error{domain.ErrInvalidCredentials, domain.ErrAdminNotFound} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
				return nil, serviceErr
			},
		}
		handler := NewAuthHandler(stub)

		c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
			`{"email":"ghost@example.com","password":"wrong1"}`)
		_ = handler.Login(c)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", serviceErr, rec.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["message"] != "invalid email or password" {
			t.Fatalf("%v: unexpected message %v", serviceErr, resp["message"])
		}
	}
}

func TestAuthHandler_AdminOnly(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/admin-only", "")
	c.Set("id", "admin_1")
	c.Set("email", "alice@example.com")
	c.Set("name", "Alice")

	if err := handler.AdminOnly(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["message"] != "Hello Admin" {
		t.Fatalf("unexpected message: %v", data["message"])
	}
	user := data["user"].(map[string]any)
	if user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_AdminOnly_MissingClaims(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthTestContext(t, http.MethodGet, "/auth/admin-only", "")
	err := handler.AdminOnly(c)
	if err == nil {
		t.Fatalf("expected error for missing claims")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
