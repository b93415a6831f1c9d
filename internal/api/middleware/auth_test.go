package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    "admin_1",
		"email": "alice@example.com",
		"name":  "Alice",
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/admin-only", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, nextCalled
}

func assertAuthRejected(t *testing.T, rec *httptest.ResponseRecorder, wantMessage string) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != false || resp["message"] != wantMessage {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/auth/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		if c.Get("email") != "alice@example.com" || c.Get("name") != "Alice" || c.Get("id") != "admin_1" {
			t.Fatalf("claims not injected: email=%v name=%v id=%v", c.Get("email"), c.Get("name"), c.Get("id"))
		}
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, nextCalled := runAuth(t, "")
	if nextCalled {
		t.Fatalf("next should not run")
	}
	assertAuthRejected(t, rec, "No token provided")
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer ", "token-without-scheme"} {
		rec, nextCalled := runAuth(t, header)
		if nextCalled {
			t.Fatalf("%q: next should not run", header)
		}
		assertAuthRejected(t, rec, "No token provided")
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))
	rec, nextCalled := runAuth(t, "Bearer "+token)
	if nextCalled {
		t.Fatalf("next should not run")
	}
	assertAuthRejected(t, rec, "Invalid or expired token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(-time.Minute))
	rec, nextCalled := runAuth(t, "Bearer "+token)
	if nextCalled {
		t.Fatalf("next should not run")
	}
	assertAuthRejected(t, rec, "Invalid or expired token")
}

func TestAuth_GarbageToken(t *testing.T) {
	rec, nextCalled := runAuth(t, "Bearer not.a.jwt")
	if nextCalled {
		t.Fatalf("next should not run")
	}
	assertAuthRejected(t, rec, "Invalid or expired token")
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	rec, nextCalled := runAuth(t, "bearer "+token)
	if !nextCalled {
		t.Fatalf("expected lowercase scheme to be accepted")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
