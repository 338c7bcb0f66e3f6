package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type stubVerifier struct {
	claims domain.Claims
	err    error
}

func (s *stubVerifier) Verify(token string) (domain.Claims, error) {
	return s.claims, s.err
}

func runAuth(t *testing.T, verifier TokenVerifier, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(verifier)(next)(c)
	return rec, err
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "")
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "Token abc")
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrInvalidToken}
	_, err := runAuth(t, verifier, "Bearer bad-token")
	if code := httpCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_ValidTokenInjectsIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := &stubVerifier{claims: domain.Claims{UserID: 9, Role: domain.RoleAdmin}}
	next := func(c echo.Context) error {
		if got, _ := c.Get("user_id").(int64); got != 9 {
			t.Fatalf("expected user_id 9, got %v", c.Get("user_id"))
		}
		if got, _ := c.Get("role").(string); got != domain.RoleAdmin {
			t.Fatalf("expected admin role, got %v", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(verifier)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
