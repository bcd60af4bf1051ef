package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*domain.Session, error)
	logoutFn func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, sessionID)
}

type stubAuthAPI struct {
	forgotFn func(ctx context.Context, email string) error
}

func (s *stubAuthAPI) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, nil
}

func (s *stubAuthAPI) ForgotPassword(ctx context.Context, email string) error {
	if s.forgotFn == nil {
		return nil
	}
	return s.forgotFn(ctx, email)
}

func (s *stubAuthAPI) ResetPassword(context.Context, string, string) error { return nil }

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	svc := &stubAuthService{loginFn: func(_ context.Context, email, password string) (*domain.Session, error) {
		if email != "ops@example.com" || password != "secret" {
			t.Fatalf("unexpected credentials: %s %s", email, password)
		}
		return &domain.Session{ID: "sess-1", Token: "tok", Email: email, AccessLevel: "manager"}, nil
	}}
	h := NewAuthHandler(svc, &stubAuthAPI{}, middleware.NewCookieCodec("secret"), false)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"email":"ops@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie {
			found = ck
		}
	}
	if found == nil || found.Value == "" {
		t.Fatalf("expected a session cookie, got %+v", cookies)
	}
	if !found.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
}

func TestAuthHandler_Login_MissingFieldShortCircuits(t *testing.T) {
	svc := &stubAuthService{loginFn: func(context.Context, string, string) (*domain.Session, error) {
		t.Fatalf("service must not be called on validation failure")
		return nil, nil
	}}
	h := NewAuthHandler(svc, &stubAuthAPI{}, middleware.NewCookieCodec("secret"), false)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"email":"ops@example.com"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400, got %v", err)
	}
}

func TestAuthHandler_Logout_ExpiresCookie(t *testing.T) {
	logoutCalled := false
	svc := &stubAuthService{logoutFn: func(_ context.Context, sessionID string) error {
		if sessionID != "sess-1" {
			t.Fatalf("unexpected session id %q", sessionID)
		}
		logoutCalled = true
		return nil
	}}
	h := NewAuthHandler(svc, &stubAuthAPI{}, middleware.NewCookieCodec("secret"), false)

	c, rec := newTestContext(t, http.MethodPost, "/logout", "")
	c.Set("console_session", &domain.Session{ID: "sess-1", Token: "tok"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout handler error: %v", err)
	}
	if !logoutCalled {
		t.Fatalf("logout must delete the stored session")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected an expired session cookie, got %+v", cookies)
	}
}

func TestAuthHandler_ForgotPassword_Forwards(t *testing.T) {
	forwarded := ""
	api := &stubAuthAPI{forgotFn: func(_ context.Context, email string) error {
		forwarded = email
		return nil
	}}
	h := NewAuthHandler(&stubAuthService{}, api, middleware.NewCookieCodec("secret"), false)

	c, rec := newTestContext(t, http.MethodPost, "/forgot-password", `{"email":"ops@example.com"}`)
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if forwarded != "ops@example.com" {
		t.Fatalf("email not forwarded upstream, got %q", forwarded)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}
