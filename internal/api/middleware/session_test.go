package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/core/domain"
)

type stubStore struct {
	getFn func(ctx context.Context, id string) (*domain.Session, error)
	calls int
}

func (s *stubStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.calls++
	return s.getFn(ctx, id)
}

func (s *stubStore) Put(context.Context, *domain.Session) error          { return nil }
func (s *stubStore) Delete(context.Context, string) error                { return nil }
func (s *stubStore) SetPermissions(context.Context, string, string) error { return nil }

func guardRequest(t *testing.T, codec *CookieCodec, store *stubStore, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	mw := SessionGuard(codec, store)
	handler := mw(func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, handlerRan
}

func TestSessionGuard_NoCookieRedirectsToLogin(t *testing.T) {
	codec := NewCookieCodec("secret")
	store := &stubStore{getFn: func(context.Context, string) (*domain.Session, error) {
		return nil, domain.ErrSessionNotFound
	}}

	rec, ran := guardRequest(t, codec, store, nil)

	if ran {
		t.Fatalf("protected handler must not run without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != LoginRoute {
		t.Fatalf("expected redirect to %s, got %s", LoginRoute, loc)
	}
	if store.calls != 0 {
		t.Fatalf("no cookie means no store lookup, got %d", store.calls)
	}
}

func TestSessionGuard_TokenPresentRendersContent(t *testing.T) {
	codec := NewCookieCodec("secret")
	store := &stubStore{getFn: func(_ context.Context, id string) (*domain.Session, error) {
		if id != "sess-1" {
			t.Fatalf("unexpected session id %q", id)
		}
		return &domain.Session{ID: id, Token: "tok"}, nil
	}}

	value, err := codec.Encode("sess-1")
	if err != nil {
		t.Fatalf("encode cookie: %v", err)
	}
	rec, ran := guardRequest(t, codec, store, &http.Cookie{Name: SessionCookie, Value: value})

	if !ran {
		t.Fatalf("handler should run for a session with a token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionGuard_EmptyTokenDenied(t *testing.T) {
	codec := NewCookieCodec("secret")
	store := &stubStore{getFn: func(_ context.Context, id string) (*domain.Session, error) {
		return &domain.Session{ID: id, Token: ""}, nil
	}}

	value, _ := codec.Encode("sess-1")
	rec, ran := guardRequest(t, codec, store, &http.Cookie{Name: SessionCookie, Value: value})

	if ran {
		t.Fatalf("empty token must be treated as unauthenticated")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestSessionGuard_TamperedCookieDenied(t *testing.T) {
	codec := NewCookieCodec("secret")
	other := NewCookieCodec("different-secret")
	store := &stubStore{getFn: func(context.Context, string) (*domain.Session, error) {
		t.Fatalf("store must not be consulted for a bad signature")
		return nil, nil
	}}

	value, _ := other.Encode("sess-1")
	rec, ran := guardRequest(t, codec, store, &http.Cookie{Name: SessionCookie, Value: value})

	if ran || rec.Code != http.StatusFound {
		t.Fatalf("expected redirect for tampered cookie, ran=%v code=%d", ran, rec.Code)
	}
}

func TestSessionGuard_StoreFailureWithholdsContent(t *testing.T) {
	codec := NewCookieCodec("secret")
	store := &stubStore{getFn: func(context.Context, string) (*domain.Session, error) {
		return nil, errors.New("redis down")
	}}

	value, _ := codec.Encode("sess-1")
	rec, ran := guardRequest(t, codec, store, &http.Cookie{Name: SessionCookie, Value: value})

	if ran {
		t.Fatalf("pending decision must not leak content")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
