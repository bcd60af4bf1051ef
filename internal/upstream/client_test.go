package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/core/domain"
)

func testSession() *domain.Session {
	return &domain.Session{ID: "s1", Token: "tok-123", Email: "ops@example.com"}
}

func TestClient_Do_AttachesBearerAndDecodesEnvelope(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if r.URL.Path != "/api/v1/admin/dashboard-stats" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"status":200,"message":"ok","data":{"totalLeads":42}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	var out domain.DashboardStats
	if err := c.Do(context.Background(), testSession(), http.MethodGet, "/admin/dashboard-stats", nil, &out); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if out.TotalLeads != 42 {
		t.Fatalf("envelope data not decoded: %+v", out)
	}
}

func TestClient_Do_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := r.Header.Get("Authorization"); h != "" {
			t.Errorf("unauthenticated call must not carry a token, got %q", h)
		}
		_, _ = w.Write([]byte(`{"success":true,"status":200,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	if err := c.Do(context.Background(), nil, http.MethodPost, "/admin/login", map[string]string{"email": "a@b.c"}, nil); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
}

func TestClient_Do_ServerMessagePreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	err := c.Do(context.Background(), testSession(), http.MethodGet, "/leads/missing", nil, nil)
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if err.Error() != "Not found" {
		t.Fatalf("expected server message verbatim, got %q", err.Error())
	}

	var ae *APIError
	if !errors.As(err, &ae) || ae.Status != http.StatusNotFound {
		t.Fatalf("expected APIError with status 404, got %#v", err)
	}
}

func TestClient_Do_SynthesizedMessageWhenUnparsable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	err := c.Do(context.Background(), testSession(), http.MethodGet, "/admin/leads", nil, nil)
	if err == nil {
		t.Fatalf("expected error for 500")
	}
	if err.Error() != "HTTP error! status: 500" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestClient_Do_AuthenticatedUnauthorizedMeansExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token revoked"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	err := c.Do(context.Background(), testSession(), http.MethodGet, "/admin/leads", nil, nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// A 401 on an unauthenticated call (bad login) keeps the server message.
	err = c.Do(context.Background(), nil, http.MethodPost, "/admin/login", nil, nil)
	if errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("login rejection must not map to session expiry")
	}
	if err == nil || err.Error() != "token revoked" {
		t.Fatalf("expected server message, got %v", err)
	}
}

func TestClient_Do_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, http.DefaultClient, zerolog.Nop())
	err := c.Do(context.Background(), testSession(), http.MethodGet, "/admin/leads", nil, nil)
	if err == nil {
		t.Fatalf("expected network error")
	}
	var ae *APIError
	if errors.As(err, &ae) {
		t.Fatalf("network failure must not be an APIError")
	}
}

func TestClient_DoRaw_BinaryPassthrough(t *testing.T) {
	body := []byte{0x50, 0x4b, 0x03, 0x04, 0xff} // xlsx magic plus junk
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != "approved" {
			t.Errorf("query not forwarded, got %q", got)
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("missing bearer header")
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	q := url.Values{}
	q.Set("status", "approved")
	payload, err := c.DoRaw(context.Background(), testSession(), http.MethodGet, "/admin/export-filtered-leads", q)
	if err != nil {
		t.Fatalf("DoRaw returned error: %v", err)
	}
	if string(payload.Data) != string(body) {
		t.Fatalf("payload mangled")
	}
	if payload.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type lost: %q", payload.ContentType)
	}
}

func TestClient_DoRaw_ErrorTranslated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), zerolog.Nop())
	_, err := c.DoRaw(context.Background(), testSession(), http.MethodGet, "/admin/export-filtered-leads", nil)
	if err == nil || err.Error() != "HTTP error! status: 502" {
		t.Fatalf("unexpected error: %v", err)
	}
}
