package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

type stubAuthAPI struct {
	loginFn func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) ForgotPassword(context.Context, string) error      { return nil }
func (s *stubAuthAPI) ResetPassword(context.Context, string, string) error { return nil }

type memSessionStore struct {
	sessions map[string]*domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *memSessionStore) Put(_ context.Context, s *domain.Session) error {
	clone := *s
	m.sessions[s.ID] = &clone
	return nil
}

func (m *memSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memSessionStore) SetPermissions(_ context.Context, id, raw string) error {
	s, ok := m.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.RawPermissions = raw
	return nil
}

func TestAuthService_Login_PersistsSessionVerbatim(t *testing.T) {
	rawPerms := `{"leads":["view"],"blogs":["view","create"]}`
	api := &stubAuthAPI{loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
		if email != "ops@example.com" || password != "secret" {
			t.Fatalf("unexpected credentials: %s %s", email, password)
		}
		return &ports.LoginResult{
			Token:          "tok-1",
			AccessLevel:    "manager",
			RawPermissions: rawPerms,
			Email:          email,
		}, nil
	}}
	store := newMemSessionStore()
	sink := &recordingSink{}
	svc := NewAuthService(api, store, sink, zerolog.Nop())

	sess, err := svc.Login(context.Background(), "ops@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("session must get an ID")
	}

	stored, err := store.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if stored.Token != "tok-1" || stored.AccessLevel != "manager" {
		t.Fatalf("session fields lost: %+v", stored)
	}
	// The permission payload is stored byte-identical, not normalized.
	if stored.RawPermissions != rawPerms {
		t.Fatalf("permission payload altered: %q", stored.RawPermissions)
	}

	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditLogin {
		t.Fatalf("expected one login audit entry, got %+v", sink.entries)
	}
}

func TestAuthService_Login_UpstreamRejection(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	api := &stubAuthAPI{loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
		return nil, wantErr
	}}
	store := newMemSessionStore()
	svc := NewAuthService(api, store, &recordingSink{}, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@b.c", "nope"); !errors.Is(err, wantErr) {
		t.Fatalf("expected upstream error to propagate, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("failed login must not persist a session")
	}
}

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	store := newMemSessionStore()
	_ = store.Put(context.Background(), &domain.Session{ID: "sess-1", Token: "tok", Email: "ops@example.com"})
	sink := &recordingSink{}
	svc := NewAuthService(&stubAuthAPI{}, store, sink, zerolog.Nop())

	if err := svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := store.Get(context.Background(), "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session should be gone, got %v", err)
	}
	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditLogout {
		t.Fatalf("expected one logout audit entry, got %+v", sink.entries)
	}
}

func TestAuthService_Logout_MissingSessionIsNoop(t *testing.T) {
	svc := NewAuthService(&stubAuthAPI{}, newMemSessionStore(), &recordingSink{}, zerolog.Nop())
	if err := svc.Logout(context.Background(), "gone"); err != nil {
		t.Fatalf("logout of a missing session must not error: %v", err)
	}
}
