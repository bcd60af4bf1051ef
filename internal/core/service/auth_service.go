package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// AuthService logs operators in against the upstream and owns the resulting
// gateway session. Session writes happen here and nowhere else.
type AuthService struct {
	api   ports.AuthAPI
	store ports.SessionStore
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, store ports.SessionStore, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, store: store, audit: audit, log: log}
}

// Login forwards credentials upstream and, on success, persists a session
// holding the bearer token and the permission payload exactly as returned.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		ID:             uuid.NewString(),
		Token:          res.Token,
		Email:          res.Email,
		AccessLevel:    res.AccessLevel,
		RawPermissions: res.RawPermissions,
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	s.audit.Emit(domain.AuditEntry{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Actor:     sess.Email,
		Action:    domain.AuditLogin,
		CreatedAt: time.Now().UTC(),
	})
	s.log.Info().Str("email", email).Msg("operator logged in")
	return sess, nil
}

// Logout deletes the stored session. A session already gone is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.audit.Emit(domain.AuditEntry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Actor:     sess.Email,
		Action:    domain.AuditLogout,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}
