package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lendwise/admin-console/internal/api/metrics"
	"github.com/lendwise/admin-console/internal/core/domain"
)

const sessionKeyPrefix = "console:session:"

// SessionStore persists console sessions as one Redis hash per session ID.
// Field names match the storage keys of the browser client this gateway
// replaced, so the permission payload round-trips byte-identical.
// Sessions carry no TTL: they live until an explicit logout.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (st *SessionStore) Put(ctx context.Context, s *domain.Session) error {
	err := st.client.HSet(ctx, st.key(s.ID),
		domain.FieldToken, s.Token,
		domain.FieldAccessLevel, s.AccessLevel,
		domain.FieldPermissions, s.RawPermissions,
		"email", s.Email,
	).Err()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	metrics.SessionsActive.Inc()
	return nil
}

func (st *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := st.client.HGetAll(ctx, st.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return &domain.Session{
		ID:             id,
		Token:          fields[domain.FieldToken],
		Email:          fields["email"],
		AccessLevel:    fields[domain.FieldAccessLevel],
		RawPermissions: fields[domain.FieldPermissions],
	}, nil
}

func (st *SessionStore) Delete(ctx context.Context, id string) error {
	n, err := st.client.Del(ctx, st.key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n > 0 {
		metrics.SessionsActive.Dec()
	}
	return nil
}

func (st *SessionStore) SetPermissions(ctx context.Context, id, raw string) error {
	exists, err := st.client.Exists(ctx, st.key(id)).Result()
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if exists == 0 {
		return domain.ErrSessionNotFound
	}
	if err := st.client.HSet(ctx, st.key(id), domain.FieldPermissions, raw).Err(); err != nil {
		return fmt.Errorf("store permissions: %w", err)
	}
	return nil
}

func (st *SessionStore) key(id string) string {
	return sessionKeyPrefix + id
}
