package ports

import (
	"context"

	"github.com/lendwise/admin-console/internal/core/domain"
)

// SessionStore persists per-browser console sessions. Implementations must
// return domain.ErrSessionNotFound for unknown IDs.
type SessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	// SetPermissions replaces only the stored permission payload, leaving
	// token and access level untouched.
	SetPermissions(ctx context.Context, id, raw string) error
}
