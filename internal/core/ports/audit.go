package ports

import (
	"context"

	"github.com/lendwise/admin-console/internal/core/domain"
)

// AuditSink accepts console audit entries. Emit must never block the
// request path; implementations buffer or drop.
type AuditSink interface {
	Emit(e domain.AuditEntry)
}

// AuditRepository persists and pages console audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, e domain.AuditEntry) error
	List(ctx context.Context, page Page) ([]domain.AuditEntry, int, error)
}
