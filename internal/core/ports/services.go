package ports

import (
	"context"

	"github.com/lendwise/admin-console/internal/core/domain"
)

// AuthService logs an operator in against the upstream and manages the
// gateway-side session that results.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// ExportResult is a spreadsheet ready to stream back to the browser.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService runs the shared filter-and-download workflow. Returns
// domain.ErrExportInFlight when an identical export is already running for
// the same session.
type ExportService interface {
	ExportLeads(ctx context.Context, s *domain.Session, f LeadFilter) (*ExportResult, error)
}

// LeadExporter is the slice of LeadAPI the export workflow needs.
type LeadExporter interface {
	ExportFiltered(ctx context.Context, s *domain.Session, f LeadFilter) (*BinaryPayload, error)
}

// InFlightGuard reserves a slot for a long-running operation so an
// identical one cannot start while the first is outstanding.
type InFlightGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// EmployeeService wraps the employee façade with permission editing and
// audit emission.
type EmployeeService interface {
	Permissions(ctx context.Context, s *domain.Session, employeeID string) (domain.PermissionMap, error)
	UpdatePermissions(ctx context.Context, s *domain.Session, employeeID string, m domain.PermissionMap) error
}
