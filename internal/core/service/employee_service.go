package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// EmployeeService wraps the employee façade with permission editing. The
// toggle arithmetic itself is a pure domain operation; this service owns the
// round-trip and the audit trail.
type EmployeeService struct {
	api   ports.EmployeeAPI
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewEmployeeService(api ports.EmployeeAPI, audit ports.AuditSink, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{api: api, audit: audit, log: log}
}

func (s *EmployeeService) Permissions(ctx context.Context, sess *domain.Session, employeeID string) (domain.PermissionMap, error) {
	m, err := s.api.GetPermissions(ctx, sess, employeeID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = domain.PermissionMap{}
	}
	return m, nil
}

// UpdatePermissions saves the full edited map upstream. The upstream is
// authoritative; nothing is cached here.
func (s *EmployeeService) UpdatePermissions(ctx context.Context, sess *domain.Session, employeeID string, m domain.PermissionMap) error {
	if err := s.api.UpdatePermissions(ctx, sess, employeeID, m); err != nil {
		return err
	}

	detail, _ := m.Encode()
	s.audit.Emit(domain.AuditEntry{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Actor:     sess.Email,
		Action:    domain.AuditPermissionsUpdate,
		Target:    employeeID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	})
	s.log.Info().Str("employee", employeeID).Msg("employee permissions updated")
	return nil
}
