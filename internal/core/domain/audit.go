package domain

import "time"

// Audit action identifiers recorded by the console itself. These are
// gateway-side observability, not upstream domain state.
const (
	AuditLogin             = "login"
	AuditLogout            = "logout"
	AuditPermissionsUpdate = "permissions_update"
	AuditExport            = "export"
	AuditUpload            = "upload"
)

// AuditEntry records one staff action taken through the console.
type AuditEntry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
