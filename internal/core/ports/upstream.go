package ports

import (
	"context"

	"github.com/lendwise/admin-console/internal/core/domain"
)

// Page is the pagination slice requested from a list endpoint. The upstream
// executes the actual paging; the gateway only forwards it.
type Page struct {
	Page  int
	Limit int
}

// LeadFilter is the optional filter set collected by the leads screens.
// Zero values mean "no restriction"; the upstream interprets the rest.
type LeadFilter struct {
	Statuses []string
	LoanType string
	Source   string
	Search   string
	From     string
	To       string
}

// LeadList is one page of leads plus the upstream's total count.
type LeadList struct {
	Items []domain.Lead `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
}

type LoanList struct {
	Items []domain.LoanRequest `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
}

type ActivityLogList struct {
	Items []domain.ActivityLog `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
}

// BinaryPayload is a non-JSON upstream response body, e.g. an exported
// spreadsheet.
type BinaryPayload struct {
	Data        []byte
	ContentType string
}

// LastDownload describes the most recent export the upstream recorded for
// this operator.
type LastDownload struct {
	Filename     string `json:"filename"`
	DownloadedAt string `json:"downloadedAt"`
}

// LoginResult is the upstream's answer to a successful credential check.
type LoginResult struct {
	Token          string
	AccessLevel    string
	RawPermissions string
	Name           string
	Email          string
}

// AuthAPI covers the unauthenticated upstream entry points.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// LeadAPI is the façade over the upstream lead endpoints.
type LeadAPI interface {
	GetAll(ctx context.Context, s *domain.Session, page Page, f LeadFilter) (*LeadList, error)
	GetByID(ctx context.Context, s *domain.Session, id string) (*domain.Lead, error)
	Create(ctx context.Context, s *domain.Session, lead *domain.Lead) (*domain.Lead, error)
	Update(ctx context.Context, s *domain.Session, id string, lead *domain.Lead) (*domain.Lead, error)
	Delete(ctx context.Context, s *domain.Session, id string) error
	BulkUpdateStatus(ctx context.Context, s *domain.Session, ids []string, status string) error
	ExportFiltered(ctx context.Context, s *domain.Session, f LeadFilter) (*BinaryPayload, error)
	LastDownload(ctx context.Context, s *domain.Session) (*LastDownload, error)
}

// LoanAPI is read-only: loan requests are reviewed here, not edited.
type LoanAPI interface {
	GetAll(ctx context.Context, s *domain.Session, page Page) (*LoanList, error)
	GetByID(ctx context.Context, s *domain.Session, id string) (*domain.LoanRequest, error)
}

// EmployeeAPI manages staff accounts and their per-module permissions.
type EmployeeAPI interface {
	GetAll(ctx context.Context, s *domain.Session, page Page) ([]domain.Employee, error)
	GetByID(ctx context.Context, s *domain.Session, id string) (*domain.Employee, error)
	Create(ctx context.Context, s *domain.Session, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, s *domain.Session, id string, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, s *domain.Session, id string) error
	GetPermissions(ctx context.Context, s *domain.Session, id string) (domain.PermissionMap, error)
	UpdatePermissions(ctx context.Context, s *domain.Session, id string, m domain.PermissionMap) error
}

// DashboardAPI covers the landing-page aggregates and the upstream
// activity-log viewer.
type DashboardAPI interface {
	Stats(ctx context.Context, s *domain.Session) (*domain.DashboardStats, error)
	Logs(ctx context.Context, s *domain.Session, page Page) (*ActivityLogList, error)
}

// CRUD is the shared façade shape for content resources whose screens are
// plain create/read/update/delete forms. One instantiation per entity keeps
// the path template in exactly one place.
type CRUD[T any] interface {
	GetAll(ctx context.Context, s *domain.Session, page Page) ([]T, error)
	GetByID(ctx context.Context, s *domain.Session, id string) (*T, error)
	Create(ctx context.Context, s *domain.Session, item *T) (*T, error)
	Update(ctx context.Context, s *domain.Session, id string, item *T) (*T, error)
	Delete(ctx context.Context, s *domain.Session, id string) error
}

// PresignedUpload is the upstream's answer to a presigned-URL request.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key,omitempty"`
}

// UploadAPI obtains presigned PUT URLs and pushes raw bytes to object
// storage. PutObject talks to the storage host directly, not the upstream.
type UploadAPI interface {
	PresignedURL(ctx context.Context, s *domain.Session, filename, contentType string) (*PresignedUpload, error)
	PutObject(ctx context.Context, url string, data []byte, contentType string) error
}
