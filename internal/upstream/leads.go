package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// Leads is the façade over the upstream lead endpoints.
type Leads struct {
	c *Client
}

func NewLeads(c *Client) *Leads {
	return &Leads{c: c}
}

func (l *Leads) GetAll(ctx context.Context, s *domain.Session, page ports.Page, f ports.LeadFilter) (*ports.LeadList, error) {
	var out ports.LeadList
	path := withQuery("/admin/leads", mergeQuery(pageQuery(page), LeadFilterQuery(f)))
	if err := l.c.Do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *Leads) GetByID(ctx context.Context, s *domain.Session, id string) (*domain.Lead, error) {
	var out domain.Lead
	if err := l.c.Do(ctx, s, http.MethodGet, "/leads/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *Leads) Create(ctx context.Context, s *domain.Session, lead *domain.Lead) (*domain.Lead, error) {
	var out domain.Lead
	if err := l.c.Do(ctx, s, http.MethodPost, "/leads", lead, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *Leads) Update(ctx context.Context, s *domain.Session, id string, lead *domain.Lead) (*domain.Lead, error) {
	var out domain.Lead
	if err := l.c.Do(ctx, s, http.MethodPut, "/leads/"+url.PathEscape(id), lead, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *Leads) Delete(ctx context.Context, s *domain.Session, id string) error {
	return l.c.Do(ctx, s, http.MethodDelete, "/leads/"+url.PathEscape(id), nil, nil)
}

type bulkStatusPayload struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

func (l *Leads) BulkUpdateStatus(ctx context.Context, s *domain.Session, ids []string, status string) error {
	return l.c.Do(ctx, s, http.MethodPut, "/admin/leads/bulk-status", bulkStatusPayload{IDs: ids, Status: status}, nil)
}

// ExportFiltered asks the upstream to render the filtered lead set as a
// spreadsheet and returns the binary payload untouched.
func (l *Leads) ExportFiltered(ctx context.Context, s *domain.Session, f ports.LeadFilter) (*ports.BinaryPayload, error) {
	return l.c.DoRaw(ctx, s, http.MethodGet, "/admin/export-filtered-leads", LeadFilterQuery(f))
}

func (l *Leads) LastDownload(ctx context.Context, s *domain.Session) (*ports.LastDownload, error) {
	var out ports.LastDownload
	if err := l.c.Do(ctx, s, http.MethodGet, "/admin/last-download", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
