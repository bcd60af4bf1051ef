package upstream

import (
	"context"
	"net/http"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// Dashboard covers the landing-page aggregates and the upstream activity log.
type Dashboard struct {
	c *Client
}

func NewDashboard(c *Client) *Dashboard {
	return &Dashboard{c: c}
}

func (d *Dashboard) Stats(ctx context.Context, s *domain.Session) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := d.c.Do(ctx, s, http.MethodGet, "/admin/dashboard-stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Dashboard) Logs(ctx context.Context, s *domain.Session, page ports.Page) (*ports.ActivityLogList, error) {
	var out ports.ActivityLogList
	if err := d.c.Do(ctx, s, http.MethodGet, withQuery("/admin/logs", pageQuery(page)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
