package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// Loans is read-only: loan requests are reviewed in the console, not edited.
type Loans struct {
	c *Client
}

func NewLoans(c *Client) *Loans {
	return &Loans{c: c}
}

func (l *Loans) GetAll(ctx context.Context, s *domain.Session, page ports.Page) (*ports.LoanList, error) {
	var out ports.LoanList
	path := withQuery("/admin/loans", pageQuery(page))
	if err := l.c.Do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (l *Loans) GetByID(ctx context.Context, s *domain.Session, id string) (*domain.LoanRequest, error) {
	var out domain.LoanRequest
	if err := l.c.Do(ctx, s, http.MethodGet, "/admin/loans/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
