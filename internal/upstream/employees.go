package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// Employees manages staff accounts and their per-module permissions.
type Employees struct {
	c *Client
}

func NewEmployees(c *Client) *Employees {
	return &Employees{c: c}
}

func (e *Employees) GetAll(ctx context.Context, s *domain.Session, page ports.Page) ([]domain.Employee, error) {
	var out []domain.Employee
	path := withQuery("/admin/employees", pageQuery(page))
	if err := e.c.Do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Employees) GetByID(ctx context.Context, s *domain.Session, id string) (*domain.Employee, error) {
	var out domain.Employee
	if err := e.c.Do(ctx, s, http.MethodGet, "/admin/employees/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Create(ctx context.Context, s *domain.Session, emp *domain.Employee) (*domain.Employee, error) {
	var out domain.Employee
	if err := e.c.Do(ctx, s, http.MethodPost, "/admin/employees", emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Update(ctx context.Context, s *domain.Session, id string, emp *domain.Employee) (*domain.Employee, error) {
	var out domain.Employee
	if err := e.c.Do(ctx, s, http.MethodPut, "/admin/employees/"+url.PathEscape(id), emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Delete(ctx context.Context, s *domain.Session, id string) error {
	return e.c.Do(ctx, s, http.MethodDelete, "/admin/employees/"+url.PathEscape(id), nil, nil)
}

func (e *Employees) GetPermissions(ctx context.Context, s *domain.Session, id string) (domain.PermissionMap, error) {
	var out domain.PermissionMap
	if err := e.c.Do(ctx, s, http.MethodGet, "/admin/employee/"+url.PathEscape(id)+"/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type permissionsPayload struct {
	Permissions domain.PermissionMap `json:"permissions"`
}

func (e *Employees) UpdatePermissions(ctx context.Context, s *domain.Session, id string, m domain.PermissionMap) error {
	path := "/admin/update-employee-permissions/" + url.PathEscape(id)
	return e.c.Do(ctx, s, http.MethodPut, path, permissionsPayload{Permissions: m}, nil)
}
