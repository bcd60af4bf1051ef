package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// EmployeeHandler serves the roles-permissions screens: staff CRUD plus the
// per-module permission editor.
type EmployeeHandler struct {
	employees ports.EmployeeAPI
	service   ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeAPI, service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, service: service}
}

func (h *EmployeeHandler) List(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	list, err := h.employees.GetAll(c.Request().Context(), sess, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	emp, err := h.employees.GetByID(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

type employeeRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"`
	AccessLevel string `json:"accessLevel" validate:"required"`
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess := middleware.SessionFrom(c)
	created, err := h.employees.Create(c.Request().Context(), sess, &domain.Employee{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		AccessLevel: req.AccessLevel,
		Active:      true,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	var emp domain.Employee
	if err := c.Bind(&emp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess := middleware.SessionFrom(c)
	updated, err := h.employees.Update(c.Request().Context(), sess, c.Param("id"), &emp)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if err := h.employees.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Permissions handles GET /employees/:id/permissions.
func (h *EmployeeHandler) Permissions(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	m, err := h.service.Permissions(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

type updatePermissionsRequest struct {
	Permissions domain.PermissionMap `json:"permissions" validate:"required"`
}

// UpdatePermissions handles PUT /employees/:id/permissions with the full
// edited map.
func (h *EmployeeHandler) UpdatePermissions(c echo.Context) error {
	var req updatePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess := middleware.SessionFrom(c)
	if err := h.service.UpdatePermissions(c.Request().Context(), sess, c.Param("id"), req.Permissions); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type togglePermissionRequest struct {
	Module string `json:"module" validate:"required"`
	Action string `json:"action" validate:"required"`
}

// TogglePermission handles POST /employees/:id/permissions/toggle: flip one
// checkbox. Grant when absent, revoke when present; toggling twice leaves
// the stored map exactly as it was.
func (h *EmployeeHandler) TogglePermission(c echo.Context) error {
	var req togglePermissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	id := c.Param("id")
	m, err := h.service.Permissions(c.Request().Context(), sess, id)
	if err != nil {
		return err
	}
	m.Toggle(req.Module, req.Action)
	if err := h.service.UpdatePermissions(c.Request().Context(), sess, id, m); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}
