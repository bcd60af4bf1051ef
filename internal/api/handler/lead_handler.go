package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// LeadHandler serves the leads-management screens: paginated listing,
// detail, CRUD, bulk status changes, and the spreadsheet export.
type LeadHandler struct {
	leads  ports.LeadAPI
	export ports.ExportService
}

func NewLeadHandler(leads ports.LeadAPI, export ports.ExportService) *LeadHandler {
	return &LeadHandler{leads: leads, export: export}
}

// List handles GET /leads.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Param        page     query  int     false  "Page number"
// @Param        limit    query  int     false  "Page size"
// @Param        status   query  string  false  "Status filter, repeatable"
// @Param        search   query  string  false  "Free-text search"
// @Success      200  {object}  ports.LeadList
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	list, err := h.leads.GetAll(c.Request().Context(), sess, pageFrom(c), leadFilterFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /leads/:id (the user-details screen).
func (h *LeadHandler) Get(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	lead, err := h.leads.GetByID(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Create(c echo.Context) error {
	var lead domain.Lead
	if err := c.Bind(&lead); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess := middleware.SessionFrom(c)
	created, err := h.leads.Create(c.Request().Context(), sess, &lead)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *LeadHandler) Update(c echo.Context) error {
	var lead domain.Lead
	if err := c.Bind(&lead); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess := middleware.SessionFrom(c)
	updated, err := h.leads.Update(c.Request().Context(), sess, c.Param("id"), &lead)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *LeadHandler) Delete(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if err := h.leads.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids"    validate:"required,min=1"`
	Status string   `json:"status" validate:"required"`
}

// BulkStatus handles PUT /leads/bulk-status.
func (h *LeadHandler) BulkStatus(c echo.Context) error {
	var req bulkStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess := middleware.SessionFrom(c)
	if err := h.leads.BulkUpdateStatus(c.Request().Context(), sess, req.IDs, req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Export handles GET /leads/export: the shared filter-and-download workflow.
// The spreadsheet streams back as an attachment named after today's date.
//
// @Summary      Export filtered leads as a spreadsheet
// @Tags         leads
// @Produce      application/octet-stream
// @Success      200  {file}    binary
// @Failure      409  {object}  map[string]string  "identical export already running"
// @Router       /leads/export [get]
func (h *LeadHandler) Export(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	result, err := h.export.ExportLeads(c.Request().Context(), sess, leadFilterFrom(c))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}

// LastDownload handles GET /leads/last-download.
func (h *LeadHandler) LastDownload(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	info, err := h.leads.LastDownload(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func pageFrom(c echo.Context) ports.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.Page{Page: page, Limit: limit}
}

func leadFilterFrom(c echo.Context) ports.LeadFilter {
	return ports.LeadFilter{
		Statuses: c.QueryParams()["status"],
		LoanType: c.QueryParam("loanType"),
		Source:   c.QueryParam("source"),
		Search:   c.QueryParam("search"),
		From:     c.QueryParam("startDate"),
		To:       c.QueryParam("endDate"),
	}
}
