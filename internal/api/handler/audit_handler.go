package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// AuditHandler pages through the console's own audit trail.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

type auditListResponse struct {
	Items []domain.AuditEntry `json:"items"`
	Total int                 `json:"total"`
}

// List handles GET /console/audit.
func (h *AuditHandler) List(c echo.Context) error {
	entries, total, err := h.repo.List(c.Request().Context(), pageFrom(c))
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, auditListResponse{Items: entries, Total: total})
}
