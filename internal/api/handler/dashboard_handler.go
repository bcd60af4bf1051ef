package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// DashboardHandler serves the landing-page stats and the upstream activity
// log viewer.
type DashboardHandler struct {
	dashboard ports.DashboardAPI
}

func NewDashboardHandler(dashboard ports.DashboardAPI) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /dashboard.
//
// @Summary      Dashboard aggregates
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardStats
// @Router       /dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	stats, err := h.dashboard.Stats(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Logs handles GET /logs.
func (h *DashboardHandler) Logs(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	logs, err := h.dashboard.Logs(c.Request().Context(), sess, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
