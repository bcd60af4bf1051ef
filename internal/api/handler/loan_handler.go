package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// LoanHandler serves the read-only loan-requests screen.
type LoanHandler struct {
	loans ports.LoanAPI
}

func NewLoanHandler(loans ports.LoanAPI) *LoanHandler {
	return &LoanHandler{loans: loans}
}

// List handles GET /loan-requests.
func (h *LoanHandler) List(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	list, err := h.loans.GetAll(c.Request().Context(), sess, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /loan-requests/:id.
func (h *LoanHandler) Get(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	loan, err := h.loans.GetByID(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loan)
}
