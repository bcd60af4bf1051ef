package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// ContentHandler serves one marketing-content resource (blogs, news,
// testimonials, dictionary terms, UTM links, business enquiries). All six
// screens are the same four verbs, so the handler is generic over the DTO.
type ContentHandler[T any] struct {
	api ports.CRUD[T]
}

func NewContentHandler[T any](api ports.CRUD[T]) *ContentHandler[T] {
	return &ContentHandler[T]{api: api}
}

func (h *ContentHandler[T]) List(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	items, err := h.api.GetAll(c.Request().Context(), sess, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler[T]) Get(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	item, err := h.api.GetByID(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T]) Create(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess := middleware.SessionFrom(c)
	created, err := h.api.Create(c.Request().Context(), sess, &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler[T]) Update(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sess := middleware.SessionFrom(c)
	updated, err := h.api.Update(c.Request().Context(), sess, c.Param("id"), &item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ContentHandler[T]) Delete(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if err := h.api.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register mounts the four CRUD verbs under base on g, guarded by the given
// module's permissions.
func (h *ContentHandler[T]) Register(g *echo.Group, base string, guard func(action string) echo.MiddlewareFunc) {
	g.GET(base, h.List, guard("view"))
	g.GET(base+"/:id", h.Get, guard("view"))
	g.POST(base, h.Create, guard("create"))
	g.PUT(base+"/:id", h.Update, guard("update"))
	g.DELETE(base+"/:id", h.Delete, guard("delete"))
}
