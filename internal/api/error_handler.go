package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/upstream"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Forces a re-login when the upstream reports the session token dead.
//   - Relays upstream API errors with their status and message untouched.
//   - Maps known domain errors to deterministic status codes.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// The session-expiry interceptor: one place reacts to an upstream
		// auth rejection instead of every page guessing.
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrSessionNotFound) {
			c.SetCookie(&http.Cookie{
				Name:     middleware.SessionCookie,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				Expires:  time.Unix(0, 0),
				HttpOnly: true,
			})
			_ = c.Redirect(http.StatusFound, middleware.LoginRoute)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A non-2xx from the upstream keeps its status and server message.
	var ae *upstream.APIError
	if errors.As(err, &ae) {
		return ae.Status, ae.Message
	}

	if errors.Is(err, domain.ErrExportInFlight) {
		return http.StatusConflict, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
