package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/api/metrics"
	"github.com/lendwise/admin-console/internal/core/domain"
)

// DefaultLandingRoute is where a permission denial redirects. There is no
// dedicated forbidden page.
const DefaultLandingRoute = "/dashboard"

// RequirePermission gates a module/action pair against the session's
// permission payload. Must run after SessionGuard.
func RequirePermission(module, action string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if permitted(SessionFrom(c), module, action, log) {
				return next(c)
			}
			metrics.PermissionDenialsTotal.WithLabelValues(module, action).Inc()
			log.Warn().Str("module", module).Str("action", action).Msg("permission denied")
			return c.Redirect(http.StatusSeeOther, DefaultLandingRoute)
		}
	}
}

// permitted implements the guard's decision table:
//   - god access level: allow unconditionally
//   - no stored permission payload: allow (fail-open, keeps accounts usable
//     before permissions have been populated)
//   - payload present but unparsable: allow (fail-open)
//   - parsed map missing the module: the action list defaults empty, deny
//   - otherwise: allow iff the action is listed for the module
func permitted(s *domain.Session, module, action string, log zerolog.Logger) bool {
	if s == nil {
		return true
	}
	if s.AccessLevel == domain.AccessLevelGod {
		return true
	}
	if s.RawPermissions == "" {
		return true
	}
	m, err := domain.ParsePermissions(s.RawPermissions)
	if err != nil {
		log.Warn().Err(err).Msg("malformed permission payload, failing open")
		return true
	}
	return m.Allows(module, action)
}
