package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// GuardState is the explicit tri-state of a route-guard decision.
type GuardState int

const (
	// GuardPending means the decision could not be made (session store
	// unreachable). Protected content is withheld rather than leaked.
	GuardPending GuardState = iota
	GuardAllowed
	GuardDenied
)

// LoginRoute is where denied navigation lands. The original destination is
// discarded; there is no return-to deep link.
const LoginRoute = "/login"

const sessionContextKey = "console_session"

// SessionGuard resolves the console session before the handler runs. Token
// presence is the whole check: validity is only discovered when an upstream
// call bounces. No upstream call is made here.
func SessionGuard(codec *CookieCodec, store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, sess := resolveSession(c, codec, store)
			switch state {
			case GuardAllowed:
				c.Set(sessionContextKey, sess)
				return next(c)
			case GuardDenied:
				return c.Redirect(http.StatusFound, LoginRoute)
			default:
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
			}
		}
	}
}

func resolveSession(c echo.Context, codec *CookieCodec, store ports.SessionStore) (GuardState, *domain.Session) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return GuardDenied, nil
	}
	sid, err := codec.Decode(cookie.Value)
	if err != nil {
		return GuardDenied, nil
	}

	sess, err := store.Get(c.Request().Context(), sid)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return GuardDenied, nil
	}
	if err != nil {
		return GuardPending, nil
	}
	if !sess.Authenticated() {
		return GuardDenied, nil
	}
	return GuardAllowed, sess
}

// SessionFrom returns the session placed on the context by SessionGuard,
// or nil on unguarded routes.
func SessionFrom(c echo.Context) *domain.Session {
	s, _ := c.Get(sessionContextKey).(*domain.Session)
	return s
}
