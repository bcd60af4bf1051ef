package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// AuthHandler owns login, logout, and the password-reset round-trips.
type AuthHandler struct {
	service ports.AuthService
	auth    ports.AuthAPI
	codec   *middleware.CookieCodec
	secure  bool
}

func NewAuthHandler(service ports.AuthService, auth ports.AuthAPI, codec *middleware.CookieCodec, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, auth: auth, codec: codec, secure: secureCookies}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Email       string `json:"email"`
	AccessLevel string `json:"accessLevel"`
}

// Login authenticates against the upstream and issues the session cookie.
//
// @Summary      Operator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	value, err := h.codec.Encode(sess.ID)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie(value, 0))

	return c.JSON(http.StatusOK, loginResponse{Email: sess.Email, AccessLevel: sess.AccessLevel})
}

// Logout deletes the session and expires the cookie.
//
// @Summary      Operator logout
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess := middleware.SessionFrom(c); sess != nil {
		if err := h.service.Logout(c.Request().Context(), sess.ID); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -1))
	return c.NoContent(http.StatusNoContent)
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword forwards the reset request upstream.
//
// @Summary      Request a password reset mail
// @Tags         auth
// @Accept       json
// @Param        body  body  forgotPasswordRequest  true  "Account email"
// @Success      202   "reset mail requested"
// @Router       /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}

type resetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPassword completes a reset started from the mail link.
//
// @Summary      Set a new password
// @Tags         auth
// @Accept       json
// @Param        body  body  resetPasswordRequest  true  "Reset token and new password"
// @Success      204   "password updated"
// @Router       /reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
