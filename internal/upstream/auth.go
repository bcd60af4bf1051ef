package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lendwise/admin-console/internal/core/ports"
)

// Auth covers the unauthenticated upstream entry points.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginData keeps the permission payload raw so the session stores it
// verbatim, malformed or not.
type loginData struct {
	Token       string          `json:"token"`
	AccessLevel string          `json:"accessLevel"`
	Permissions json.RawMessage `json:"permissions"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
}

func (a *Auth) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var data loginData
	err := a.c.Do(ctx, nil, http.MethodPost, "/admin/login", loginPayload{Email: email, Password: password}, &data)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		Token:          data.Token,
		AccessLevel:    data.AccessLevel,
		RawPermissions: string(data.Permissions),
		Name:           data.Name,
		Email:          data.Email,
	}, nil
}

func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.c.Do(ctx, nil, http.MethodPost, "/admin/forgot-password", body, nil)
}

func (a *Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	return a.c.Do(ctx, nil, http.MethodPost, "/admin/reset-password", body, nil)
}
