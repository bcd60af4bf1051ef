package middleware

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the signed cookie carrying the session ID.
const SessionCookie = "console_session"

// CookieCodec signs and verifies the session-ID cookie as an HS256 JWT.
// The JWT carries only the session ID; everything else lives in the store.
type CookieCodec struct {
	secret []byte
}

func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret)}
}

// Encode wraps a session ID in a signed token suitable for a cookie value.
func (cc *CookieCodec) Encode(sessionID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sessionID})
	return t.SignedString(cc.secret)
}

// Decode verifies the cookie value and returns the session ID inside it.
func (cc *CookieCodec) Decode(value string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("invalid session cookie: %w", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", fmt.Errorf("session cookie missing sid")
	}
	return sid, nil
}
