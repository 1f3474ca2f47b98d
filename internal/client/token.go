package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt returns the expiry of the stored bearer token. The
// server issues JWTs; the claims are read without signature
// verification since the client only uses them for display and never
// as a trust decision. Returns false when no token is stored or the
// token carries no expiry.
func (c *Client) TokenExpiresAt() (time.Time, bool) {
	token := c.currentToken()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
