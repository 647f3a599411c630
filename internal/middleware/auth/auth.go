// Package auth resolves the request identity from the auth cookie.
// Resolution never rejects on its own; RequireAuth is the gate for
// routes that need an identity.
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trendyfy/storefront/internal/tokens"
	"github.com/trendyfy/storefront/internal/transport"
)

const identityKey = "identity"

type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ResolveIdentity parses the token cookie when present and stores the
// identity in the echo context. Invalid or missing tokens leave the
// request anonymous.
func ResolveIdentity(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(tokens.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := tokens.Parse(cookie.Value, secret)
			if err != nil {
				return next(c)
			}
			id, err := claims.UserID()
			if err != nil {
				return next(c)
			}

			c.Set(identityKey, &Identity{ID: id, Email: claims.Email, Name: claims.Name})
			return next(c)
		}
	}
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := IdentityFrom(c); !ok {
			return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "Authentication required"})
		}
		return next(c)
	}
}

func IdentityFrom(c echo.Context) (*Identity, bool) {
	v := c.Get(identityKey)
	ident, ok := v.(*Identity)
	return ident, ok && ident != nil
}

// SetIdentity is a test hook for handler tests that bypass the cookie
// flow.
func SetIdentity(c echo.Context, ident *Identity) {
	c.Set(identityKey, ident)
}
