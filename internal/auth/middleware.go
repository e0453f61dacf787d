package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"shopmart/internal/errors"
)

// TokenHeader is the request header carrying the raw token on cart endpoints.
const TokenHeader = "auth-token"

// Middleware returns the JWT middleware guarding cart routes. The token is
// read verbatim from the auth-token header (no Bearer prefix). Missing,
// malformed, unsigned or expired tokens all get the same 401 body and the
// request chain stops there.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + TokenHeader,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errors.AuthRequired{
				Errors: "Please authenticate using a valid token",
			})
		},
	})
}

// UserID extracts the authenticated user id attached by Middleware.
func UserID(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
