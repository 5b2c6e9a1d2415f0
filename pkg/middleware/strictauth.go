package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StrictAuth requires a user id on every request when enabled. It reads the
// X-User-Id header set by the authenticating proxy, falling back to the
// HAVEN_UID cookie. When disabled it passes through so DevLogin can supply
// the uid instead.
func StrictAuth(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie("HAVEN_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
