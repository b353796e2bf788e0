package middleware

import "github.com/labstack/echo/v4"

// Used to prevent tokens caching at transport layer
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		h := ctx.Response().Header()

		h.Set("Cache-Control", "no-store, max-age=0")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")

		return next(ctx)
	}
}
