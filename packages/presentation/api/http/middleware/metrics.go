package middleware

import (
	"hobbes/packages/common/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Counts requests and measures their latency.
// Must be applied before any middleware that may reject request.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()

		if err := next(ctx); err != nil {
			// commits the response, so status is known
			ctx.Error(err)
		}

		path := ctx.Path()
		if path == "" {
			path = "unmatched"
		}
		method := ctx.Request().Method

		metrics.RequestTotal.WithLabelValues(method, path, strconv.Itoa(ctx.Response().Status)).Inc()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return nil
	}
}
