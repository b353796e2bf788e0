package middleware

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/presentation/api/http/request"
	"hobbes/packages/presentation/api/http/response"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func rateLimiterIdentifierExtractor(ctx echo.Context) (string, error) {
	return ctx.RealIP(), nil
}

func rateLimiterDenyHandler(retryAfter time.Duration) func(ctx echo.Context, id string, err error) error {
	seconds := strconv.Itoa(int(math.Ceil(retryAfter.Seconds())))

	return func(ctx echo.Context, id string, err error) error {
		ctx.Response().Header().Set("Retry-After", seconds)

		log.Info("Request blocked by rate limiter", request.GetMetadata(ctx))

		return ctx.JSON(
			http.StatusTooManyRequests,
			response.Error{
				Error:   Error.StatusText(http.StatusTooManyRequests),
				Message: "Too many requests",
			},
		)
	}
}

func newRateLimiter(limit rate.Limit, burst int, expiresIn time.Duration) echo.MiddlewareFunc {
	retryAfter := time.Second
	if limit > 0 && limit < 1 {
		retryAfter = time.Duration(float64(time.Second) / float64(limit))
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: expiresIn,
		}),
		DenyHandler:         rateLimiterDenyHandler(retryAfter),
		IdentifierExtractor: rateLimiterIdentifierExtractor,
	})
}

// Limits each client (by IP) to rps requests per second with specified burst.
func RateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	return newRateLimiter(rate.Limit(rps), burst, time.Minute*3)
}

// Stricter limit for login endpoint: 5 requests per minute.
func LoginRateLimiter() echo.MiddlewareFunc {
	window := time.Minute

	return newRateLimiter(rate.Every(window/5), 3, window*2)
}
