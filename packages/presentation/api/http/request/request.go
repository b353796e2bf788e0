package request

import (
	"hobbes/packages/common/logger"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"
)

const metaKey = "req_meta"

func newMeta(ctx echo.Context) logger.Meta {
	req := ctx.Request()

	meta := logger.Meta{
		"addr":       ctx.RealIP(),
		"method":     req.Method,
		"path":       req.URL.Path,
		"user_agent": req.UserAgent(),
	}

	if id := ctx.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		meta["request_id"] = id
	}

	if ua := useragent.Parse(req.UserAgent()); ua.Name != "" {
		meta["client"] = ua.Name + " " + ua.Version
		if ua.OS != "" {
			meta["os"] = ua.OS
		}
		if ua.Bot {
			meta["bot"] = true
		}
	}

	return meta
}

// This middleware must be applied to the router after RequestID middleware,
// otherwise metadata won't contain request id.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Set(metaKey, newMeta(ctx))

		return next(ctx)
	}
}

// Retrieves metadata from the context.
// If request.Middleware wasn't applied, metadata is created on the fly.
func GetMetadata(ctx echo.Context) logger.Meta {
	if m, ok := ctx.Get(metaKey).(logger.Meta); ok {
		return m
	}

	m := newMeta(ctx)
	ctx.Set(metaKey, m)

	return m
}
