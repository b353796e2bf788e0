package controller

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/tasks"
	"hobbes/packages/presentation/api/http/request"
	"net/http"

	"github.com/labstack/echo/v4"
)

var Logger = logger.NewSource("CONTROLLER", logger.Default)

// Background tasks, satisfied by *tasks.Broker.
type TaskQueue interface {
	Enqueue(ctx context.Context, name string, args any) (*tasks.Meta, *Error.Status)
	Meta(ctx context.Context, id string) (*tasks.Meta, *Error.Status)
	Replay(ctx context.Context, id string) (*tasks.Meta, *Error.Status)
}

// Binds request body into dest and validates it via validate.
func BindAndValidate[T any](ctx echo.Context, dest *T, validate func(*T) *Error.Status) error {
	reqMeta := request.GetMetadata(ctx)

	Logger.Trace("Binding and validating request...", reqMeta)

	if err := ctx.Bind(dest); err != nil {
		Logger.Trace("Failed to bind request: "+err.Error(), reqMeta)
		return err
	}

	if err := validate(dest); err != nil {
		Logger.Trace("Request validation failed: "+err.Error(), reqMeta)
		return err
	}

	Logger.Trace("Binding and validating request: OK", reqMeta)

	return nil
}

// Responds with items, nil slice is rendered as empty JSON array.
func List[T any](ctx echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func ConvertErrorStatusToHTTP(err *Error.Status) *echo.HTTPError {
	return echo.NewHTTPError(err.Status(), err.Error())
}
