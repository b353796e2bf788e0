package router

import (
	"fmt"
	Error "hobbes/packages/common/errors"
	controller "hobbes/packages/presentation/api/http/controllers"
	"hobbes/packages/presentation/api/http/request"
	"hobbes/packages/presentation/api/http/response"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

func handleHttpError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := Error.StatusInternalError.Error()

	switch e := err.(type) {
	case *Error.Status:
		code = e.Status()
		message = e.Error()
	case *echo.HTTPError:
		code = e.Code
		if msg, ok := e.Message.(string); ok {
			message = msg
		} else {
			message = fmt.Sprint(e.Message)
		}
	}

	status := Error.StatusText(code)
	reqMeta := request.GetMetadata(ctx)

	if code >= http.StatusInternalServerError {
		controller.Logger.Error(message, err.Error(), reqMeta)

		if hub := sentryecho.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}
	} else {
		controller.Logger.Debug(status+": "+message, reqMeta)
	}

	if ctx.Request().Method == http.MethodHead {
		ctx.NoContent(code)
		return
	}

	ctx.JSON(code, response.Error{
		Error:   status,
		Message: message,
	})
}
