package docscontroller

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var swaggerHandler = echoSwagger.WrapHandler

// Swagger UI, served only in debug mode.
func Swagger(ctx echo.Context) error {
	return swaggerHandler(ctx)
}
