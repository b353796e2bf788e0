package healthcontroller

import (
	"hobbes/packages/presentation/api/http/response"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary 		Health check
// @ID 				health
// @Tags			Service
// @Produce			json
// @Success			200 {object} response.Status
// @Router			/health [get]
func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, response.OK)
}

var metricsHandler = promhttp.Handler()

// @Summary 		Prometheus metrics
// @ID 				metrics
// @Tags			Service
// @Produce			plain
// @Success			200
// @Router			/metrics [get]
func Metrics(ctx echo.Context) error {
	metricsHandler.ServeHTTP(ctx.Response(), ctx.Request())
	return nil
}
