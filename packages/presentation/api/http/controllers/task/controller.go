package taskcontroller

import (
	"hobbes/packages/common/metrics"
	controller "hobbes/packages/presentation/api/http/controllers"
	"hobbes/packages/presentation/api/http/request"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	tasks controller.TaskQueue
}

func New(tasks controller.TaskQueue) *Controller {
	return &Controller{tasks: tasks}
}

// @Summary 		Task state
// @ID 				get-task
// @Tags			Tasks
// @Produce			json
// @Param 			id path string true "Task ID"
// @Success			200 {object} tasks.Meta
// @Failure			401,404,503 {object} response.Error
// @Router			/v1/tasks/{id} [get]
// @Security		BearerAuth
func (c *Controller) Get(ctx echo.Context) error {
	meta, err := c.tasks.Meta(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, meta)
}

// @Summary 		Replay task
// @Description 	Enqueues new task with the same name and arguments as the finished one
// @ID 				replay-task
// @Tags			Tasks
// @Produce			json
// @Param 			id path string true "Task ID"
// @Success			202 {object} tasks.Meta
// @Failure			401,404,409,503 {object} response.Error
// @Router			/v1/tasks/{id}/replay [post]
// @Security		BearerAuth
func (c *Controller) Replay(ctx echo.Context) error {
	meta, err := c.tasks.Replay(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	controller.Logger.Info("Task replayed as "+meta.ID, request.GetMetadata(ctx))

	metrics.TasksEnqueuedTotal.WithLabelValues(meta.Name).Inc()

	return ctx.JSON(http.StatusAccepted, meta)
}
