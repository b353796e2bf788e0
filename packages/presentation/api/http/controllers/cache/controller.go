package cachecontroller

import (
	"hobbes/packages/infrastructure/cache"
	controller "hobbes/packages/presentation/api/http/controllers"
	"hobbes/packages/presentation/api/http/request"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	cache *cache.SearchCache
}

func New(searchCache *cache.SearchCache) *Controller {
	return &Controller{cache: searchCache}
}

// @Summary 		Drop search cache
// @Description 	Drops cached search results of all entities
// @ID 				drop-cache
// @Tags			Service
// @Success			204
// @Failure			401,500 {object} response.Error
// @Router			/v1/cache [delete]
// @Security		BearerAuth
func (c *Controller) Drop(ctx echo.Context) error {
	if err := c.cache.Drop(ctx.Request().Context()); err != nil {
		return err
	}

	controller.Logger.Info("Search cache dropped", request.GetMetadata(ctx))

	return ctx.NoContent(http.StatusNoContent)
}
