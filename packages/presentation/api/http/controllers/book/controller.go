package bookcontroller

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/metrics"
	"hobbes/packages/core/book"
	BookDTO "hobbes/packages/core/book/DTO"
	"hobbes/packages/core/filter"
	"hobbes/packages/infrastructure/cache"
	"hobbes/packages/infrastructure/tasks/jobs"
	controller "hobbes/packages/presentation/api/http/controllers"
	"hobbes/packages/presentation/api/http/request"
	"hobbes/packages/presentation/api/http/response"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	books        book.Repository
	cache        *cache.SearchCache
	tasks        controller.TaskQueue
	introspector filter.Introspector
}

// tasks may be nil, then books aren't inventoried in background.
func New(
	books book.Repository,
	searchCache *cache.SearchCache,
	tasks controller.TaskQueue,
	introspector filter.Introspector,
) *Controller {
	return &Controller{
		books:        books,
		cache:        searchCache,
		tasks:        tasks,
		introspector: introspector,
	}
}

// @Summary 		Insert book
// @Description 	Inserts book and hands it off to the inventory background task
// @ID 				insert-book
// @Tags			Book Inventory
// @Accept			json
// @Produce			json
// @Param 			book body bookdto.Payload true "Book"
// @Success			201 {object} response.Status
// @Failure			400,401,500 {object} response.Error
// @Router			/v1/books/book [post]
// @Security		BearerAuth
func (c *Controller) Insert(ctx echo.Context) error {
	var payload BookDTO.Payload

	if err := controller.BindAndValidate(ctx, &payload, book.ValidatePayload); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	reqMeta := request.GetMetadata(ctx)

	controller.Logger.Debug("Inserting book: "+payload.Title, reqMeta)

	if _, err := c.books.Insert(reqCtx, &payload); err != nil {
		return err
	}

	c.cache.Invalidate(reqCtx, book.Entity)

	if c.tasks != nil {
		if _, err := c.tasks.Enqueue(reqCtx, jobs.InventoryBooks, payload); err != nil {
			// book is already stored, inventory can be replayed later
			controller.Logger.Error("Failed to enqueue book inventory", err.Error(), reqMeta)
		} else {
			metrics.TasksEnqueuedTotal.WithLabelValues(jobs.InventoryBooks).Inc()
		}
	}

	return ctx.JSON(http.StatusCreated, response.OK)
}

// @Summary 		All books
// @Description 	Returns all books, newest first
// @ID 				get-all-books
// @Tags			Book Inventory
// @Produce			json
// @Success			200 {array} bookdto.Full
// @Failure			500 {object} response.Error
// @Router			/v1/books/all [get]
func (c *Controller) All(ctx echo.Context) error {
	books, err := c.books.All(ctx.Request().Context())
	if err != nil {
		return err
	}

	return controller.List(ctx, books)
}

// @Summary 		Books by date
// @Description 	Returns books created after (gt) or before (lt) the date, newest first
// @ID 				get-books-by-date
// @Tags			Book Inventory
// @Produce			json
// @Param 			date_param query string true "Date, format YYYY-MM-DDTHH:MM:SSZ"
// @Param 			compare query string true "gt or lt" Enums(gt, lt)
// @Success			200 {array} bookdto.Full
// @Failure			400,500 {object} response.Error
// @Router			/v1/books/getbydate [get]
func (c *Controller) GetByDate(ctx echo.Context) error {
	rawDate := ctx.QueryParam("date_param")
	if rawDate == "" {
		return Error.NoValue.ToStatus("date_param", filter.TimestampLayout)
	}
	rawCompare := ctx.QueryParam("compare")
	if rawCompare == "" {
		return Error.NoValue.ToStatus("compare", "gt or lt")
	}

	date, err := book.ParseDate(rawDate)
	if err != nil {
		return err
	}

	compare, err := book.ParseCompare(rawCompare)
	if err != nil {
		return err
	}

	books, err := c.books.ByDate(ctx.Request().Context(), date, compare)
	if err != nil {
		return err
	}

	return controller.List(ctx, books)
}

// @Summary 		Search books
// @Description 	Search books by dynamic filter. Each value may be prefixed with operator:
// @Description 	"!1" not equal, ">1" greater, "<1" less, ">=1", "<=1", "a,b" between (inclusive), otherwise equal.
// @Description 	Timestamps use YYYY-MM-DDTHH:MM:SSZ format. Unknown fields are ignored.
// @ID 				search-books
// @Tags			Book Inventory
// @Accept			json
// @Produce			json
// @Param 			filter body object true "Filter"
// @Success			200 {array} bookdto.Full
// @Failure			400,401,500 {object} response.Error
// @Router			/v1/books/search [post]
// @Security		BearerAuth
func (c *Controller) Search(ctx echo.Context) error {
	conjunction, err := controller.BuildFilter(ctx, c.introspector, book.Entity)
	if err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	books, e := cache.Search(reqCtx, c.cache, book.Entity, conjunction, func() ([]*BookDTO.Full, *Error.Status) {
		return c.books.Search(reqCtx, conjunction)
	})
	if e != nil {
		return e
	}

	return controller.List(ctx, books)
}
