package teamcontroller

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/core/filter"
	"hobbes/packages/core/hero"
	HeroDTO "hobbes/packages/core/hero/DTO"
	"hobbes/packages/core/team"
	TeamDTO "hobbes/packages/core/team/DTO"
	"hobbes/packages/infrastructure/cache"
	controller "hobbes/packages/presentation/api/http/controllers"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const maxRecentLimit = 100

type Controller struct {
	teams        team.Repository
	heroes       hero.Repository
	cache        *cache.SearchCache
	introspector filter.Introspector
}

func New(
	teams team.Repository,
	heroes hero.Repository,
	searchCache *cache.SearchCache,
	introspector filter.Introspector,
) *Controller {
	return &Controller{
		teams:        teams,
		heroes:       heroes,
		cache:        searchCache,
		introspector: introspector,
	}
}

// @Summary 		Add team
// @ID 				add-team
// @Tags			Teams Inventory
// @Accept			json
// @Produce			json
// @Param 			team body teamdto.Payload true "Team"
// @Success			201 {object} teamdto.Full
// @Failure			400,401,409,500 {object} response.Error
// @Router			/v1/teams/team [post]
// @Security		BearerAuth
func (c *Controller) InsertTeam(ctx echo.Context) error {
	var payload TeamDTO.Payload

	if err := controller.BindAndValidate(ctx, &payload, team.ValidatePayload); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	created, err := c.teams.Insert(reqCtx, &payload)
	if err != nil {
		return err
	}

	c.cache.Invalidate(reqCtx, team.Entity)

	return ctx.JSON(http.StatusCreated, created)
}

// @Summary 		Add hero
// @Description 	Adds hero into the team with specified name
// @ID 				add-hero
// @Tags			Teams Inventory
// @Accept			json
// @Produce			json
// @Param 			team path string true "Team name"
// @Param 			hero body herodto.Payload true "Hero"
// @Success			201 {object} herodto.Full
// @Failure			400,401,404,500 {object} response.Error
// @Router			/v1/teams/hero/{team} [post]
// @Security		BearerAuth
func (c *Controller) InsertHero(ctx echo.Context) error {
	teamName := strings.TrimSpace(ctx.Param("team"))
	if teamName == "" {
		return Error.NoValue.ToStatus("team", "team name")
	}

	var payload HeroDTO.Payload

	if err := controller.BindAndValidate(ctx, &payload, hero.ValidatePayload); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	created, err := c.heroes.Insert(reqCtx, teamName, &payload)
	if err != nil {
		return err
	}

	c.cache.Invalidate(reqCtx, hero.Entity)

	return ctx.JSON(http.StatusCreated, created)
}

// @Summary 		Recent heroes
// @Description 	Most recently added heroes with names of their teams, newest first
// @ID 				recent-heroes
// @Tags			Teams Inventory
// @Produce			json
// @Param 			limit query int false "Max amount of heroes (1-100)" default(10)
// @Success			200 {array} herodto.WithTeam
// @Failure			400,401,500 {object} response.Error
// @Router			/v1/teams/recent_heroes [post]
// @Security		BearerAuth
func (c *Controller) RecentHeroes(ctx echo.Context) error {
	limit := hero.DefaultRecentLimit

	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecentLimit {
			return Error.InvalidValue.ToStatus("limit", "integer between 1 and "+strconv.Itoa(maxRecentLimit))
		}
		limit = n
	}

	heroes, err := c.heroes.Recent(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}

	return controller.List(ctx, heroes)
}

// @Summary 		Search teams
// @Description 	Search teams by dynamic filter, see /v1/books/search for the filter format
// @ID 				search-teams
// @Tags			Teams Inventory
// @Accept			json
// @Produce			json
// @Param 			filter body object true "Filter"
// @Success			200 {array} teamdto.Full
// @Failure			400,401,500 {object} response.Error
// @Router			/v1/teams/search [post]
// @Security		BearerAuth
func (c *Controller) SearchTeams(ctx echo.Context) error {
	conjunction, err := controller.BuildFilter(ctx, c.introspector, team.Entity)
	if err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	teams, e := cache.Search(reqCtx, c.cache, team.Entity, conjunction, func() ([]*TeamDTO.Full, *Error.Status) {
		return c.teams.Search(reqCtx, conjunction)
	})
	if e != nil {
		return e
	}

	return controller.List(ctx, teams)
}

// @Summary 		Search heroes
// @Description 	Search heroes by dynamic filter, see /v1/books/search for the filter format
// @ID 				search-heroes
// @Tags			Teams Inventory
// @Accept			json
// @Produce			json
// @Param 			filter body object true "Filter"
// @Success			200 {array} herodto.Full
// @Failure			400,401,500 {object} response.Error
// @Router			/v1/teams/heroes/search [post]
// @Security		BearerAuth
func (c *Controller) SearchHeroes(ctx echo.Context) error {
	conjunction, err := controller.BuildFilter(ctx, c.introspector, hero.Entity)
	if err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	heroes, e := cache.Search(reqCtx, c.cache, hero.Entity, conjunction, func() ([]*HeroDTO.Full, *Error.Status) {
		return c.heroes.Search(reqCtx, conjunction)
	})
	if e != nil {
		return e
	}

	return controller.List(ctx, heroes)
}
