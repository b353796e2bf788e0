package router

import (
	_ "hobbes/docs"
	"hobbes/packages/common/logger"
	"hobbes/packages/core/book"
	"hobbes/packages/core/filter"
	"hobbes/packages/core/hero"
	"hobbes/packages/core/team"
	"hobbes/packages/infrastructure/auth/authn"
	"hobbes/packages/infrastructure/cache"
	"hobbes/packages/infrastructure/token"
	controller "hobbes/packages/presentation/api/http/controllers"
	Auth "hobbes/packages/presentation/api/http/controllers/auth"
	Book "hobbes/packages/presentation/api/http/controllers/book"
	Cache "hobbes/packages/presentation/api/http/controllers/cache"
	Docs "hobbes/packages/presentation/api/http/controllers/docs"
	Health "hobbes/packages/presentation/api/http/controllers/health"
	Task "hobbes/packages/presentation/api/http/controllers/task"
	Team "hobbes/packages/presentation/api/http/controllers/team"
	Middleware "hobbes/packages/presentation/api/http/middleware"
	"hobbes/packages/presentation/api/http/request"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var log = logger.NewSource("ROUTER", logger.Default)

// i could just explicitly pass empty string in routes when i need it
// but it looks really awful and not obvious
const rootPath = ""

type Dependencies struct {
	Books         book.Repository
	Teams         team.Repository
	Heroes        hero.Repository
	Introspector  filter.Introspector
	Cache         *cache.SearchCache
	// Task routes aren't registered if nil
	Tasks         controller.TaskQueue
	Authenticator authn.Authenticator
	Issuer        *token.Issuer
}

type Options struct {
	AllowedOrigins []string
	BodyLimit      string
	RateLimit      float64
	RateBurst      int
	// Sentry is disabled if empty
	SentryDSN string
	Debug     bool
}

func Create(deps Dependencies, opt Options) *echo.Echo {
	router := echo.New()

	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = handleHttpError
	router.JSONSerializer = serializer{}
	router.Binder = binder{}

	cors := middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: opt.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
		},
		ExposeHeaders: []string{
			echo.HeaderXRequestID,
			echo.HeaderWWWAuthenticate,
			"Retry-After",
		},
	}

	router.Use(middleware.Recover())
	router.Use(Middleware.Metrics)
	router.Use(Middleware.SecurityHeaders)
	router.Use(middleware.BodyLimit(opt.BodyLimit))
	router.Use(middleware.RequestID())
	router.Use(request.Middleware)
	router.Use(middleware.CORSWithConfig(cors))
	router.Use(Middleware.CheckOrigin(opt.AllowedOrigins))

	if opt.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              opt.SentryDSN,
			Debug:            opt.Debug,
			ServerName:       "hobbes",
			AttachStacktrace: true,
		}); err != nil {
			log.Panic("Sentry initialization failed", err.Error(), nil)
		}
		router.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	} else {
		log.Info("Sentry DSN isn't set, error reporting disabled", nil)
	}

	if opt.RateLimit > 0 {
		router.Use(Middleware.RateLimiter(opt.RateLimit, opt.RateBurst))
	}

	if opt.Debug {
		router.Use(middleware.Logger())
	}

	read := Middleware.Secure(deps.Issuer, token.ScopeRead)
	write := Middleware.Secure(deps.Issuer, token.ScopeWrite)

	router.GET("/health", Health.Health)
	router.GET("/metrics", Health.Metrics)

	auth := Auth.New(deps.Authenticator, deps.Issuer)

	authGroup := router.Group("/auth", Middleware.NoCache)

	authGroup.POST("/token", auth.Login, Middleware.LoginRateLimiter())

	apiV1 := router.Group("/v1")

	books := Book.New(deps.Books, deps.Cache, deps.Tasks, deps.Introspector)

	booksGroup := apiV1.Group("/books")

	booksGroup.POST("/book", books.Insert, write)
	booksGroup.GET("/all", books.All)
	booksGroup.GET("/getbydate", books.GetByDate)
	booksGroup.POST("/search", books.Search, read)

	teams := Team.New(deps.Teams, deps.Heroes, deps.Cache, deps.Introspector)

	teamsGroup := apiV1.Group("/teams")

	teamsGroup.POST("/team", teams.InsertTeam, write)
	teamsGroup.POST("/hero/:team", teams.InsertHero, write)
	teamsGroup.POST("/recent_heroes", teams.RecentHeroes, read)
	teamsGroup.POST("/search", teams.SearchTeams, read)
	teamsGroup.POST("/heroes/search", teams.SearchHeroes, read)

	if deps.Tasks != nil {
		tasks := Task.New(deps.Tasks)

		tasksGroup := apiV1.Group("/tasks", Middleware.NoCache)

		tasksGroup.GET("/:id", tasks.Get, read)
		tasksGroup.POST("/:id/replay", tasks.Replay, write)
	}

	cacheGroup := apiV1.Group("/cache", write, Middleware.NoCache)

	cacheGroup.DELETE(rootPath, Cache.New(deps.Cache).Drop)

	docsGroupMiddlewares := []echo.MiddlewareFunc{}
	if !opt.Debug {
		docsGroupMiddlewares = append(docsGroupMiddlewares, read)
	}

	docsGroup := router.Group("/docs", docsGroupMiddlewares...)

	docsGroup.GET("/*", Docs.Swagger)

	return router
}
