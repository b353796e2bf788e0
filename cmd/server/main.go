package main

import (
	"hobbes/cmd/app"
	"hobbes/packages/common/config"
	"hobbes/packages/common/logger"
	"hobbes/packages/core/schema"
	"hobbes/packages/infrastructure/auth/authn"
	"hobbes/packages/infrastructure/cache"
	"hobbes/packages/infrastructure/token"
	"hobbes/packages/presentation/api/http/router"
	"time"

	"github.com/akamensky/argparse"
)

var log = logger.NewSource("SERVER", logger.Default)

// @title						Hobbes inventory API
// @version					1.0
// @description				Books, teams and heroes inventory with dynamic filter search.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Bearer access token, obtained via /auth/token
func main() {
	parser := argparse.NewParser("hobbes", "Books, teams and heroes inventory service")
	args := app.RegisterArgs(parser)
	app.ParseArgs(parser)

	app.StartInit()
	app.InitDefault(args)
	defer app.StopLogger()

	ctx, stop := app.SignalContext()
	defer stop()

	db := app.OpenDatabase(ctx)
	cacheDriver := app.ConnectCache(ctx)

	issuer := token.NewIssuer(config.Secret.JWTKey, config.Auth.AccessTokenTTL(), config.Auth.TokenIssuer)

	deps := router.Dependencies{
		Books:         db.Books,
		Teams:         db.Teams,
		Heroes:        db.Heroes,
		Introspector:  schema.Registry,
		Cache:         cache.NewSearchCache(cacheDriver),
		Tasks:         app.NewBroker(cacheDriver),
		Authenticator: newAuthenticator(),
		Issuer:        issuer,
	}

	r := router.Create(deps, router.Options{
		AllowedOrigins: config.HTTP.AllowedOrigins,
		BodyLimit:      config.HTTP.BodyLimit,
		RateLimit:      config.HTTP.RateLimit,
		RateBurst:      config.HTTP.RateBurst,
		SentryDSN:      config.Secret.SentryDSN,
		Debug:          config.Debug.Enabled,
	})

	app.EndInit()

	app.Serve(ctx, r)

	app.Shutdown(db, cacheDriver)
}

func newAuthenticator() authn.Authenticator {
	if config.Auth.TestingMode {
		log.Warning("Testing mode enabled, users are authenticated against config", nil)
		return authn.NewStatic(config.Auth.TestingUsers)
	}

	return authn.NewLDAP(authn.LDAPOptions{
		URLs:           config.Auth.LDAPURLs,
		Domain:         config.Auth.LDAPDomain,
		ConnectTimeout: config.Auth.LDAPConnectTimeout(),
		ReceiveTimeout: config.Auth.LDAPReceiveTimeout(),
		TimeLimit:      time.Duration(config.Auth.LDAPTimeLimit) * time.Second,
	})
}
