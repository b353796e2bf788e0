package app

import (
	"context"
	"fmt"
	"hobbes/packages/common/config"
	"hobbes/packages/infrastructure/DB/postgres"
	"hobbes/packages/infrastructure/cache/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// Returns context which is canceled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Serves HTTP API till ctx is canceled, then gracefully shuts server down.
func Serve(ctx context.Context, router *echo.Echo) {
	serverErr := make(chan error, 1)

	go func() {
		serverErr <- router.Start(":" + config.HTTP.Port)
	}()

	printAppInfo()

	select {
	case <-ctx.Done():
		println()
		appLogger.Info("Shutdown signal received, shutting down...", nil)
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed", err.Error(), nil)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Failed to stop HTTP server", err.Error(), nil)
	} else {
		appLogger.Info("HTTP server stopped", nil)
	}
}

// Closes all connections. Nil arguments are skipped.
func Shutdown(db *postgres.Database, cache *redis.Driver) {
	appLogger.Info("Shutting down...", nil)

	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.Error("Failed to disconnect from DB", err.Error(), nil)
		}
	}

	if cache != nil {
		if err := cache.Close(); err != nil {
			appLogger.Error("Failed to disconnect from cache", err.Error(), nil)
		}
	}

	sentry.Flush(2 * time.Second)

	appLogger.Info("Shut down", nil)
}

func printAppInfo() {
	fmt.Print(`

  ██╗  ██╗  ██████╗  ██████╗  ██████╗  ███████╗ ███████╗
  ██║  ██║ ██╔═══██╗ ██╔══██╗ ██╔══██╗ ██╔════╝ ██╔════╝
  ███████║ ██║   ██║ ██████╔╝ ██████╔╝ █████╗   ███████╗
  ██╔══██║ ██║   ██║ ██╔══██╗ ██╔══██╗ ██╔══╝   ╚════██║
  ██║  ██║ ╚██████╔╝ ██████╔╝ ██████╔╝ ███████╗ ███████║
  ╚═╝  ╚═╝  ╚═════╝  ╚═════╝  ╚═════╝  ╚══════╝ ╚══════╝

`)

	fmt.Println("  Books, teams and heroes inventory service")

	fmt.Printf("  Listening on port: %s\n\n", config.HTTP.Port)

	if config.Debug.Enabled {
		appLogger.Warning("Debug mode enabled.", nil)
		print("\n\n")
	}
}
