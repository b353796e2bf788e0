package app

import (
	"context"
	"hobbes/packages/common/config"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/DB/postgres"
	"hobbes/packages/infrastructure/DB/postgres/connection"
	"hobbes/packages/infrastructure/cache/redis"
	"hobbes/packages/infrastructure/tasks"
	"os"
	"runtime"
	"time"
)

var appLogger = logger.NewSource("APP", logger.Default)

func StartInit() {
	// All init logs will be shown anyway
	if err := logger.Default.NewTransmission(logger.Stdout); err != nil {
		panic(err.Error())
	}
}

func EndInit() {
	if !config.App.ShowLogs {
		if err := logger.Default.RemoveTransmission(logger.Stdout); err != nil {
			panic(err.Error())
		}
	}
}

// Loads config, applies CLI flags on top of it and starts file logger.
func InitDefault(args *Args) {
	// Program wasn't tested on OS other than Linux.
	if runtime.GOOS != "linux" {
		println("[ CRITICAL ERROR ] OS is not supported. This program can be used only on Linux-based OS.")
		os.Exit(1)
	}

	config.Init(*args.Config)

	if *args.Debug {
		config.Debug.Enabled = true
	}
	if *args.ShowLogs {
		config.App.ShowLogs = true
	}
	if *args.TraceLogs {
		config.App.TraceLogsEnabled = true
	}

	logger.Debug.Store(config.Debug.Enabled)
	logger.Trace.Store(config.App.TraceLogsEnabled)

	if err := logger.Default.Open(config.App.LogsDir); err != nil {
		appLogger.Fatal("Failed to open logs file", err.Error(), nil)
	}
	if err := logger.Default.Start(); err != nil {
		appLogger.Fatal("Failed to start logger", err.Error(), nil)
	}
}

func StopLogger() {
	if err := logger.Default.Stop(); err != nil {
		println("Failed to stop logger: " + err.Error())
	}
}

func OpenDatabase(ctx context.Context) *postgres.Database {
	appLogger.Info("Connecting to DB...", nil)

	db, err := postgres.Open(ctx, postgres.Options{
		URL: config.Secret.DatabaseURL,
		Pool: connection.PoolConfig{
			MinConns: config.DB.MinConns,
			MaxConns: config.DB.MaxConns,
		},
		QueryTimeout: config.DB.QueryTimeout(),
		LogQueries:   config.Debug.Enabled,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to DB", err.Error(), nil)
	}

	appLogger.Info("Connecting to DB: OK", nil)

	return db
}

func ConnectCache(ctx context.Context) *redis.Driver {
	appLogger.Info("Connecting to cache...", nil)

	driver := redis.New(redis.Options{
		Addr:             config.Secret.CacheURI,
		Password:         config.Secret.CachePassword,
		DB:               config.Secret.CacheDB,
		SocketTimeout:    config.Cache.SocketTimeout(),
		OperationTimeout: config.Cache.OperationTimeout(),
		TTL:              config.Cache.TTL(),
	})

	connCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := driver.Connect(connCtx); err != nil {
		appLogger.Fatal("Failed to connect to cache", err.Error(), nil)
	}

	appLogger.Info("Connecting to cache: OK", nil)

	return driver
}

func NewBroker(driver *redis.Driver) *tasks.Broker {
	return tasks.NewBroker(driver.Client(), config.Tasks.Queue, config.Tasks.ResultTTL())
}
