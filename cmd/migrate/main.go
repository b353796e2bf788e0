package main

import (
	"hobbes/cmd/app"
	"hobbes/packages/common/config"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/DB/postgres"
	"hobbes/packages/infrastructure/DB/postgres/connection"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
)

var migrateLogger = logger.NewSource("MIGRATE", logger.Default)

func main() {
	parser := argparse.NewParser("hobbes-migrate", "Application for applying database migrations to hobbes DB")
	args := app.RegisterArgs(parser)
	steps := parser.String("s", "steps", &argparse.Options{
		Required: true,
		Help: "(Required) Amount of database migration steps. Valid values:\n" +
			"\t\t\t- Up: Apply all migrations\n" +
			"\t\t\t- Down: Migrate back on 1 version\n" +
			"\t\t\t- N: Number, if N > 0 then will migrate forward on N versions, if N < 0 then will migrate back on N versions",
	})
	source := parser.String("S", "source", &argparse.Options{
		Default: postgres.DefaultMigrationsSource,
		Help:    "URL of migrations directory",
	})
	app.ParseArgs(parser)

	app.StartInit()
	app.InitDefault(args)

	ctx, stop := app.SignalContext()
	defer stop()

	manager, err := connection.New(config.Secret.DatabaseURL, connection.PoolConfig{MaxConns: 1})
	if err != nil {
		migrateLogger.Fatal("Invalid DB URL", err.Error(), nil)
	}
	if err := manager.Connect(ctx); err != nil {
		migrateLogger.Fatal("Failed to connect to DB", err.Error(), nil)
	}

	app.EndInit()

	err = migrateDB(postgres.NewMigrate(manager, *source), *steps)

	if e := manager.Disconnect(); e != nil {
		migrateLogger.Error("Failed to disconnect from DB", e.Error(), nil)
	}

	app.StopLogger()

	if err != nil {
		println("Failed to apply migration.\n" + err.Error())
		os.Exit(1)
	}
}

func migrateDB(m *postgres.Migrate, steps string) error {
	switch steps {
	case "Up", "up":
		return m.Up()
	case "Down", "down":
		return m.Down()
	}

	n, err := strconv.Atoi(steps)
	if err != nil {
		println("Invalid 'steps' argument value. Expected: number or 'Up' or 'Down'. Got: " + steps)
		os.Exit(1)
	}

	return m.Steps(n)
}
