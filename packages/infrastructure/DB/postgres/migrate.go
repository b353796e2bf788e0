package postgres

import (
	"errors"
	"hobbes/packages/infrastructure/DB/postgres/connection"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/stdlib"
)

const DefaultMigrationsSource = "file://migrations"

type Migrate struct {
	manager *connection.Manager
	source  string
}

// source is URL of migrations directory, e.g. "file://migrations"
func NewMigrate(manager *connection.Manager, source string) *Migrate {
	if source == "" {
		source = DefaultMigrationsSource
	}
	return &Migrate{manager: manager, source: source}
}

func (m *Migrate) init() (*migrate.Migrate, error) {
	dbLogger.Trace("Initializing DB driver for migrations...", nil)

	db := stdlib.OpenDB(m.manager.ConnConfig())

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, err
	}

	migrator, err := migrate.NewWithDatabaseInstance(m.source, "postgres", dbDriver)
	if err != nil {
		return nil, err
	}

	dbLogger.Trace("Initializing DB driver for migrations: OK", nil)

	return migrator, nil
}

func (m *Migrate) run(action string, fn func(migrator *migrate.Migrate) error) error {
	migrator, err := m.init()
	if err != nil {
		dbLogger.Error("Failed to initialize migrations", err.Error(), nil)
		return err
	}
	defer migrator.Close()

	dbLogger.Info("Applying migrations... ("+action+")", nil)

	if err := fn(migrator); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		dbLogger.Error("Failed to apply migrations", err.Error(), nil)
		return err
	}

	dbLogger.Info("Migrations applied ("+action+")", nil)

	return nil
}

// Applies all up migrations
func (m *Migrate) Up() error {
	return m.run("up", func(migrator *migrate.Migrate) error {
		return migrator.Up()
	})
}

// Rolls back one migration
func (m *Migrate) Down() error {
	return m.Steps(-1)
}

func (m *Migrate) Steps(n int) error {
	return m.run("version change: "+strconv.Itoa(n), func(migrator *migrate.Migrate) error {
		return migrator.Steps(n)
	})
}

func (m *Migrate) Version() (uint, bool, error) {
	migrator, err := m.init()
	if err != nil {
		return 0, false, err
	}
	defer migrator.Close()

	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
