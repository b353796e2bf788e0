package postgres

import (
	"context"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/DB/postgres/connection"
	"hobbes/packages/infrastructure/DB/postgres/executor"
	"hobbes/packages/infrastructure/DB/postgres/table/booktable"
	"hobbes/packages/infrastructure/DB/postgres/table/herotable"
	"hobbes/packages/infrastructure/DB/postgres/table/teamtable"
	"time"
)

var dbLogger = logger.NewSource("DB", logger.Default)

var Tables = []string{"book", "team", "hero"}

type Options struct {
	URL          string
	Pool         connection.PoolConfig
	QueryTimeout time.Duration
	LogQueries   bool
	// Skips verification that all tables exist
	SkipTablesCheck bool
}

// Implements all entities "Repository" interfaces
type Database struct {
	Manager *connection.Manager
	Books   *booktable.Table
	Teams   *teamtable.Table
	Heroes  *herotable.Table
}

// Connects to database and creates repositories bound to it's pool.
func Open(ctx context.Context, opt Options) (*Database, error) {
	manager, err := connection.New(opt.URL, opt.Pool)
	if err != nil {
		return nil, err
	}

	if err := manager.Connect(ctx); err != nil {
		return nil, err
	}

	if !opt.SkipTablesCheck {
		if err := manager.CheckTables(ctx, Tables...); err != nil {
			manager.Disconnect()
			return nil, err
		}
	}

	pool := manager.Pool()
	e := executor.New(pool, opt.QueryTimeout).LogQueries(opt.LogQueries)

	return &Database{
		Manager: manager,
		Books:   booktable.New(e),
		Teams:   teamtable.New(e),
		Heroes:  herotable.New(pool, e),
	}, nil
}

func (db *Database) Close() error {
	return db.Manager.Disconnect()
}
