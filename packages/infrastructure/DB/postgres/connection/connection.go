package connection

import (
	"context"
	"errors"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var connectionLogger = logger.NewSource("CONNECTION", logger.Default)

type PoolConfig struct {
	MinConns int32
	MaxConns int32
}

// Owns connection pool of a single database.
// Must be created via New() and passed explicitly to whoever needs the database.
type Manager struct {
	pool        *pgxpool.Pool
	config      *pgxpool.Config
	isConnected atomic.Bool
}

func New(url string, poolConfig PoolConfig) (*Manager, error) {
	connectionLogger.Trace("Creating connection config...", nil)

	conConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	if poolConfig.MaxConns > 0 {
		conConfig.MaxConns = poolConfig.MaxConns
	}
	if poolConfig.MinConns > 0 {
		conConfig.MinConns = poolConfig.MinConns
	}
	conConfig.MaxConnIdleTime = time.Minute * 5
	conConfig.MaxConnLifetime = time.Minute * 60

	connectionLogger.Trace("Creating connection config: OK", nil)

	return &Manager{config: conConfig}, nil
}

func (m *Manager) IsConnected() bool {
	return m.isConnected.Load()
}

func (m *Manager) Pool() *pgxpool.Pool {
	return m.pool
}

// Config of the pool, required to open database/sql connections (e.g. for migrations).
func (m *Manager) ConnConfig() pgx.ConnConfig {
	return *m.config.ConnConfig
}

// Creates connection pool and pings database.
func (m *Manager) Connect(ctx context.Context) error {
	if m.isConnected.Load() {
		return errors.New("connection already established")
	}

	connectionLogger.Info("Creating connection pool...", nil)

	pool, err := pgxpool.NewWithConfig(ctx, m.config)
	if err != nil {
		return err
	}

	connectionLogger.Info("Ping connection...", nil)

	pingCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.New("ping timeout")
		}
		return err
	}

	connectionLogger.Info("Ping connection: OK", nil)

	m.pool = pool
	m.isConnected.Store(true)

	connectionLogger.Info("Creating connection pool: OK", nil)

	return nil
}

func (m *Manager) Disconnect() error {
	if !m.isConnected.Load() {
		return errors.New("connection not established")
	}

	connectionLogger.Info("Closing connection pool...", nil)

	done := make(chan struct{})

	go func() {
		m.pool.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second * 10):
		return errors.New("timeout exceeded")
	}

	m.isConnected.Store(false)

	connectionLogger.Info("Closing connection pool: OK", nil)

	return nil
}

// Don't forget to release connection
func (m *Manager) Acquire(ctx context.Context) (*pgxpool.Conn, *Error.Status) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	connection, err := m.pool.Acquire(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, Error.StatusTimeout
		}

		connectionLogger.Error("Failed to acquire connection from pool", err.Error(), nil)

		return nil, Error.StatusInternalError
	}

	return connection, nil
}

// Returns error if at least one of tables doesn't exist in the public schema.
func (m *Manager) CheckTables(ctx context.Context, tables ...string) error {
	connectionLogger.Info("Verifying that all tables exists...", nil)

	con, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer con.Release()

	sql := `SELECT t.table_name, EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name = t.table_name
	) AS table_exists FROM unnest($1::text[]) AS t(table_name);`

	rows, e := con.Query(ctx, sql, tables)
	if e != nil {
		return e
	}

	type table struct {
		name   string
		exists bool
	}

	result, e := pgx.CollectRows(rows, func(row pgx.CollectableRow) (table, error) {
		var t table
		err := row.Scan(&t.name, &t.exists)
		return t, err
	})
	if e != nil {
		return e
	}

	nonExistingTables := []string{}
	for _, t := range result {
		if !t.exists {
			nonExistingTables = append(nonExistingTables, t.name)
		}
	}

	if len(nonExistingTables) != 0 {
		return errors.New("following table(-s) does not exists: " + strings.Join(nonExistingTables, ", "))
	}

	connectionLogger.Info("Verifying that all tables exists: OK", nil)

	return nil
}
