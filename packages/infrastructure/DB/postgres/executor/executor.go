package executor

import (
	"context"
	"fmt"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/DB/postgres/query"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var executorLogger = logger.NewSource("EXECUTOR", logger.Default)

// Subset of pgx API shared by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Runs queries with timeout, logs and converts their errors into *Error.Status
type Executor struct {
	querier    Querier
	timeout    time.Duration
	logQueries bool
}

// If timeout is zero or negative, queries are bound only by caller's context.
func New(querier Querier, timeout time.Duration) *Executor {
	return &Executor{
		querier: querier,
		timeout: timeout,
	}
}

// Enables debug logging of all queries with their args.
func (e *Executor) LogQueries(enabled bool) *Executor {
	e.logQueries = enabled
	return e
}

// Same executor, but runs queries via another querier (e.g. transaction).
func (e *Executor) With(querier Querier) *Executor {
	return &Executor{
		querier:    querier,
		timeout:    e.timeout,
		logQueries: e.logQueries,
	}
}

func (e *Executor) prepare(ctx context.Context, q *query.Query) (context.Context, context.CancelFunc) {
	if e.logQueries {
		args := make([]string, len(q.Args))

		for i, arg := range q.Args {
			switch a := arg.(type) {
			case time.Time:
				args[i] = a.Format(time.RFC3339)
			case string:
				args[i] = a
			default:
				args[i] = fmt.Sprint(a)
			}
		}

		executorLogger.Debug("Running query:\n"+q.SQL+"\n * Query args: "+strings.Join(args, "; "), nil)
	}

	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, e.timeout)
}

// Runs query and collects all resulting rows via scan.
// Empty result isn't an error.
func Collect[T any](
	ctx context.Context,
	e *Executor,
	q *query.Query,
	scan func(row pgx.CollectableRow) (T, error),
) ([]T, *Error.Status) {
	ctx, cancel := e.prepare(ctx, q)
	defer cancel()

	rows, err := e.querier.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, q.ConvertError(err)
	}

	result, err := pgx.CollectRows(rows, scan)
	if err != nil {
		executorLogger.Error("Failed to collect rows", err.Error(), nil)
		return nil, q.ConvertError(err)
	}

	return result, nil
}

// Wrapper for 'QueryRow'.
// Scans resulting row into dests, which must be pointers.
// Returns Error.StatusNotFound if there are no rows.
func (e *Executor) Row(ctx context.Context, q *query.Query, dests ...any) *Error.Status {
	ctx, cancel := e.prepare(ctx, q)
	defer cancel()

	if err := e.querier.QueryRow(ctx, q.SQL, q.Args...).Scan(dests...); err != nil {
		return q.ConvertError(err)
	}

	return nil
}

// Wrapper for 'Exec'. Returns amount of affected rows.
func (e *Executor) Exec(ctx context.Context, q *query.Query) (int64, *Error.Status) {
	ctx, cancel := e.prepare(ctx, q)
	defer cancel()

	tag, err := e.querier.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return 0, q.ConvertError(err)
	}

	return tag.RowsAffected(), nil
}
