package transaction

import (
	"context"
	"errors"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/DB/postgres/executor"
	"hobbes/packages/infrastructure/DB/postgres/query"

	"github.com/jackc/pgx/v5"
)

var txLogger = logger.NewSource("DB TRANSACTION", logger.Default)

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Runs fn inside of transaction. fn receives executor bound to the transaction.
// Transaction is committed if fn returns nil, otherwise it's rolled back.
func Run(ctx context.Context, db Beginner, e *executor.Executor, fn func(tx *executor.Executor) *Error.Status) *Error.Status {
	tx, err := db.Begin(ctx)
	if err != nil {
		txLogger.Error("Failed to begin transaction", err.Error(), nil)
		return Error.StatusInternalError
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			txLogger.Error("Rollback failed (non-critical)", err.Error(), nil)
		}
	}()

	if err := fn(e.With(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		txLogger.Error("Failed to commit transaction", err.Error(), nil)
		return Error.StatusInternalError
	}

	return nil
}

type Transaction struct {
	queries []*query.Query
}

func New(queries ...*query.Query) *Transaction {
	return &Transaction{queries}
}

// Executes all queries atomically.
func (t *Transaction) Exec(ctx context.Context, db Beginner, e *executor.Executor) *Error.Status {
	if len(t.queries) == 0 {
		txLogger.Warning("Transaction has no queries, execution will be skipped", nil)
		return nil
	}

	for _, q := range t.queries {
		if q == nil {
			txLogger.Error("Failed to run transaction", "At least one query is nil", nil)
			return Error.StatusInternalError
		}
	}

	return Run(ctx, db, e, func(tx *executor.Executor) *Error.Status {
		for _, q := range t.queries {
			if _, err := tx.Exec(ctx, q); err != nil {
				return err
			}
		}
		return nil
	})
}
