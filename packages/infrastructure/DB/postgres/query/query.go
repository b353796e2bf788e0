package query

import (
	"context"
	"errors"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var queryLogger = logger.NewSource("QUERY", logger.Default)

type Query struct {
	SQL  string
	Args []any
}

func New(sql string, args ...any) *Query {
	return &Query{
		SQL:  sql,
		Args: args,
	}
}

// SQLSTATE codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var StatusConflict = Error.NewStatusError(
	"Resource already exists",
	http.StatusConflict,
)

var StatusInvalidReference = Error.NewStatusError(
	"Referenced resource doesn't exist",
	http.StatusUnprocessableEntity,
)

// Converts err into *Error.Status
func (q *Query) ConvertError(err error) *Error.Status {
	if errors.Is(err, pgx.ErrNoRows) {
		return Error.StatusNotFound
	}

	defer queryLogger.Debug("Failed query: "+q.SQL, nil)

	if errors.Is(err, context.DeadlineExceeded) {
		queryLogger.Error("Query failed", "Operation timeout", nil)
		return Error.StatusTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return StatusConflict
		case foreignKeyViolation:
			return StatusInvalidReference
		}
	}

	queryLogger.Error("Query failed", err.Error(), nil)
	return Error.StatusInternalError
}
