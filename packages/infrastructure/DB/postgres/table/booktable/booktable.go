package booktable

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/common/util"
	"hobbes/packages/core/book"
	BookDTO "hobbes/packages/core/book/DTO"
	"hobbes/packages/core/filter"
	"hobbes/packages/infrastructure/DB/postgres/executor"
	"hobbes/packages/infrastructure/DB/postgres/query"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var bookLogger = logger.NewSource("BOOK TABLE", logger.Default)

const table = "book"

var columns = []string{
	string(book.IdProperty),
	string(book.TitleProperty),
	string(book.ISBNProperty),
	string(book.GenreProperty),
	string(book.ConditionProperty),
	string(book.CreatedAtProperty),
}

// Satisfies book.Repository interface
type Table struct {
	executor *executor.Executor
}

func New(e *executor.Executor) *Table {
	return &Table{executor: e}
}

func scan(row pgx.CollectableRow) (*BookDTO.Full, error) {
	dto := new(BookDTO.Full)

	var id uuid.UUID

	if err := row.Scan(
		&id,
		&dto.Title,
		&dto.ISBN,
		&dto.Genre,
		&dto.Condition,
		&dto.CreatedAt,
	); err != nil {
		return nil, err
	}

	dto.ID = id.String()
	dto.CreatedAt = dto.CreatedAt.UTC()

	return dto, nil
}

func (t *Table) Insert(ctx context.Context, payload *BookDTO.Payload) (*BookDTO.Full, *Error.Status) {
	dto := &BookDTO.Full{
		ID:        uuid.NewString(),
		Title:     payload.Title,
		ISBN:      payload.ISBN,
		Genre:     payload.Genre,
		Condition: payload.Condition,
		CreatedAt: util.NowUTC(),
	}

	bookLogger.Trace("Inserting book "+dto.ID+"...", nil)

	q := query.New(
		`INSERT INTO "book" (book_id, title, isbn, genre, condition, create_datetimestamp)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		dto.ID, dto.Title, dto.ISBN, dto.Genre, dto.Condition, dto.CreatedAt,
	)

	if _, err := t.executor.Exec(ctx, q); err != nil {
		bookLogger.Error("Failed to insert book", err.Error(), nil)
		return nil, err
	}

	bookLogger.Trace("Inserting book "+dto.ID+": OK", nil)

	return dto, nil
}

func (t *Table) All(ctx context.Context) ([]*BookDTO.Full, *Error.Status) {
	return t.Search(ctx, nil)
}

func (t *Table) ByDate(ctx context.Context, date time.Time, compare book.Compare) ([]*BookDTO.Full, *Error.Status) {
	column, _ := book.Schema.Column(string(book.CreatedAtProperty))

	cond := filter.Less
	if compare == book.CompareGreater {
		cond = filter.Greater
	}

	return t.Search(ctx, filter.Conjunction{{
		Column: column,
		Cond:   cond,
		Values: []any{date},
	}})
}

func (t *Table) Search(ctx context.Context, conjunction filter.Conjunction) ([]*BookDTO.Full, *Error.Status) {
	q := query.Select(table, columns, conjunction, string(book.CreatedAtProperty))

	return executor.Collect(ctx, t.executor, q, scan)
}
