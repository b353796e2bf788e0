package book

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/core"
	BookDTO "hobbes/packages/core/book/DTO"
	"time"
)

type Repository interface {
	core.Searcher[*BookDTO.Full]

	Insert(ctx context.Context, payload *BookDTO.Payload) (*BookDTO.Full, *Error.Status)

	// All books, newest first
	All(ctx context.Context) ([]*BookDTO.Full, *Error.Status)

	// Books created after (CompareGreater) or before (CompareLess) date, newest first
	ByDate(ctx context.Context, date time.Time, compare Compare) ([]*BookDTO.Full, *Error.Status)
}
