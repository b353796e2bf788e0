package book

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/validation"
	"hobbes/packages/core"
	BookDTO "hobbes/packages/core/book/DTO"
	"hobbes/packages/core/filter"
	"net/http"
	"time"
)

const Entity = "book"

type Property core.EntityProperty

const (
	IdProperty        Property = "book_id"
	TitleProperty     Property = "title"
	ISBNProperty      Property = "isbn"
	GenreProperty     Property = "genre"
	ConditionProperty Property = "condition"
	CreatedAtProperty Property = "create_datetimestamp"
)

// Filterable columns of book.
// book_id isn't filterable, use it for lookups instead.
var Schema = filter.NewSchema(Entity,
	filter.ColumnDescriptor{Name: string(TitleProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(ISBNProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(GenreProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(ConditionProperty), Kind: filter.Text},
	filter.ColumnDescriptor{Name: string(CreatedAtProperty), Kind: filter.Timestamp},
)

// Comparison used by date lookup
type Compare string

const (
	CompareGreater Compare = "gt"
	CompareLess    Compare = "lt"
)

var ErrInvalidCompare = Error.NewStatusError(
	"compare must be either 'gt' or 'lt'",
	http.StatusBadRequest,
)

func ParseCompare(raw string) (Compare, *Error.Status) {
	switch Compare(raw) {
	case CompareGreater, CompareLess:
		return Compare(raw), nil
	}
	return "", ErrInvalidCompare
}

var ErrInvalidDate = Error.NewStatusError(
	"date_param has invalid format (expected: "+filter.TimestampLayout+" or RFC3339)",
	http.StatusBadRequest,
)

// Accepts both strict filter timestamp layout and RFC3339.
func ParseDate(raw string) (time.Time, *Error.Status) {
	if t, err := filter.Coerce(filter.Timestamp, raw); err == nil {
		return t.(time.Time), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

func ValidatePayload(p *BookDTO.Payload) *Error.Status {
	fields := []struct {
		name  Property
		value string
	}{
		{TitleProperty, p.Title},
		{ISBNProperty, p.ISBN},
		{GenreProperty, p.Genre},
		{ConditionProperty, p.Condition},
	}

	for _, f := range fields {
		if err := validation.NotBlank(f.value); err != nil {
			return err.ToStatus(string(f.name), "non-empty string")
		}
	}

	return nil
}
