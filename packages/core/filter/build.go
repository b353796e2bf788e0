package filter

import (
	"errors"
	"fmt"
	"slices"
)

type Request map[string]string

// Failed to coerce filter operand into the column type.
type CoercionError struct {
	Field string
	// Whole filter value as it was received
	Raw     string
	Operand string
	Kind    ColumnKind
	Err     error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("invalid filter for field '%s' (%q): %s", e.Field, e.Raw, e.Err.Error())
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// Compiles request into a conjunction of predicates for entity.
//
// Fields unknown to the introspector are skipped.
// Fields are processed in sorted order, so the result doesn't depend on map iteration.
// Stops on the first invalid field and returns *CoercionError, never a partial result.
func BuildFilterSet(introspector Introspector, entity string, request Request) (Conjunction, error) {
	fields := make([]string, 0, len(request))
	for field := range request {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	conjunction := make(Conjunction, 0, len(fields))

	for _, field := range fields {
		column, ok := introspector.ColumnType(entity, field)
		if !ok {
			continue
		}

		raw := request[field]

		predicate, err := Compile(column, Parse(raw))
		if err != nil {
			var coercionErr *CoercionError
			if errors.As(err, &coercionErr) {
				coercionErr.Raw = raw
			}
			return nil, err
		}

		conjunction = append(conjunction, predicate)
	}

	return conjunction, nil
}
