package core

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/core/filter"
)

// Represents property of any entity.
// Must not be used directly, instead create new type definition
// based on this type for each entity and use it.
//
// To avoid possible vulnerabilities like SQL-injections
// all data of types that defined based on this type must be predefined consts.
// Doing so there are no need in properties validations cuz
// all properties are predefined and correct.
type EntityProperty string

// Read side of any filterable entity.
type Searcher[T any] interface {
	// Returns entities matching all predicates, newest first.
	// Empty conjunction returns all entities.
	Search(ctx context.Context, conjunction filter.Conjunction) ([]T, *Error.Status)
}
