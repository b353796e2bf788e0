// Filter schemas of all entities of the service.
package schema

import (
	"hobbes/packages/core/book"
	"hobbes/packages/core/filter"
	"hobbes/packages/core/hero"
	"hobbes/packages/core/team"
)

var Registry = filter.NewRegistry(
	book.Schema,
	team.Schema,
	hero.Schema,
)
