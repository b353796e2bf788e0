package query

import (
	"hobbes/packages/core/filter"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

type filterCond string

const (
	CondEqual          filterCond = "="
	CondNotEqual       filterCond = "<>"
	CondLess           filterCond = "<"
	CondGreater        filterCond = ">"
	CondLessOrEqual    filterCond = "<="
	CondGreaterOrEqual filterCond = ">="
	CondBetween        filterCond = "BETWEEN"
)

var condMap = map[filter.Condition]filterCond{
	filter.Equal:          CondEqual,
	filter.NotEqual:       CondNotEqual,
	filter.Less:           CondLess,
	filter.Greater:        CondGreater,
	filter.LessOrEqual:    CondLessOrEqual,
	filter.GreaterOrEqual: CondGreaterOrEqual,
	filter.Between:        CondBetween,
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// Renders conjunction as WHERE clause (including WHERE keyword).
// Placeholders are numbered starting from firstArg.
// Column names are quoted identifiers and all values are passed as arguments.
// Empty conjunction renders empty string and no args.
func Where(conjunction filter.Conjunction, firstArg int) (string, []any) {
	if len(conjunction) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(conjunction))
	args := make([]any, 0, len(conjunction))
	n := firstArg

	for _, p := range conjunction {
		cond, ok := condMap[p.Cond]
		if !ok {
			queryLogger.Panic("Failed to build WHERE clause", "Unknown filter condition: "+p.Cond.String(), nil)
		}

		column := pgx.Identifier{p.Column.Name}.Sanitize()

		if p.Cond == filter.Between {
			parts = append(parts, column+" BETWEEN "+placeholder(n)+" AND "+placeholder(n+1))
			args = append(args, p.Values[0], p.Values[1])
			n += 2
			continue
		}

		parts = append(parts, column+" "+string(cond)+" "+placeholder(n))
		args = append(args, p.Values[0])
		n++
	}

	return " WHERE " + strings.Join(parts, " AND "), args
}

// Creates SELECT query for table filtered by conjunction.
// If orderBy isn't empty, then rows are sorted by this column in descending order.
func Select(table string, columns []string, conjunction filter.Conjunction, orderBy string) *Query {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
	}

	where, args := Where(conjunction, 1)

	sql := "SELECT " + strings.Join(quoted, ", ") + " FROM " + pgx.Identifier{table}.Sanitize() + where
	if orderBy != "" {
		sql += " ORDER BY " + pgx.Identifier{orderBy}.Sanitize() + " DESC"
	}

	return New(sql+";", args...)
}
