package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Single column test with coerced operand(s).
// Values has one element, or two for Between.
type Predicate struct {
	Column ColumnDescriptor
	Cond   Condition
	Values []any
}

// Coerces operands of parsed filter according to column kind.
// Coercion failures are returned as *CoercionError.
func Compile(column ColumnDescriptor, parsed Parsed) (Predicate, error) {
	if len(parsed.Operands) != parsed.Cond.Arity() {
		return Predicate{}, fmt.Errorf(
			"condition %s expects %d operand(s), got %d",
			parsed.Cond, parsed.Cond.Arity(), len(parsed.Operands),
		)
	}

	values := make([]any, len(parsed.Operands))

	for i, operand := range parsed.Operands {
		v, err := Coerce(column.Kind, operand)
		if err != nil {
			return Predicate{}, &CoercionError{
				Field:   column.Name,
				Operand: operand,
				Kind:    column.Kind,
				Err:     err,
			}
		}
		values[i] = v
	}

	return Predicate{
		Column: column,
		Cond:   parsed.Cond,
		Values: values,
	}, nil
}

// Evaluates predicate against value.
// Like in SQL, nil (NULL) or incomparable value never matches.
func (p Predicate) Match(value any) bool {
	c, ok := compare(value, p.Values[0])
	if !ok {
		return false
	}

	switch p.Cond {
	case Equal:
		return c == 0
	case NotEqual:
		return c != 0
	case Less:
		return c < 0
	case Greater:
		return c > 0
	case LessOrEqual:
		return c <= 0
	case GreaterOrEqual:
		return c >= 0
	case Between:
		upper, ok := compare(value, p.Values[1])
		return ok && c >= 0 && upper <= 0
	}

	return false
}

func (p Predicate) String() string {
	if p.Cond == Between {
		return p.Column.Name + " BETWEEN " + formatValue(p.Values[0]) + " AND " + formatValue(p.Values[1])
	}
	return p.Column.Name + " " + p.Cond.String() + " " + formatValue(p.Values[0])
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case time.Time:
		return v.Format(TimestampLayout)
	default:
		return fmt.Sprint(v)
	}
}

// Compares a with b, returns false if they aren't comparable.
func compare(a any, b any) (int, bool) {
	switch bv := b.(type) {
	case string:
		av, ok := a.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case int64:
		av, ok := toInt64(a)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case time.Time:
		av, ok := a.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case *int:
		if v == nil {
			return 0, false
		}
		return int64(*v), true
	case *int64:
		if v == nil {
			return 0, false
		}
		return *v, true
	}
	return 0, false
}

// Row of entity represented as column name -> value
type Row map[string]any

// Logical AND of predicates.
type Conjunction []Predicate

// Reports whether row satisfies all predicates.
// Empty conjunction matches any row.
func (c Conjunction) Match(row Row) bool {
	for _, p := range c {
		if !p.Match(row[p.Column.Name]) {
			return false
		}
	}
	return true
}

// Canonical text of conjunction, same predicates in same order always give same string.
func (c Conjunction) String() string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = p.String()
	}
	return strings.Join(parts, " AND ")
}
