// Entity filter.
//
// Compiles loosely typed filter requests (field -> operator encoded string)
// into a conjunction of single column predicates with typed operands.
// Everything in this package is pure and safe for concurrent use.
package filter

type Condition byte

const (
	Equal Condition = 1 + iota
	NotEqual
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
	// Inclusive on both ends
	Between
)

var condToStrMap = map[Condition]string{
	Equal:          "=",
	NotEqual:       "!=",
	Less:           "<",
	Greater:        ">",
	LessOrEqual:    "<=",
	GreaterOrEqual: ">=",
	Between:        "BETWEEN",
}

func (c Condition) String() string {
	if s, ok := condToStrMap[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// Amount of operands required by condition.
func (c Condition) Arity() int {
	if c == Between {
		return 2
	}
	return 1
}
