package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw      string
		cond     Condition
		operands []string
	}{
		{"!5", NotEqual, []string{"5"}},
		{">5", Greater, []string{"5"}},
		{"<5", Less, []string{"5"}},
		{">=5", GreaterOrEqual, []string{"5"}},
		{"<=5", LessOrEqual, []string{"5"}},
		{"!", NotEqual, []string{""}},
		{"2,8", Between, []string{"2", "8"}},
		{"abc_1,zzz", Between, []string{"abc_1", "zzz"}},
		{"2024-01-01T00:00:00Z,2024-12-31T23:59:59Z", Between, []string{"2024-01-01T00:00:00Z", "2024-12-31T23:59:59Z"}},
		{"mystery", Equal, []string{"mystery"}},
		{"", Equal, []string{""}},
		{"=5", Equal, []string{"=5"}},
		{"5>", Equal, []string{"5>"}},
		// between tokens must be non-empty
		{",5", Equal, []string{",5"}},
		{"5,", Equal, []string{"5,"}},
		{",", Equal, []string{","}},
		// exactly one comma
		{"1,2,3", Equal, []string{"1,2,3"}},
		// between is anchored to the whole string
		{"xx,yy extra", Equal, []string{"xx,yy extra"}},
		{"a b,c", Equal, []string{"a b,c"}},
		// prefix operators win over between
		{">1,2", Greater, []string{"1,2"}},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			p := Parse(c.raw)

			assert.Equal(t, c.cond, p.Cond)
			assert.Equal(t, c.operands, p.Operands)
		})
	}
}

func TestParseNeverMisreadsMultiCharOperators(t *testing.T) {
	p := Parse(">=5")
	assert.NotEqual(t, Greater, p.Cond)
	assert.Equal(t, []string{"5"}, p.Operands)

	p = Parse("<=5")
	assert.NotEqual(t, Less, p.Cond)
	assert.Equal(t, []string{"5"}, p.Operands)
}
