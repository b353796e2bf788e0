package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookSchema = NewSchema("book",
	ColumnDescriptor{"title", Text},
	ColumnDescriptor{"isbn", Text},
	ColumnDescriptor{"genre", Text},
	ColumnDescriptor{"condition", Text},
	ColumnDescriptor{"create_datetimestamp", Timestamp},
)

var numbersSchema = NewSchema("numbers",
	ColumnDescriptor{"a", Integer},
	ColumnDescriptor{"b", Integer},
)

var registry = NewRegistry(bookSchema, numbersSchema)

func compileInt(t *testing.T, raw string) Predicate {
	t.Helper()

	p, err := Compile(ColumnDescriptor{"n", Integer}, Parse(raw))
	require.NoError(t, err)

	return p
}

func TestOperatorsMatchNativeComparison(t *testing.T) {
	ops := map[string]func(v, x int64) bool{
		"!":  func(v, x int64) bool { return v != x },
		">":  func(v, x int64) bool { return v > x },
		"<":  func(v, x int64) bool { return v < x },
		">=": func(v, x int64) bool { return v >= x },
		"<=": func(v, x int64) bool { return v <= x },
		"":   func(v, x int64) bool { return v == x },
	}

	for op, native := range ops {
		p := compileInt(t, op+"5")

		for v := int64(0); v <= 10; v++ {
			assert.Equal(t, native(v, 5), p.Match(v), "%s5 on %d", op, v)
		}
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	p := compileInt(t, "2,8")

	assert.Equal(t, Between, p.Cond)
	assert.True(t, p.Match(int64(2)))
	assert.True(t, p.Match(int64(8)))
	assert.True(t, p.Match(5))
	assert.False(t, p.Match(int64(1)))
	assert.False(t, p.Match(int64(9)))
}

func TestPredicateNeverMatchesNull(t *testing.T) {
	p := compileInt(t, "!5")

	assert.False(t, p.Match(nil))
	assert.False(t, p.Match((*int)(nil)))
	assert.False(t, p.Match("5"))
}

func TestBuildFilterSet(t *testing.T) {
	t.Run("order independence", func(t *testing.T) {
		first, err := BuildFilterSet(registry, "numbers", Request{"a": "!1", "b": ">2"})
		require.NoError(t, err)

		second, err := BuildFilterSet(registry, "numbers", Request{"b": ">2", "a": "!1"})
		require.NoError(t, err)

		assert.ElementsMatch(t, first, second)
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("unknown field is ignored", func(t *testing.T) {
		c, err := BuildFilterSet(registry, "book", Request{"nonexistent_col": "5"})
		require.NoError(t, err)
		assert.Empty(t, c)

		c, err = BuildFilterSet(registry, "book", Request{"nonexistent_col": "5", "genre": "mystery"})
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, "genre", c[0].Column.Name)
	})

	t.Run("unknown entity", func(t *testing.T) {
		c, err := BuildFilterSet(registry, "nope", Request{"genre": "mystery"})
		require.NoError(t, err)
		assert.Empty(t, c)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		c, err := BuildFilterSet(registry, "book", Request{
			"genre":                "mystery",
			"create_datetimestamp": "<not-a-date",
		})

		assert.Nil(t, c)
		require.ErrorIs(t, err, ErrMalformedTimestamp)

		var coercionErr *CoercionError
		require.ErrorAs(t, err, &coercionErr)
		assert.Equal(t, "create_datetimestamp", coercionErr.Field)
		assert.Equal(t, "<not-a-date", coercionErr.Raw)
		assert.Equal(t, "not-a-date", coercionErr.Operand)
		assert.Equal(t, Timestamp, coercionErr.Kind)
	})

	t.Run("well-formed timestamp", func(t *testing.T) {
		c, err := BuildFilterSet(registry, "book", Request{"create_datetimestamp": "<2024-06-01T00:00:00Z"})
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, Less, c[0].Cond)
	})

	t.Run("malformed integer", func(t *testing.T) {
		_, err := BuildFilterSet(registry, "numbers", Request{"a": "1,x"})
		assert.ErrorIs(t, err, ErrMalformedInteger)
	})
}

func TestBookScenario(t *testing.T) {
	rows := []Row{
		{
			"title":                "The Hound of the Baskervilles",
			"genre":                "mystery",
			"create_datetimestamp": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"title":                "Dune",
			"genre":                "scifi",
			"create_datetimestamp": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	c, err := BuildFilterSet(registry, "book", Request{
		"genre":                "mystery",
		"create_datetimestamp": "<2025-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, c, 2)

	// fields are sorted
	assert.Equal(t, "create_datetimestamp", c[0].Column.Name)
	assert.Equal(t, Less, c[0].Cond)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), c[0].Values[0])
	assert.Equal(t, "genre", c[1].Column.Name)
	assert.Equal(t, Equal, c[1].Cond)
	assert.Equal(t, "mystery", c[1].Values[0])

	var matched []Row
	for _, row := range rows {
		if c.Match(row) {
			matched = append(matched, row)
		}
	}

	require.Len(t, matched, 1)
	assert.Equal(t, "The Hound of the Baskervilles", matched[0]["title"])
}

func TestEmptyRequestMatchesEverything(t *testing.T) {
	c, err := BuildFilterSet(registry, "book", Request{})
	require.NoError(t, err)
	assert.Empty(t, c)

	assert.True(t, c.Match(Row{"genre": "anything"}))
	assert.True(t, c.Match(Row{}))
	assert.Equal(t, "", c.String())
}

func TestSchema(t *testing.T) {
	col, ok := registry.ColumnType("book", "create_datetimestamp")
	require.True(t, ok)
	assert.Equal(t, Timestamp, col.Kind)

	_, ok = registry.ColumnType("book", "book_id")
	assert.False(t, ok)

	assert.Panics(t, func() {
		NewSchema("dup", ColumnDescriptor{"a", Text}, ColumnDescriptor{"a", Integer})
	})
	assert.Panics(t, func() {
		NewRegistry(bookSchema, bookSchema)
	})
}
