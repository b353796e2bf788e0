package schema

import (
	"hobbes/packages/core/filter"
	"testing"
	"time"

	HeroDTO "hobbes/packages/core/hero/DTO"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	cases := []struct {
		entity string
		field  string
		kind   filter.ColumnKind
	}{
		{"book", "isbn", filter.Text},
		{"book", "create_datetimestamp", filter.Timestamp},
		{"team", "id", filter.Integer},
		{"team", "headquarters", filter.Text},
		{"hero", "age", filter.Integer},
		{"hero", "team_id", filter.Integer},
	}

	for _, c := range cases {
		col, ok := Registry.ColumnType(c.entity, c.field)
		require.True(t, ok, c.entity+"."+c.field)
		assert.Equal(t, c.kind, col.Kind)
	}

	_, ok := Registry.ColumnType("book", "book_id")
	assert.False(t, ok)
}

func TestHeroFilter(t *testing.T) {
	age := 30
	heroes := []*HeroDTO.Full{
		{ID: 1, Name: "Deadpond", Age: &age, TeamID: 1, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Rusty-Man", TeamID: 2, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	c, err := filter.BuildFilterSet(Registry, "hero", filter.Request{"age": "18,65"})
	require.NoError(t, err)

	assert.True(t, c.Match(heroes[0].Row()))
	// hero without age never matches age predicate
	assert.False(t, c.Match(heroes[1].Row()))

	c, err = filter.BuildFilterSet(Registry, "hero", filter.Request{"team_id": "!1"})
	require.NoError(t, err)

	assert.False(t, c.Match(heroes[0].Row()))
	assert.True(t, c.Match(heroes[1].Row()))
}
