package book

import (
	BookDTO "hobbes/packages/core/book/DTO"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload(t *testing.T) {
	valid := BookDTO.Payload{Title: "Dune", ISBN: "978-0441013593", Genre: "scifi", Condition: "new"}
	assert.Nil(t, ValidatePayload(&valid))

	invalid := valid
	invalid.Genre = "  "

	err := ValidatePayload(&invalid)
	require.NotNil(t, err)
	assert.Equal(t, 400, err.Status())
	assert.Contains(t, err.Error(), "genre")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01T00:00:00Z")
	require.Nil(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-01T02:00:00+02:00")
	require.Nil(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("yesterday")
	assert.Same(t, ErrInvalidDate, err)
}

func TestParseCompare(t *testing.T) {
	c, err := ParseCompare("gt")
	require.Nil(t, err)
	assert.Equal(t, CompareGreater, c)

	_, err = ParseCompare("eq")
	assert.Same(t, ErrInvalidCompare, err)
}

func TestSchemaColumns(t *testing.T) {
	_, ok := Schema.Column(string(IdProperty))
	assert.False(t, ok)

	col, ok := Schema.Column(string(CreatedAtProperty))
	require.True(t, ok)
	assert.Equal(t, "timestamp", col.Kind.String())
}
