package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	t.Run("text is identity", func(t *testing.T) {
		v, err := Coerce(Text, "  Some Title ")
		require.NoError(t, err)
		assert.Equal(t, "  Some Title ", v)
	})

	t.Run("integer", func(t *testing.T) {
		v, err := Coerce(Integer, "-42")
		require.NoError(t, err)
		assert.Equal(t, int64(-42), v)

		for _, bad := range []string{"", "abc", "4.2", "0x10", "99999999999999999999"} {
			_, err := Coerce(Integer, bad)
			assert.ErrorIs(t, err, ErrMalformedInteger, bad)
		}
	})

	t.Run("timestamp", func(t *testing.T) {
		v, err := Coerce(Timestamp, "2024-06-01T12:30:45Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC), v)

		for _, bad := range []string{
			"",
			"not-a-date",
			"2024-06-01",
			"2024-06-01T12:30:45",
			"2024-06-01T12:30:45.123Z",
			"2024-06-01T12:30:45+00:00",
			"2024-06-01 12:30:45Z",
			"2024-13-01T12:30:45Z",
		} {
			_, err := Coerce(Timestamp, bad)
			assert.ErrorIs(t, err, ErrMalformedTimestamp, bad)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Coerce(ColumnKind(0), "x")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}
