package filter

import (
	"errors"
	"strconv"
	"time"
)

// Only accepted timestamp format: UTC with second precision.
const TimestampLayout = "2006-01-02T15:04:05Z"

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp, expected YYYY-MM-DDTHH:MM:SSZ")
	ErrMalformedInteger   = errors.New("malformed integer")
	ErrUnknownKind        = errors.New("unknown column kind")
)

// Converts text into the native value of the column kind:
//   - Text: string
//   - Integer: int64
//   - Timestamp: time.Time (UTC)
func Coerce(kind ColumnKind, text string) (any, error) {
	switch kind {
	case Text:
		return text, nil
	case Integer:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, ErrMalformedInteger
		}
		return v, nil
	case Timestamp:
		// time.Parse tolerates fractional seconds and some shorter fields,
		// so the length check keeps format strict.
		if len(text) != len(TimestampLayout) {
			return nil, ErrMalformedTimestamp
		}
		v, err := time.Parse(TimestampLayout, text)
		if err != nil {
			return nil, ErrMalformedTimestamp
		}
		return v.UTC(), nil
	default:
		return nil, ErrUnknownKind
	}
}
