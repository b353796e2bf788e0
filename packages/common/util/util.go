package util

import (
	"time"
)

// Current UTC time truncated to microseconds, which is the precision of postgres timestamps.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
