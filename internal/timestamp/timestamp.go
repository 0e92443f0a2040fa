// Package timestamp formats the local-time, millisecond-precision
// stamp prefixed onto every output line this core writes.
package timestamp

import (
	"fmt"
	"time"
)

const layout = "2006-01-02 15:04:05"

// Now renders the current local time as "YYYY-MM-DD HH:MM:SS.mmm",
// milliseconds zero-padded to three digits.
func Now() string {
	return Format(time.Now())
}

// Format renders t the same way Now does, for deterministic tests.
func Format(t time.Time) string {
	millis := t.Nanosecond() / int(time.Millisecond)
	return fmt.Sprintf("%s.%03d", t.Format(layout), millis)
}

// NowMillis returns the current monotonic-ish wall-clock reading in
// epoch milliseconds, the clock source the GUI throttle gates on.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
