// Package biztime holds the time helpers used across the engine. All timestamps
// are stored and compared in UTC.
package biztime

import "time"

// Clock returns the current instant. Use cases take a Clock so tests can pin time.
type Clock func() time.Time

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FixedClock returns a Clock that always reports t in UTC.
func FixedClock(t time.Time) Clock {
	t = t.UTC()
	return func() time.Time { return t }
}
