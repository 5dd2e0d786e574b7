// Package biztime centralizes time for the application. Storage and
// transport are always UTC.
package biztime

import "time"

// Clock returns the current time. Components that compare against expiry
// take a Clock so tests can move time forward.
type Clock func() time.Time

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// OrDefault returns c, or NowUTC when c is nil.
func (c Clock) OrDefault() Clock {
	if c == nil {
		return NowUTC
	}
	return c
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Resolution is the finest step the stores keep for timestamps.
const Resolution = time.Millisecond

// Touch returns the updated_at for a mutation at now. It is always at least
// one Resolution past prev, so every mutation is visible even when the clock
// has not advanced or has stepped back.
func Touch(prev, now time.Time) time.Time {
	if next := prev.Add(Resolution); now.Before(next) {
		return next
	}
	return now
}
