package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock, either per [Scheduler] or
// package-wide via SetClock, to control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source used by schedulers created
// without their own clock.
var clock Clock = realClock{}

// SetClock replaces the package-level clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the package-level clock.
func Now() time.Time { return clock.Now() }
