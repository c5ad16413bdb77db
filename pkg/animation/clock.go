package animation

import "time"

// Clock is the time source the spring stepping reads its frame deltas from.
// Production code uses system time; tests swap in a controllable clock so
// return-to-rest animations can be pumped deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock replaces the package clock and returns the one it displaced so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the active clock.
func Now() time.Time { return clock.Now() }
