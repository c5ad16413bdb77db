// Package slidetest provides deterministic helpers for testing code built
// on the slide engine: a controllable clock, frame pumping for spring
// animations, and a recording haptics backend.
package slidetest

import (
	"sync"
	"time"

	"github.com/go-drift/slide/pkg/animation"
	"github.com/go-drift/slide/pkg/platform"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// InstallClock replaces the animation clock with a fresh FakeClock and
// returns it along with a restore function for cleanup.
func InstallClock() (*FakeClock, func()) {
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	return clk, func() { animation.SetClock(prev) }
}

// Pump advances the clock and steps active tickers once per frame,
// simulating the host frame loop.
func Pump(clk *FakeClock, frame time.Duration, frames int) {
	for i := 0; i < frames; i++ {
		clk.Advance(frame)
		animation.StepTickers()
	}
}

// PumpUntilIdle pumps 16ms frames until no tickers remain active. It gives
// up after a generous bound so a stuck animation fails the test instead of
// hanging it.
func PumpUntilIdle(clk *FakeClock) bool {
	for i := 0; i < 100000; i++ {
		if !animation.HasActiveTickers() {
			return true
		}
		clk.Advance(16 * time.Millisecond)
		animation.StepTickers()
	}
	return false
}

// HapticRecorder records haptic impacts. It satisfies the engine's haptics
// capability directly and can also serve as a platform backend.
type HapticRecorder struct {
	mu      sync.Mutex
	impacts []platform.HapticStyle
}

// Impact records a haptic pulse.
func (r *HapticRecorder) Impact(style platform.HapticStyle) {
	r.mu.Lock()
	r.impacts = append(r.impacts, style)
	r.mu.Unlock()
}

// Impacts returns the recorded pulses in order.
func (r *HapticRecorder) Impacts() []platform.HapticStyle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]platform.HapticStyle, len(r.impacts))
	copy(out, r.impacts)
	return out
}

// Count returns the number of recorded pulses.
func (r *HapticRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.impacts)
}
