package slide

import (
	"time"

	"github.com/go-drift/slide/pkg/animation"
)

// maxFrameDelta caps the integration step so the spring does not jump after
// a stalled frame.
const maxFrameDelta = 0.032

// restDriver animates the thumb back to the rest position after a gesture
// ends. The engine owns exactly one driver; starting a new animation stops
// the previous one, and a new gesture stops it entirely, continuing from
// wherever the animated position currently is.
type restDriver struct {
	ticker   *animation.Ticker
	spring   *animation.SpringSimulation
	lastTime time.Time
	onTick   func(position float64, done bool)
}

func newRestDriver(onTick func(position float64, done bool)) *restDriver {
	return &restDriver{onTick: onTick}
}

// animating reports whether a return animation is in flight.
func (r *restDriver) animating() bool {
	return r.ticker != nil && r.ticker.IsActive()
}

// start begins a spring return from the given position and velocity to 0.
func (r *restDriver) start(from, velocity float64, desc animation.SpringDescription) {
	r.stop()

	r.spring = animation.NewSpringSimulation(desc, from, velocity, 0)
	if r.spring.IsDone() {
		r.spring = nil
		r.onTick(0, true)
		return
	}

	r.lastTime = animation.Now()
	r.ticker = animation.NewTicker(func(time.Duration) {
		r.step()
	})
	r.ticker.Start()
}

func (r *restDriver) step() {
	if r.spring == nil {
		r.stop()
		return
	}
	now := animation.Now()
	dt := now.Sub(r.lastTime).Seconds()
	r.lastTime = now
	if dt <= 0 {
		return
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	done := r.spring.Step(dt)
	position := r.spring.Position()
	if done {
		r.stop()
	}
	r.onTick(position, done)
}

// stop halts any in-flight animation without notifying.
func (r *restDriver) stop() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
	r.spring = nil
}
