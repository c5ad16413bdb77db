package slide

import (
	"github.com/go-drift/slide/pkg/errors"
	"github.com/go-drift/slide/pkg/gestures"
	"github.com/go-drift/slide/pkg/platform"
)

// Engine is the slide-to-activate state machine for one slider instance.
//
// The host feeds it drag lifecycle events (HandleStart, HandleSample,
// HandleEnd, HandleCancel) and reads back a continuous position for
// rendering plus a single OnActivate event per qualifying gesture. Engines
// are not shared: one mounted slider owns one engine.
//
// All handlers are synchronous and the per-sample path performs no
// allocation. The engine itself does no locking; the host delivers one
// gesture stream per instance, in order.
type Engine struct {
	cfg     Config
	pending *Config

	latch    Latch
	active   bool    // a gesture is in flight
	base     float64 // travel-space position at gesture start
	delta    float64 // accumulated travel-space delta for this gesture
	position float64 // current travel-space position (gesture or animation)

	rest     *restDriver
	feedback feedback
	dispatch func(func())

	onActivate     func()
	listeners      map[int]func()
	nextListenerID int
}

// NewEngine resolves the options and creates an engine at rest.
func NewEngine(o Options) (*Engine, error) {
	cfg, err := Resolve(o)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		feedback:  feedback{haptics: platform.Haptics},
		listeners: make(map[int]func()),
	}
	e.rest = newRestDriver(e.onRestTick)
	return e, nil
}

// Config returns the currently applied configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetOptions stages a replacement configuration. It is validated
// immediately, but a gesture already in flight keeps the old configuration;
// the replacement applies when the next gesture starts.
func (e *Engine) SetOptions(o Options) error {
	cfg, err := Resolve(o)
	if err != nil {
		return err
	}
	if e.active {
		e.pending = &cfg
		return nil
	}
	e.cfg = cfg
	e.pending = nil
	return nil
}

// OnActivate sets the one-shot activation callback. It fires at most once
// per gesture, at the moment progress crosses the threshold.
func (e *Engine) OnActivate(fn func()) {
	e.onActivate = fn
}

// SetHaptics replaces the haptic capability. Pass nil to disable entirely.
func (e *Engine) SetHaptics(h Haptics) {
	e.feedback.haptics = h
}

// SetDispatcher routes the activation callback through fn, letting hosts
// hop to their UI thread. By default the callback runs synchronously.
func (e *Engine) SetDispatcher(fn func(func())) {
	e.dispatch = fn
}

// AddListener registers a callback fired whenever the exposed position
// changes. Returns an unsubscribe function.
func (e *Engine) AddListener(fn func()) func() {
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

// Position returns the thumb position along the travel axis in pixels,
// whether gesture-driven or animating back to rest.
func (e *Engine) Position() float64 {
	return e.position
}

// Progress returns the normalized position in [0, 1].
func (e *Engine) Progress() float64 {
	if e.cfg.Travel <= 0 {
		return 0
	}
	return e.position / e.cfg.Travel
}

// LatchState exposes the activation latch state, mainly for tests and
// diagnostics.
func (e *Engine) LatchState() LatchState {
	return e.latch.State()
}

// HandleStart begins a gesture. A pending configuration is applied first;
// a disabled engine ignores the gesture entirely. If the return animation
// is still settling, the gesture continues from the current animated
// position.
func (e *Engine) HandleStart(gestures.DragStartDetails) {
	if e.pending != nil {
		e.cfg = *e.pending
		e.pending = nil
	}
	if e.cfg.Disabled {
		return
	}
	e.rest.stop()
	e.active = true
	e.base = e.position
	e.delta = 0
	e.latch.Reset()
}

// HandleSample feeds one drag sample. Samples outside a gesture (late
// delivery after end, or while disabled) are silently dropped.
func (e *Engine) HandleSample(d gestures.DragUpdateDetails) {
	if !e.active {
		return
	}
	e.delta += e.cfg.Orientation.SignedDelta(d.PrimaryDelta)
	e.position = clampTravel(e.base+e.delta, e.cfg.Travel)

	if e.latch.Observe(e.position/e.cfg.Travel, e.cfg.Threshold) {
		e.feedback.activated(e.cfg)
		e.emitActivate()
	}
	e.notifyListeners()
}

// HandleEnd finishes the gesture and starts the spring return to rest,
// regardless of whether activation fired. The latch resets now, not at
// animation completion, so a new gesture can begin mid-flight.
func (e *Engine) HandleEnd(d gestures.DragEndDetails) {
	if !e.active {
		return
	}
	e.active = false
	e.latch.Reset()
	e.rest.start(e.position, e.cfg.Orientation.SignedDelta(d.PrimaryVelocity), e.cfg.Spring)
}

// HandleCancel is treated identically to HandleEnd with zero release
// velocity: the thumb returns to rest and no activation fires.
func (e *Engine) HandleCancel() {
	if !e.active {
		return
	}
	e.active = false
	e.latch.Reset()
	e.rest.start(e.position, 0, e.cfg.Spring)
}

// Dispose stops any in-flight animation and drops all callbacks.
func (e *Engine) Dispose() {
	e.rest.stop()
	e.active = false
	e.onActivate = nil
	e.listeners = nil
}

func (e *Engine) emitActivate() {
	fn := e.onActivate
	if fn == nil {
		return
	}
	run := func() {
		defer errors.Recover("slide.Engine.emit")
		fn()
	}
	if e.dispatch != nil {
		e.dispatch(run)
		return
	}
	run()
}

func (e *Engine) onRestTick(position float64, done bool) {
	// A gesture may have taken over after this tick was scheduled.
	if e.active {
		return
	}
	e.position = position
	e.notifyListeners()
}

func (e *Engine) notifyListeners() {
	for _, listener := range e.listeners {
		listener()
	}
}
