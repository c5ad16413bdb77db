package gestures

import (
	"math"
	"time"

	"github.com/go-drift/slide/pkg/animation"
	"github.com/go-drift/slide/pkg/geometry"
)

// DragAxis selects which movement component a drag recognizer tracks.
type DragAxis int

const (
	// DragHorizontal tracks movement along the X axis.
	DragHorizontal DragAxis = iota
	// DragVertical tracks movement along the Y axis.
	DragVertical
)

// DragGestureRecognizer recognizes a single-axis drag.
//
// The recognizer joins the gesture arena on pointer down and claims the
// gesture once movement along its axis exceeds the touch slop while
// dominating the orthogonal axis. Orthogonal-dominant movement rejects the
// gesture so a crossing scrollable can take it instead.
type DragGestureRecognizer struct {
	Arena *GestureArena
	Axis  DragAxis

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	pointer  int64           // current pointer being tracked
	start    geometry.Offset // initial touch position
	last     geometry.Offset // most recent touch position
	lastTime time.Time       // timestamp of last update (for velocity)
	velocity float64         // smoothed axis velocity in pixels/second
	slop     float64         // minimum distance before recognizing a drag
	accepted bool            // true after winning the gesture arena
	reject   bool            // true if the gesture was rejected
	started  bool            // true after OnStart has been called
	tracking bool            // true between AddPointer and release
}

// NewDragGestureRecognizer creates a recognizer for the given axis competing
// in arena.
func NewDragGestureRecognizer(arena *GestureArena, axis DragAxis) *DragGestureRecognizer {
	return &DragGestureRecognizer{Arena: arena, Axis: axis}
}

// AddPointer begins tracking a pointer from its down event.
func (d *DragGestureRecognizer) AddPointer(event PointerEvent) {
	if d.Arena == nil {
		return
	}
	d.pointer = event.PointerID
	d.start = event.Position
	d.last = event.Position
	d.lastTime = animation.Now()
	d.velocity = 0
	d.slop = DefaultTouchSlop
	d.accepted = false
	d.reject = false
	d.started = false
	d.tracking = true
	d.Arena.Add(event.PointerID, d)
	d.Arena.Hold(event.PointerID, d)
}

// HandleEvent processes move, up, and cancel events for the tracked pointer.
func (d *DragGestureRecognizer) HandleEvent(event PointerEvent) {
	if !d.tracking || event.PointerID != d.pointer || d.reject {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		d.handleMove(event)
	case PointerPhaseUp:
		d.handleUp(event)
	case PointerPhaseCancel:
		d.handleCancel()
	}
}

// handleMove decides acceptance once slop is exceeded and tracks velocity.
func (d *DragGestureRecognizer) handleMove(event PointerEvent) {
	now := animation.Now()
	dt := now.Sub(d.lastTime).Seconds()

	total := event.Position.Sub(d.start)
	primary := math.Abs(d.axisComponent(total))
	orthogonal := math.Abs(d.crossComponent(total))

	if !d.accepted {
		if primary > d.slop && primary >= orthogonal {
			d.Arena.Resolve(d.pointer, d)
		} else if orthogonal > d.slop {
			// Cross-axis movement dominant: let another recognizer take it.
			d.reject = true
			d.Arena.Reject(d.pointer, d)
			return
		}
	}

	// Exponential smoothing keeps release velocity stable.
	delta := event.Position.Sub(d.last)
	if dt > 0 {
		inst := d.axisComponent(delta) / dt
		d.velocity = d.velocity*0.8 + inst*0.2
	}

	if d.accepted {
		d.ensureStarted()
		if d.OnUpdate != nil {
			d.OnUpdate(DragUpdateDetails{
				Position:     event.Position,
				Delta:        delta,
				PrimaryDelta: d.axisComponent(delta),
			})
		}
	}

	d.last = event.Position
	d.lastTime = now
}

func (d *DragGestureRecognizer) handleUp(event PointerEvent) {
	d.tracking = false
	if d.accepted {
		if d.OnEnd != nil {
			d.OnEnd(DragEndDetails{
				Position:        event.Position,
				Velocity:        d.axisVector(d.velocity),
				PrimaryVelocity: d.velocity,
			})
		}
	} else {
		d.Arena.Reject(d.pointer, d)
	}
}

func (d *DragGestureRecognizer) handleCancel() {
	d.tracking = false
	if d.accepted && d.OnCancel != nil {
		d.OnCancel()
	}
	d.reject = true
	d.Arena.Reject(d.pointer, d)
}

// AcceptGesture implements ArenaMember.
func (d *DragGestureRecognizer) AcceptGesture(pointerID int64) {
	if pointerID != d.pointer || d.reject {
		return
	}
	d.accepted = true
	d.ensureStarted()
}

// RejectGesture implements ArenaMember.
func (d *DragGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != d.pointer {
		return
	}
	d.reject = true
}

// Dispose releases the recognizer. An in-flight gesture is rejected.
func (d *DragGestureRecognizer) Dispose() {
	if d.tracking && !d.reject && d.Arena != nil {
		d.reject = true
		d.Arena.Reject(d.pointer, d)
	}
	d.tracking = false
	d.OnStart = nil
	d.OnUpdate = nil
	d.OnEnd = nil
	d.OnCancel = nil
}

func (d *DragGestureRecognizer) ensureStarted() {
	if d.started {
		return
	}
	d.started = true
	if d.OnStart != nil {
		d.OnStart(DragStartDetails{Position: d.start})
	}
}

func (d *DragGestureRecognizer) axisComponent(o geometry.Offset) float64 {
	if d.Axis == DragVertical {
		return o.Y
	}
	return o.X
}

func (d *DragGestureRecognizer) crossComponent(o geometry.Offset) float64 {
	if d.Axis == DragVertical {
		return o.X
	}
	return o.Y
}

func (d *DragGestureRecognizer) axisVector(v float64) geometry.Offset {
	if d.Axis == DragVertical {
		return geometry.Offset{Y: v}
	}
	return geometry.Offset{X: v}
}
