// Package gestures provides pointer event types, the gesture arena, and the
// drag recognizer that feeds the slide engine.
//
// A host delivers raw [PointerEvent]s to a recognizer. The recognizer
// competes in a [GestureArena] against other recognizers tracking the same
// pointer; once it wins it translates pointer movement into drag callbacks.
package gestures

import "github.com/go-drift/slide/pkg/geometry"

// PointerPhase identifies the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is the initial contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while in contact.
	PointerPhaseMove
	// PointerPhaseUp is the release.
	PointerPhaseUp
	// PointerPhaseCancel is a system-initiated interruption.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single sample from the host's input layer.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers.
	PointerID int64
	// Position is the pointer location in logical pixels.
	Position geometry.Offset
	// Delta is the movement since the previous event for this pointer.
	Delta geometry.Offset
	// Phase is the lifecycle stage.
	Phase PointerPhase
}

// DefaultTouchSlop is the distance in logical pixels a pointer must travel
// before a drag is recognized.
const DefaultTouchSlop = 18.0

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is where the pointer first made contact.
	Position geometry.Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	// Position is the current pointer location.
	Position geometry.Offset
	// Delta is the movement since the previous update.
	Delta geometry.Offset
	// PrimaryDelta is the Delta component along the recognizer's axis.
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Position is the pointer location at release.
	Position geometry.Offset
	// Velocity is the smoothed pointer velocity in pixels/second.
	Velocity geometry.Offset
	// PrimaryVelocity is the Velocity component along the recognizer's axis.
	PrimaryVelocity float64
}
