package slidetest

import (
	"github.com/go-drift/slide/pkg/geometry"
	"github.com/go-drift/slide/pkg/gestures"
)

// Pointer scripts a synthetic pointer for driving recognizers in tests.
// It tracks its own position so move events carry correct deltas.
type Pointer struct {
	id  int64
	pos geometry.Offset
}

// NewPointer creates a pointer with the given ID at a start position.
// Tests sharing an arena should use distinct IDs.
func NewPointer(id int64, start geometry.Offset) *Pointer {
	return &Pointer{id: id, pos: start}
}

// Down returns the initial contact event.
func (p *Pointer) Down() gestures.PointerEvent {
	return gestures.PointerEvent{
		PointerID: p.id,
		Position:  p.pos,
		Phase:     gestures.PointerPhaseDown,
	}
}

// MoveBy advances the pointer by delta and returns the move event.
func (p *Pointer) MoveBy(delta geometry.Offset) gestures.PointerEvent {
	p.pos = p.pos.Add(delta)
	return gestures.PointerEvent{
		PointerID: p.id,
		Position:  p.pos,
		Delta:     delta,
		Phase:     gestures.PointerPhaseMove,
	}
}

// MoveTo moves the pointer to an absolute position and returns the event.
func (p *Pointer) MoveTo(pos geometry.Offset) gestures.PointerEvent {
	delta := pos.Sub(p.pos)
	p.pos = pos
	return gestures.PointerEvent{
		PointerID: p.id,
		Position:  p.pos,
		Delta:     delta,
		Phase:     gestures.PointerPhaseMove,
	}
}

// Up returns the release event at the current position.
func (p *Pointer) Up() gestures.PointerEvent {
	return gestures.PointerEvent{
		PointerID: p.id,
		Position:  p.pos,
		Phase:     gestures.PointerPhaseUp,
	}
}

// Cancel returns a cancellation event at the current position.
func (p *Pointer) Cancel() gestures.PointerEvent {
	return gestures.PointerEvent{
		PointerID: p.id,
		Position:  p.pos,
		Phase:     gestures.PointerPhaseCancel,
	}
}
