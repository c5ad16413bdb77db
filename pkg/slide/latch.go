package slide

// LatchState is the per-gesture activation state.
//
// Transitions only move forward within a gesture:
//
//	Idle ───first sample──► Armed ───progress ≥ threshold──► Activated
//
// Activated is sticky until the gesture ends; progress dipping back below
// the threshold and rising again never re-fires.
type LatchState int

const (
	// LatchIdle is the state between gestures.
	LatchIdle LatchState = iota
	// LatchArmed means a gesture is in flight below the threshold.
	LatchArmed
	// LatchActivated means this gesture has fired its activation.
	LatchActivated
)

func (s LatchState) String() string {
	switch s {
	case LatchArmed:
		return "armed"
	case LatchActivated:
		return "activated"
	default:
		return "idle"
	}
}

// Latch enforces the at-most-one-activation-per-gesture guarantee.
type Latch struct {
	state LatchState
}

// State returns the current latch state.
func (l *Latch) State() LatchState {
	return l.state
}

// Reset returns the latch to idle for the next gesture.
func (l *Latch) Reset() {
	l.state = LatchIdle
}

// Observe feeds one progress sample and reports whether this exact sample
// fired the activation. The first sample of a gesture arms the latch; an
// armed latch activates once progress reaches the threshold and then stays
// activated for the remainder of the gesture.
func (l *Latch) Observe(progress, threshold float64) bool {
	if l.state == LatchIdle {
		l.state = LatchArmed
	}
	if l.state == LatchArmed && progress >= threshold {
		l.state = LatchActivated
		return true
	}
	return false
}
