package slide

import "github.com/go-drift/slide/pkg/gestures"

// Slider binds a drag recognizer to an [Engine] so a host can feed raw
// pointer events and get the full slide-to-activate pipeline.
//
// The horizontal and vertical variants are the same component with a
// different [Orientation]; [NewSlideButton] is the compact button variant.
type Slider struct {
	engine *Engine
	rec    *gestures.DragGestureRecognizer
	arena  *gestures.GestureArena
}

// NewSlider creates a slider for the given options, competing in the
// default gesture arena.
func NewSlider(o Options) (*Slider, error) {
	return NewSliderInArena(o, gestures.DefaultArena)
}

// NewSliderInArena creates a slider competing in a specific arena. Hosts
// embedding multiple gesture systems use this to keep arenas separate.
func NewSliderInArena(o Options, arena *gestures.GestureArena) (*Slider, error) {
	engine, err := NewEngine(o)
	if err != nil {
		return nil, err
	}
	rec := gestures.NewDragGestureRecognizer(arena, o.Orientation.DragAxis())
	rec.OnStart = engine.HandleStart
	rec.OnUpdate = engine.HandleSample
	rec.OnEnd = engine.HandleEnd
	rec.OnCancel = engine.HandleCancel
	return &Slider{engine: engine, rec: rec, arena: arena}, nil
}

// NewSlideButton creates the button variant: a horizontal slider whose
// thumb defaults to a square filling the control height.
func NewSlideButton(o Options) (*Slider, error) {
	o.Orientation = Horizontal
	if o.ThumbSize == 0 {
		o.ThumbSize = o.Height
	}
	return NewSlider(o)
}

// Engine returns the underlying engine for callbacks and rendering reads.
func (s *Slider) Engine() *Engine {
	return s.engine
}

// HandlePointer feeds one raw pointer event through the recognizer and
// drives the arena lifecycle the way a host input layer would.
func (s *Slider) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		s.rec.AddPointer(event)
		s.arena.Close(event.PointerID)
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		s.rec.HandleEvent(event)
		s.arena.Sweep(event.PointerID)
	default:
		s.rec.HandleEvent(event)
	}
}

// Dispose releases the recognizer and engine resources.
func (s *Slider) Dispose() {
	s.rec.Dispose()
	s.engine.Dispose()
}
