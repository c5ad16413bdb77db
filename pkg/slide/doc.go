// Package slide implements the slide-to-activate gesture engine used by the
// horizontal, vertical, and button slider variants.
//
// # Pipeline
//
// Raw pointer movement flows through a fixed pipeline:
//
//	drag delta → orientation adapter → clamped progress → activation latch
//
// The latch fires the OnActivate callback at most once per gesture, the
// moment progress crosses the configured threshold. When the gesture ends
// (release or cancel), a damped spring animates the thumb back to rest; the
// spring never holds a logical decision: the latch is already reset by then
// and a new gesture can begin mid-flight.
//
// # Usage
//
//	slider, err := slide.NewSlider(slide.NewOptions(300, 60, 50))
//	if err != nil {
//	    return err
//	}
//	slider.Engine().OnActivate(func() { unlock() })
//	slider.Engine().AddListener(func() {
//	    render(slider.Engine().Progress())
//	})
//	// feed slider.HandlePointer(event) from the host input layer
//
// Engines are single-instance state machines: one engine per mounted slider,
// nothing shared between instances. The per-sample path allocates nothing so
// it can run inside a high-frequency input callback.
package slide
