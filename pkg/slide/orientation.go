package slide

import (
	"github.com/go-drift/slide/pkg/geometry"
	"github.com/go-drift/slide/pkg/gestures"
)

// Orientation selects the travel axis of a slider.
//
// The orientation adapter is the only place the horizontal and vertical
// variants differ: it picks the raw input axis, the sign convention, and the
// container extent the travel distance derives from. Everything downstream
// (mapper, latch, return driver, feedback) is orientation-agnostic.
type Orientation int

const (
	// Horizontal travels rightward along the X axis.
	Horizontal Orientation = iota
	// Vertical travels upward, so raw Y deltas are inverted.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// DragAxis returns the recognizer axis for this orientation.
func (o Orientation) DragAxis() gestures.DragAxis {
	if o == Vertical {
		return gestures.DragVertical
	}
	return gestures.DragHorizontal
}

// PrimaryDelta extracts the travel-space component of a pointer delta.
// Vertical sliders treat upward movement (negative Y) as positive travel.
func (o Orientation) PrimaryDelta(d geometry.Offset) float64 {
	if o == Vertical {
		return -d.Y
	}
	return d.X
}

// SignedDelta converts a recognizer's raw axis delta into travel space.
func (o Orientation) SignedDelta(v float64) float64 {
	if o == Vertical {
		return -v
	}
	return v
}

// extent returns the container length along the travel axis.
func (o Orientation) extent(width, height float64) float64 {
	if o == Vertical {
		return height
	}
	return width
}
