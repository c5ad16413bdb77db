package slide

import (
	"github.com/go-drift/slide/pkg/animation"
	"github.com/go-drift/slide/pkg/errors"
)

// DefaultThreshold is the progress fraction at which a slider activates.
const DefaultThreshold = 0.8

// TrackPadding is the fixed padding subtracted from the container extent
// when deriving the travel distance.
const TrackPadding = 10.0

// Options are the raw per-instance parameters of a slider.
//
// Zero values for Threshold and Spring resolve to the library defaults.
// Prefer [NewOptions], which also enables haptic feedback; a zero-valued
// Options literal leaves haptics off.
type Options struct {
	// Width and Height are the container dimensions in logical pixels.
	Width  float64
	Height float64
	// ThumbSize is the thumb extent along the travel axis.
	ThumbSize float64
	// Orientation selects the travel axis. Defaults to Horizontal.
	Orientation Orientation
	// Threshold is the activation fraction in (0, 1]. Zero means
	// DefaultThreshold.
	Threshold float64
	// Spring tunes the return-to-rest animation. A zero value means
	// animation.DefaultSpring().
	Spring animation.SpringDescription
	// Haptic enables the activation haptic pulse.
	Haptic bool
	// Disabled suppresses all gesture handling.
	Disabled bool
}

// NewOptions returns Options for the given geometry with library defaults:
// threshold 0.8, the standard return spring, and haptics enabled.
func NewOptions(width, height, thumbSize float64) Options {
	return Options{
		Width:     width,
		Height:    height,
		ThumbSize: thumbSize,
		Threshold: DefaultThreshold,
		Spring:    animation.DefaultSpring(),
		Haptic:    true,
	}
}

// Config is the resolved, immutable configuration of a slider instance.
// It is created by [Resolve] and replaced wholesale between gestures when
// parameters change.
type Config struct {
	// Orientation is the travel axis.
	Orientation Orientation
	// Travel is the usable travel distance in logical pixels.
	Travel float64
	// Threshold is the activation fraction in (0, 1].
	Threshold float64
	// Spring tunes the return-to-rest animation.
	Spring animation.SpringDescription
	// Haptic enables the activation haptic pulse.
	Haptic bool
	// Disabled suppresses all gesture handling.
	Disabled bool
}

// ActivationPoint returns the travel-space position at which the latch fires.
func (c Config) ActivationPoint() float64 {
	return c.Threshold * c.Travel
}

// Resolve validates raw options into a Config.
//
// It fails with a config-kind error when the threshold falls outside (0, 1],
// any spring parameter is non-positive, or the derived travel distance is
// non-positive (thumb too large for the container).
func Resolve(o Options) (Config, error) {
	const op = "slide.Resolve"

	threshold := o.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if threshold < 0 || threshold > 1 {
		return Config{}, errors.New(op, errors.KindConfig,
			"activation threshold %v outside (0, 1]", o.Threshold)
	}

	spring := o.Spring
	if spring == (animation.SpringDescription{}) {
		spring = animation.DefaultSpring()
	}
	if spring.Damping <= 0 || spring.Stiffness <= 0 || spring.Mass <= 0 {
		return Config{}, errors.New(op, errors.KindConfig,
			"spring parameters must be positive, got damping=%v stiffness=%v mass=%v",
			spring.Damping, spring.Stiffness, spring.Mass)
	}

	travel := o.Orientation.extent(o.Width, o.Height) - o.ThumbSize - TrackPadding
	if travel <= 0 {
		return Config{}, errors.New(op, errors.KindConfig,
			"travel distance %v is not positive (thumb %v too large for %v container %v)",
			travel, o.ThumbSize, o.Orientation, o.Orientation.extent(o.Width, o.Height))
	}

	return Config{
		Orientation: o.Orientation,
		Travel:      travel,
		Threshold:   threshold,
		Spring:      spring,
		Haptic:      o.Haptic,
		Disabled:    o.Disabled,
	}, nil
}
