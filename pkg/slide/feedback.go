package slide

import (
	"github.com/go-drift/slide/pkg/errors"
	"github.com/go-drift/slide/pkg/platform"
)

// Haptics is the capability the engine uses to fire activation feedback.
// [platform.Haptics] satisfies it; tests inject recorders.
type Haptics interface {
	Impact(style platform.HapticStyle)
}

// feedback coordinates the single haptic pulse on activation.
// Requests are fire-and-forget: a panicking or absent haptic capability is
// contained here and never reaches the activation path.
type feedback struct {
	haptics Haptics
}

func (f feedback) activated(c Config) {
	if !c.Haptic || c.Disabled || f.haptics == nil {
		return
	}
	defer errors.Recover("slide.feedback.activated")
	f.haptics.Impact(platform.HapticMedium)
}
