package platform

import (
	stderrors "errors"

	"github.com/go-drift/slide/pkg/errors"
)

// HapticStyle selects the strength or semantic flavor of a haptic pulse.
type HapticStyle int

const (
	// HapticLight is a subtle impact (UIImpactFeedbackStyleLight).
	HapticLight HapticStyle = iota
	// HapticMedium is a standard impact.
	HapticMedium
	// HapticHeavy is a strong impact.
	HapticHeavy
	// HapticSuccess signals a completed operation.
	HapticSuccess
	// HapticWarning signals a cautionary event.
	HapticWarning
	// HapticError signals a failed operation.
	HapticError
)

func (s HapticStyle) String() string {
	switch s {
	case HapticLight:
		return "light"
	case HapticMedium:
		return "medium"
	case HapticHeavy:
		return "heavy"
	case HapticSuccess:
		return "success"
	case HapticWarning:
		return "warning"
	case HapticError:
		return "error"
	default:
		return "unknown"
	}
}

// HapticService triggers haptic feedback on the native side.
//
// All methods are fire-and-forget: a missing backend is silently ignored and
// a failing one is reported to the error handler but never surfaced to the
// caller. Haptics must never gate an interaction.
type HapticService struct {
	channel *MethodChannel
}

// Haptics is the shared haptic service.
var Haptics = NewHapticService()

// NewHapticService creates a haptic service on the standard channel.
func NewHapticService() *HapticService {
	return &HapticService{channel: NewMethodChannel("slide/haptics")}
}

// Impact fires a single haptic pulse of the given style.
func (h *HapticService) Impact(style HapticStyle) {
	_, err := h.channel.Invoke("impact", map[string]any{"style": style.String()})
	if err != nil && !stderrors.Is(err, ErrNoBackend) {
		errors.Report(&errors.SlideError{
			Op:      "platform.Haptics.Impact",
			Kind:    errors.KindPlatform,
			Channel: h.channel.Name(),
			Err:     err,
		})
	}
}

// LightImpact fires a light haptic pulse.
func (h *HapticService) LightImpact() {
	h.Impact(HapticLight)
}

// MediumImpact fires a medium haptic pulse.
func (h *HapticService) MediumImpact() {
	h.Impact(HapticMedium)
}
