package slide

// Progress maps a travel-space delta to normalized progress in [0, 1].
//
// The delta is clamped to [0, Travel] before normalizing, so the mapping is
// monotonic and free of hysteresis; any hysteresis belongs to the latch.
func Progress(delta float64, c Config) float64 {
	if c.Travel <= 0 {
		return 0
	}
	if delta <= 0 {
		return 0
	}
	if delta >= c.Travel {
		return 1
	}
	return delta / c.Travel
}

// clampTravel clamps a travel-space position to [0, travel].
func clampTravel(v, travel float64) float64 {
	if v < 0 {
		return 0
	}
	if v > travel {
		return travel
	}
	return v
}
