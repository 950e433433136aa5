// internal/utils/math.go
package utils

import "math"

// Lerp performs linear interpolation from -> to by t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// SmoothFactor converts a per-second smoothing rate into a frame-rate
// independent interpolation factor in [0, 1].
func SmoothFactor(rate, deltaTime float64) float64 {
	if rate <= 0 {
		return 1
	}
	return 1 - math.Exp(-rate*deltaTime)
}
