package spatialmath

import (
	"math"
)

// WrapTo2Pi wraps an angle in radians into [0, 2*pi).
func WrapTo2Pi(theta float64) float64 {
	wrapped := math.Mod(theta, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

// WrapToPi wraps an angle in radians into (-pi, pi].
func WrapToPi(theta float64) float64 {
	wrapped := WrapTo2Pi(theta)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	}
	return wrapped
}

// WrapPair wraps two angles being compared into a common interval. Both are
// first wrapped into [0, 2*pi). If they then sit more than 3*pi/4 apart, both
// are re-wrapped into (-pi, pi] so that angles equal modulo 2*pi but
// straddling the wrap boundary do not register a spurious large difference.
func WrapPair(a, b float64) (float64, float64) {
	a = WrapTo2Pi(a)
	b = WrapTo2Pi(b)
	if math.Abs(a-b) > 3*math.Pi/4 {
		a = WrapToPi(a)
		b = WrapToPi(b)
	}
	return a, b
}
