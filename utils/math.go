// Package utils contains small shared math helpers.
package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual compares two float64s and returns whether their
// difference is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Ulp returns the spacing between |x| and the next representable float64
// toward +Inf. Errors on quantities of size x are meaningfully measured in
// multiples of Ulp(x), which makes it the unit for magnitude-adaptive
// tolerances.
func Ulp(x float64) float64 {
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}
