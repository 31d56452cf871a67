package utils

import (
	"math"
)

// DegToRad converts an angle in degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngRad wraps an angle in radians into [0, 2π).
func ModAngRad(ang float64) float64 {
	return math.Mod(math.Mod(ang, 2*math.Pi)+2*math.Pi, 2*math.Pi)
}

// Square returns n*n. Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}
