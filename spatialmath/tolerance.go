package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// DefaultRelTol and DefaultAbsTol are the tolerances used by AlmostEqual, the same defaults
	// as the usual "is close" helpers of numeric array libraries.
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8

	// floatEpsilon is four times the machine epsilon of float64.
	floatEpsilon = 4 * 2.220446049250313e-16
)

// isClose reports whether a is close to b. The comparison is asymmetric, b is the reference:
// |a-b| <= absTol + relTol*|b|.
func isClose(a, b, relTol, absTol float64) bool {
	return scalar.EqualWithinAbs(a, b, absTol+relTol*math.Abs(b))
}

func allClose(a, b []float64, relTol, absTol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !isClose(a[i], b[i], relTol, absTol) {
			return false
		}
	}
	return true
}
