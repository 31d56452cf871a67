package utils

// Component indices of vectors and scalar-last quaternions.
const (
	X = 0
	Y = 1
	Z = 2
	W = 3
)

// Slots of an Euler angle triple.
const (
	Pitch = 0
	Roll  = 1
	Yaw   = 2
)

const (
	// Gravity is standard gravitational acceleration in m/s^2.
	Gravity = 9.80665

	// StandardAtmospherePascal is standard atmospheric pressure at sea level in Pa.
	StandardAtmospherePascal = 101325

	// DensityFreshwater is in kg/m^3.
	DensityFreshwater = 997
	// DensitySaltwater is in kg/m^3.
	DensitySaltwater = 1029
)

// MagneticFieldNED is the direction of the magnetic field in the NED frame.
var MagneticFieldNED = [3]float64{1, 0, 0}
