package spatialmath

import (
	"math"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by an axis, a unit vector from the origin, and a rotation Theta in
// radians around that axis. Multiplying the axis by Theta gives the R3 form, a vector whose length is
// the angle and whose direction is the axis.

// AxisAngle is a rotation of Theta radians around a unit Axis.
type AxisAngle struct {
	Theta float64
	Axis  Vector3
}

// NewAxisAngle creates an axis angle, normalizing the axis. A zero axis returns ErrDivideByZero.
func NewAxisAngle(axis Vector3, theta float64) (AxisAngle, error) {
	unit, err := axis.Normalized()
	if err != nil {
		return AxisAngle{}, err
	}
	return AxisAngle{Theta: theta, Axis: unit}, nil
}

// AxisAngleFromR3 converts an R3 axis angle to an AxisAngle. The zero vector is no rotation.
func AxisAngleFromR3(v Vector3) AxisAngle {
	theta := v.Magnitude()
	if theta == 0 {
		return AxisAngle{Theta: 0, Axis: NewVector3(0, 0, 1)}
	}
	return AxisAngle{Theta: theta, Axis: NewVector3(v.X()/theta, v.Y()/theta, v.Z()/theta)}
}

// ToR3 converts the axis angle to its R3 form.
func (aa AxisAngle) ToR3() Vector3 {
	return aa.Axis.Scale(aa.Theta)
}

// Quaternion converts the axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (aa AxisAngle) Quaternion() Quaternion {
	s, c := math.Sincos(aa.Theta / 2)
	return NewQuaternionXYZW(aa.Axis.X()*s, aa.Axis.Y()*s, aa.Axis.Z()*s, c)
}

// AxisAngle converts q to an axis angle in the same way the C++ Eigen library does, taking the shortest
// way around: Theta is in [-π, π].
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func (q Quaternion) AxisAngle() (AxisAngle, error) {
	unit, err := q.Normalized()
	if err != nil {
		return AxisAngle{}, err
	}
	v := NewVector3(unit.X(), unit.Y(), unit.Z())
	denom := v.Magnitude()

	angle := 2 * math.Atan2(denom, math.Abs(unit.W()))
	if unit.W() < 0 {
		angle *= -1
	}
	if denom < 1e-6 {
		return AxisAngle{Theta: angle, Axis: NewVector3(1, 0, 0)}, nil
	}
	return AxisAngle{Theta: angle, Axis: NewVector3(v.X()/denom, v.Y()/denom, v.Z()/denom)}, nil
}
