package spatialmath

import (
	"math"

	"github.com/lobster-robotics/common/utils"
)

// Euler angles are terrible, don't use them unless a consumer needs them.
//
// Angles are (alpha, beta, gamma) in radians, applied as static rotations about the x, y and z axes
// in that order.

// QuaternionFromEuler creates a unit quaternion from Euler angles.
func QuaternionFromEuler(angles Vector3) (Quaternion, error) {
	sa, ca := math.Sincos(angles.X() / 2)
	sb, cb := math.Sincos(angles.Y() / 2)
	sg, cg := math.Sincos(angles.Z() / 2)

	q := NewQuaternionXYZW(
		sa*cb*cg-ca*sb*sg,
		ca*sb*cg+sa*cb*sg,
		ca*cb*sg-sa*sb*cg,
		ca*cb*cg+sa*sb*sg,
	)
	// Only non-finite angles can produce a zero norm here.
	return q.Normalized()
}

// ToEuler converts the quaternion to Euler angles. QuaternionFromEuler(q.ToEuler()) is the same rotation
// as q, though the angles may differ from the ones q was built from by multiples of 2π.
func (q Quaternion) ToEuler() (Vector3, error) {
	if q.Magnitude() == 0 {
		return Vector3{}, NewZeroNormError("ToEuler", q)
	}
	h := q.homogeneous()

	cy := math.Sqrt(utils.Square(h.At(0, 0)) + utils.Square(h.At(1, 0)))
	if cy > floatEpsilon {
		return NewVector3(
			math.Atan2(h.At(2, 1), h.At(2, 2)),
			math.Atan2(-h.At(2, 0), cy),
			math.Atan2(h.At(1, 0), h.At(0, 0)),
		), nil
	}
	// gimbal lock, the x and z rotations share an axis
	return NewVector3(
		math.Atan2(-h.At(1, 2), h.At(1, 1)),
		math.Atan2(-h.At(2, 0), cy),
		0,
	), nil
}
