package spatialmath

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an immutable quaternion stored scalar-last as (x, y, z, w) in the NED frame.
// A Quaternion represents a rotation when its norm is 1, but construction does not enforce that;
// call Normalized when a unit quaternion is needed.
type Quaternion struct {
	q quat.Number
}

// NewQuaternion creates a quaternion from a slice in the form [x, y, z, w].
func NewQuaternion(data []float64) (Quaternion, error) {
	if len(data) != 4 {
		return Quaternion{}, NewDimensionError("Quaternion", 4, len(data))
	}
	return NewQuaternionXYZW(data[0], data[1], data[2], data[3]), nil
}

// NewQuaternionXYZW creates a quaternion from its components.
func NewQuaternionXYZW(x, y, z, w float64) Quaternion {
	return Quaternion{quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// NewQuaternionFromNumber wraps a gonum quaternion, whose Real part is the scalar w.
func NewQuaternionFromNumber(q quat.Number) Quaternion {
	return Quaternion{q}
}

// IdentityQuaternion returns the quaternion that signifies no rotation.
func IdentityQuaternion() Quaternion {
	return NewQuaternionXYZW(0, 0, 0, 1)
}

// X returns the first vector component.
func (q Quaternion) X() float64 { return q.q.Imag }

// Y returns the second vector component.
func (q Quaternion) Y() float64 { return q.q.Jmag }

// Z returns the third vector component.
func (q Quaternion) Z() float64 { return q.q.Kmag }

// W returns the scalar component.
func (q Quaternion) W() float64 { return q.q.Real }

// Number returns the quaternion as a gonum quat.Number.
func (q Quaternion) Number() quat.Number { return q.q }

// Slice returns a freshly allocated [x, y, z, w].
func (q Quaternion) Slice() []float64 {
	return []float64{q.q.Imag, q.q.Jmag, q.q.Kmag, q.q.Real}
}

// Array returns the components as an array in the form [x, y, z, w].
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.q.Imag, q.q.Jmag, q.q.Kmag, q.q.Real}
}

// At returns the component at index i of [x, y, z, w].
func (q Quaternion) At(i int) (float64, error) {
	if i < 0 || i > 3 {
		return 0, NewIndexOutOfRangeError(i, 4)
	}
	return q.Array()[i], nil
}

// WithComponent returns a copy of q where the component at index i of [x, y, z, w] is replaced.
func (q Quaternion) WithComponent(i int, value float64) (Quaternion, error) {
	if i < 0 || i > 3 {
		return Quaternion{}, NewIndexOutOfRangeError(i, 4)
	}
	arr := q.Array()
	arr[i] = value
	return NewQuaternionXYZW(arr[0], arr[1], arr[2], arr[3]), nil
}

// Magnitude returns the euclidean norm of all four components.
func (q Quaternion) Magnitude() float64 {
	return quat.Abs(q.q)
}

// Normalized returns q divided by its norm.
func (q Quaternion) Normalized() (Quaternion, error) {
	n := q.Magnitude()
	if n == 0 {
		return Quaternion{}, NewZeroNormError("Normalized", q)
	}
	return NewQuaternionXYZW(q.q.Imag/n, q.q.Jmag/n, q.q.Kmag/n, q.q.Real/n), nil
}

// Multiply returns the Hamilton product q ⊗ other. Used as a rotation, other is applied first and q second.
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{quat.Mul(q.q, other.q)}
}

// Conjugate negates the vector part of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{quat.Conj(q.q)}
}

// Negate returns -q, which represents the same rotation as q.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{quat.Scale(-1, q.q)}
}

// Difference returns the rotation that transforms the orientation q into the orientation other.
func (q Quaternion) Difference(other Quaternion) Quaternion {
	return q.Conjugate().Multiply(other)
}

// Equal reports exact component-wise equality.
func (q Quaternion) Equal(other Quaternion) bool {
	return q.q == other.q
}

// AlmostEqual compares q to other with the default relative and absolute tolerances.
// q and -q are not considered almost equal here even though they are the same rotation, see SameRotation.
func (q Quaternion) AlmostEqual(other Quaternion) bool {
	return q.AlmostEqualTol(other, DefaultRelTol, DefaultAbsTol)
}

// AlmostEqualTol compares q to other component-wise; other is the reference value.
func (q Quaternion) AlmostEqualTol(other Quaternion, relTol, absTol float64) bool {
	return allClose(q.Slice(), other.Slice(), relTol, absTol)
}

// SameRotation reports whether q and other are almost equal up to the sign ambiguity of quaternions.
func (q Quaternion) SameRotation(other Quaternion) bool {
	return q.AlmostEqual(other) || q.Negate().AlmostEqual(other)
}

// String formats the quaternion with the default display format.
func (q Quaternion) String() string {
	if cfg := DefaultFormat(); cfg != nil {
		return q.Format(*cfg)
	}
	return fmt.Sprintf("Quaternion<x:%v,y:%v,z:%v,w:%v>", q.q.Imag, q.q.Jmag, q.q.Kmag, q.q.Real)
}
