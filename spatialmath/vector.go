package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/lobster-robotics/common/utils"
)

// Vector3 is an immutable 3 dimensional vector. Vectors are always stored in the NED frame; use the
// frame conversion functions when reading from or handing out to an ENU or NWU consumer.
type Vector3 struct {
	v r3.Vector
}

// NewVector3 creates a vector from its x, y and z components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{r3.Vector{X: x, Y: y, Z: z}}
}

// NewVector3FromSlice creates a vector from a slice in the form [x, y, z].
func NewVector3FromSlice(data []float64) (Vector3, error) {
	if len(data) != 3 {
		return Vector3{}, NewDimensionError("Vector3", 3, len(data))
	}
	return NewVector3(data[0], data[1], data[2]), nil
}

// NewVector3FromR3 wraps an r3.Vector.
func NewVector3FromR3(v r3.Vector) Vector3 {
	return Vector3{v}
}

// X returns the first component.
func (v Vector3) X() float64 { return v.v.X }

// Y returns the second component.
func (v Vector3) Y() float64 { return v.v.Y }

// Z returns the third component.
func (v Vector3) Z() float64 { return v.v.Z }

// R3 returns the vector as an r3.Vector.
func (v Vector3) R3() r3.Vector { return v.v }

// Slice returns a freshly allocated [x, y, z].
func (v Vector3) Slice() []float64 {
	return []float64{v.v.X, v.v.Y, v.v.Z}
}

// Array returns the components as an array.
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.v.X, v.v.Y, v.v.Z}
}

// At returns the component at index i.
func (v Vector3) At(i int) (float64, error) {
	if i < 0 || i > 2 {
		return 0, NewIndexOutOfRangeError(i, 3)
	}
	return v.Array()[i], nil
}

// WithComponent returns a copy of v where the component at index i is replaced by value.
// This is the only way to "set" a component; v itself is never changed.
func (v Vector3) WithComponent(i int, value float64) (Vector3, error) {
	if i < 0 || i > 2 {
		return Vector3{}, NewIndexOutOfRangeError(i, 3)
	}
	arr := v.Array()
	arr[i] = value
	return NewVector3(arr[0], arr[1], arr[2]), nil
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.v.Add(other.v)}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.v.Sub(other.v)}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{v.v.Mul(-1)}
}

// Scale multiplies every component by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.v.Mul(s)}
}

// MulElem returns the element-wise product of v and other.
func (v Vector3) MulElem(other Vector3) Vector3 {
	return NewVector3(v.v.X*other.v.X, v.v.Y*other.v.Y, v.v.Z*other.v.Z)
}

// Div divides every component by s.
func (v Vector3) Div(s float64) (Vector3, error) {
	if s == 0 {
		return Vector3{}, NewDivideByZeroError("Vector3 divided by scalar 0")
	}
	return NewVector3(v.v.X/s, v.v.Y/s, v.v.Z/s), nil
}

// DivElem returns the element-wise quotient of v and other.
func (v Vector3) DivElem(other Vector3) (Vector3, error) {
	if other.v.X == 0 || other.v.Y == 0 || other.v.Z == 0 {
		return Vector3{}, NewDivideByZeroError(fmt.Sprintf("Vector3 divided element-wise by %v", other))
	}
	return NewVector3(v.v.X/other.v.X, v.v.Y/other.v.Y, v.v.Z/other.v.Z), nil
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.v.Dot(other.v)
}

// Cross returns the cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{v.v.Cross(other.v)}
}

// Magnitude returns the euclidean norm of the vector.
func (v Vector3) Magnitude() float64 {
	return v.v.Norm()
}

// Normalized returns the unit vector pointing in the same direction as v.
// A zero vector has no direction and returns ErrDivideByZero.
func (v Vector3) Normalized() (Vector3, error) {
	n := v.Magnitude()
	if n == 0 {
		return Vector3{}, NewDivideByZeroError(fmt.Sprintf("cannot normalize %v", v))
	}
	return NewVector3(v.v.X/n, v.v.Y/n, v.v.Z/n), nil
}

// Plus adds an operand of a dynamic kind to v. Accepted operands are a Vector3, a [3]float64 or a
// []float64 of length 3; anything else is a type mismatch.
func (v Vector3) Plus(operand interface{}) (Vector3, error) {
	switch o := operand.(type) {
	case Vector3:
		return v.Add(o), nil
	case [3]float64:
		return v.Add(NewVector3(o[0], o[1], o[2])), nil
	case []float64:
		other, err := NewVector3FromSlice(o)
		if err != nil {
			return Vector3{}, err
		}
		return v.Add(other), nil
	default:
		return Vector3{}, utils.NewUnsupportedOperandError("+", v, operand)
	}
}

// Minus subtracts an operand of a dynamic kind from v. Only a Vector3 can be subtracted.
func (v Vector3) Minus(operand interface{}) (Vector3, error) {
	if o, ok := operand.(Vector3); ok {
		return v.Sub(o), nil
	}
	return Vector3{}, utils.NewUnsupportedOperandError("-", v, operand)
}

// Times multiplies v by a numeric scalar, or element-wise by another Vector3.
func (v Vector3) Times(operand interface{}) (Vector3, error) {
	if o, ok := operand.(Vector3); ok {
		return v.MulElem(o), nil
	}
	s, ok := toScalar(operand)
	if !ok {
		return Vector3{}, utils.NewUnsupportedOperandError("*", v, operand)
	}
	return v.Scale(s), nil
}

// DividedBy divides v by a numeric scalar, or element-wise by another Vector3.
func (v Vector3) DividedBy(operand interface{}) (Vector3, error) {
	if o, ok := operand.(Vector3); ok {
		return v.DivElem(o)
	}
	s, ok := toScalar(operand)
	if !ok {
		return Vector3{}, utils.NewUnsupportedOperandError("/", v, operand)
	}
	return v.Div(s)
}

// Rotate rotates the vector by the given quaternion.
func (v Vector3) Rotate(q Quaternion) (Vector3, error) {
	m, err := q.RotationMatrix()
	if err != nil {
		return Vector3{}, err
	}
	return mulMatVec(m, v), nil
}

// RotateInverse inversely rotates the vector by the given quaternion.
func (v Vector3) RotateInverse(q Quaternion) (Vector3, error) {
	m, err := q.InverseRotationMatrix()
	if err != nil {
		return Vector3{}, err
	}
	return mulMatVec(m, v), nil
}

// Equal reports exact component-wise equality.
func (v Vector3) Equal(other Vector3) bool {
	return v.v == other.v
}

// AlmostEqual compares v to other with the default relative and absolute tolerances.
func (v Vector3) AlmostEqual(other Vector3) bool {
	return v.AlmostEqualTol(other, DefaultRelTol, DefaultAbsTol)
}

// AlmostEqualTol compares v to other component-wise; other is the reference value.
func (v Vector3) AlmostEqualTol(other Vector3, relTol, absTol float64) bool {
	return allClose(v.Slice(), other.Slice(), relTol, absTol)
}

// String formats the vector with the default display format.
func (v Vector3) String() string {
	if cfg := DefaultFormat(); cfg != nil {
		return v.Format(*cfg)
	}
	return fmt.Sprintf("Vec3<%.4f, %.4f, %.4f>", v.v.X, v.v.Y, v.v.Z)
}

func mulMatVec(m mat.Matrix, v Vector3) Vector3 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, v.Slice()))
	return NewVector3(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}

// toScalar promotes any Go numeric kind to a float64.
func toScalar(operand interface{}) (float64, bool) {
	switch s := operand.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int8:
		return float64(s), true
	case int16:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint8:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint64:
		return float64(s), true
	default:
		return 0, false
	}
}

// MagneticFieldNED returns the direction of the magnetic field in the NED frame.
func MagneticFieldNED() Vector3 {
	return NewVector3(utils.MagneticFieldNED[utils.X], utils.MagneticFieldNED[utils.Y], utils.MagneticFieldNED[utils.Z])
}
