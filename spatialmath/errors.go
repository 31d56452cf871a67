package spatialmath

import (
	"github.com/pkg/errors"
)

var (
	// ErrDimension is returned when an input does not have the fixed arity of the value being built:
	// 3 for vectors, 4 for quaternions, 3x3 for rotation matrices.
	ErrDimension = errors.New("dimension mismatch")
	// ErrZeroNorm is returned when a rotation is derived from, or a quaternion normalized with, a zero norm.
	ErrZeroNorm = errors.New("zero norm")
	// ErrDivideByZero is returned when a vector is divided by zero, including normalizing a zero vector.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrIndexOutOfRange is returned for a component index outside the value's arity.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownFrame is returned when a frame name does not match NED, ENU or NWU.
	ErrUnknownFrame = errors.New("unknown frame")
)

// NewDimensionError is used when a kind of value needs want elements but got a different amount.
func NewDimensionError(kind string, want, got int) error {
	return errors.Wrapf(ErrDimension, "a %s needs an input of length %d, got %d", kind, want, got)
}

// NewMatrixDimensionError is used when a matrix does not have the expected shape.
func NewMatrixDimensionError(wantR, wantC, gotR, gotC int) error {
	return errors.Wrapf(ErrDimension, "expected a %dx%d matrix, got %dx%d", wantR, wantC, gotR, gotC)
}

// NewZeroNormError is used when an operation needs a non-zero norm from its input.
func NewZeroNormError(op string, value interface{}) error {
	return errors.Wrapf(ErrZeroNorm, "input to %s(%v) has zero norm", op, value)
}

// NewDivideByZeroError is used when an operation would divide by zero.
func NewDivideByZeroError(op string) error {
	return errors.Wrapf(ErrDivideByZero, "%s", op)
}

// NewIndexOutOfRangeError is used when a component index is outside [0, size).
func NewIndexOutOfRangeError(idx, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", idx, size)
}

// NewUnknownFrameError is used when a frame is not one of NED, ENU or NWU.
func NewUnknownFrameError(name string) error {
	return errors.Wrapf(ErrUnknownFrame, "frame %q not recognized", name)
}
