package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix converts the quaternion to a 3x3 rotation matrix. The components are divided by the
// norm of q, so an unnormalized quaternion still yields a matrix; a zero quaternion returns ErrZeroNorm.
func (q Quaternion) RotationMatrix() (*mat.Dense, error) {
	n := q.Magnitude()
	if n == 0 {
		return nil, NewZeroNormError("RotationMatrix", q)
	}
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W()
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z)/n, 2 * (x*y - z*w) / n, 2 * (x*z + y*w) / n,
		2 * (x*y + z*w) / n, 1 - 2*(x*x+z*z)/n, 2 * (y*z - x*w) / n,
		2 * (x*z - y*w) / n, 2 * (y*z + x*w) / n, 1 - 2*(x*x+y*y)/n,
	}), nil
}

// InverseRotationMatrix returns the matrix inverse of RotationMatrix.
func (q Quaternion) InverseRotationMatrix() (*mat.Dense, error) {
	m, err := q.RotationMatrix()
	if err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, errors.Wrapf(err, "cannot invert rotation matrix of %v", q)
	}
	return &inv, nil
}

// QuaternionFromRotationMatrix extracts the quaternion from a 3x3 rotation matrix. The branch is chosen
// on the trace of the homogeneous matrix so the result stays stable for rotations close to π.
func QuaternionFromRotationMatrix(m mat.Matrix) (Quaternion, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return Quaternion{}, NewMatrixDimensionError(3, 3, r, c)
	}
	h := mgl64.Ident4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			h.Set(i, j, m.At(i, j))
		}
	}
	return quaternionFromHomogeneous(h), nil
}

func quaternionFromHomogeneous(h mgl64.Mat4) Quaternion {
	var q [4]float64
	t := h.Trace()
	if t > h.At(3, 3) {
		q[3] = t
		q[2] = h.At(1, 0) - h.At(0, 1)
		q[1] = h.At(0, 2) - h.At(2, 0)
		q[0] = h.At(2, 1) - h.At(1, 2)
	} else {
		i, j, k := 0, 1, 2
		if h.At(1, 1) > h.At(0, 0) {
			i, j, k = 1, 2, 0
		}
		if h.At(2, 2) > h.At(i, i) {
			i, j, k = 2, 0, 1
		}
		t = h.At(i, i) - (h.At(j, j) + h.At(k, k)) + h.At(3, 3)
		q[i] = t
		q[j] = h.At(i, j) + h.At(j, i)
		q[k] = h.At(k, i) + h.At(i, k)
		q[3] = h.At(k, j) - h.At(j, k)
	}
	s := 0.5 / math.Sqrt(t*h.At(3, 3))
	return NewQuaternionXYZW(q[0]*s, q[1]*s, q[2]*s, q[3]*s)
}

// homogeneous returns the 4x4 homogeneous rotation matrix of q. Quaternions with a squared norm below
// floatEpsilon map to the identity.
func (q Quaternion) homogeneous() mgl64.Mat4 {
	nq := q.X()*q.X() + q.Y()*q.Y() + q.Z()*q.Z() + q.W()*q.W()
	if nq < floatEpsilon {
		return mgl64.Ident4()
	}
	s := math.Sqrt(2 / nq)
	x, y, z, w := q.X()*s, q.Y()*s, q.Z()*s, q.W()*s
	h := mgl64.Ident4()
	h.Set(0, 0, 1-y*y-z*z)
	h.Set(0, 1, x*y-z*w)
	h.Set(0, 2, x*z+y*w)
	h.Set(1, 0, x*y+z*w)
	h.Set(1, 1, 1-x*x-z*z)
	h.Set(1, 2, y*z-x*w)
	h.Set(2, 0, x*z-y*w)
	h.Set(2, 1, y*z+x*w)
	h.Set(2, 2, 1-x*x-y*y)
	return h
}
