package spatialmath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// hamilton is an independent, component-wise Hamilton product of scalar-last quaternions.
func hamilton(a, b [4]float64) [4]float64 {
	x1, y1, z1, w1 := a[0], a[1], a[2], a[3]
	x2, y2, z2, w2 := b[0], b[1], b[2], b[3]
	return [4]float64{
		w1*x2 + x1*w2 + y1*z2 - z1*y2,
		w1*y2 - x1*z2 + y1*w2 + z1*x2,
		w1*z2 + x1*y2 - y1*x2 + z1*w2,
		w1*w2 - x1*x2 - y1*y2 - z1*z2,
	}
}

func matrixData(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

var approxMatrix = cmpopts.EquateApprox(0, 1e-9)

func TestNewQuaternion(t *testing.T) {
	q, err := NewQuaternion([]float64{1, 2, 3, 4})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.X(), test.ShouldEqual, 1.0)
	test.That(t, q.Y(), test.ShouldEqual, 2.0)
	test.That(t, q.Z(), test.ShouldEqual, 3.0)
	test.That(t, q.W(), test.ShouldEqual, 4.0)
	test.That(t, q.Number(), test.ShouldResemble, quat.Number{Real: 4, Imag: 1, Jmag: 2, Kmag: 3})
	test.That(t, q.Slice(), test.ShouldResemble, []float64{1, 2, 3, 4})
	test.That(t, NewQuaternionFromNumber(q.Number()).Equal(q), test.ShouldBeTrue)

	for _, data := range [][]float64{nil, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := NewQuaternion(data)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, ErrDimension), test.ShouldBeTrue)
	}
}

func TestQuaternionComponents(t *testing.T) {
	q := NewQuaternionXYZW(1, 2, 3, 4)
	for i, expected := range []float64{1, 2, 3, 4} {
		c, err := q.At(i)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, c, test.ShouldEqual, expected)
	}
	_, err := q.At(4)
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)

	q2, err := q.WithComponent(3, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q2.Equal(NewQuaternionXYZW(1, 2, 3, 0)), test.ShouldBeTrue)
	test.That(t, q.W(), test.ShouldEqual, 4.0)
	_, err = q.WithComponent(-1, 0)
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)
}

func TestQuaternionNormalized(t *testing.T) {
	q := NewQuaternionXYZW(0, 3, 0, 4)
	test.That(t, q.Magnitude(), test.ShouldEqual, 5.0)
	n, err := q.Normalized()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n.Equal(NewQuaternionXYZW(0, 0.6, 0, 0.8)), test.ShouldBeTrue)
	test.That(t, q.Equal(NewQuaternionXYZW(0, 3, 0, 4)), test.ShouldBeTrue)

	_, err = NewQuaternionXYZW(0, 0, 0, 0).Normalized()
	test.That(t, errors.Is(err, ErrZeroNorm), test.ShouldBeTrue)
}

func TestZeroNorm(t *testing.T) {
	zero, err := NewQuaternion([]float64{0, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)

	_, err = zero.RotationMatrix()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrZeroNorm), test.ShouldBeTrue)

	_, err = zero.InverseRotationMatrix()
	test.That(t, errors.Is(err, ErrZeroNorm), test.ShouldBeTrue)

	_, err = zero.ToEuler()
	test.That(t, errors.Is(err, ErrZeroNorm), test.ShouldBeTrue)

	_, err = zero.AxisAngle()
	test.That(t, errors.Is(err, ErrZeroNorm), test.ShouldBeTrue)
}

func TestRotationMatrix(t *testing.T) {
	m, err := IdentityQuaternion().RotationMatrix()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matrixData(m), test.ShouldResemble, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	// a half turn around x
	m, err = NewQuaternionXYZW(1, 0, 0, 0).RotationMatrix()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matrixData(m), test.ShouldResemble, [][]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}})

	// an unnormalized quaternion is scaled by its norm
	m, err = NewQuaternionXYZW(0, 0, 0, 2).RotationMatrix()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, matrixData(m), test.ShouldResemble, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	src := rand.NewPCG(2, 2)
	for i := 0; i < 100; i++ {
		q := RandomQuaternion(src)
		m, err := q.RotationMatrix()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mat.Det(m), test.ShouldAlmostEqual, 1, 1e-9)

		// orthonormal, so the inverse is the transpose
		inv, err := q.InverseRotationMatrix()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cmp.Diff(matrixData(inv), matrixData(m.T()), approxMatrix), test.ShouldBeEmpty)

		// and the inverse rotation is the rotation of the conjugate
		conj, err := q.Conjugate().RotationMatrix()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cmp.Diff(matrixData(inv), matrixData(conj), approxMatrix), test.ShouldBeEmpty)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	src := rand.NewPCG(3, 3)
	for i := 0; i < 1000; i++ {
		q := RandomQuaternion(src)
		m, err := q.RotationMatrix()
		test.That(t, err, test.ShouldBeNil)
		q2, err := QuaternionFromRotationMatrix(m)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, q2.SameRotation(q), test.ShouldBeTrue)
	}

	// every branch of the extraction
	for _, q := range []Quaternion{
		NewQuaternionXYZW(1, 0, 0, 0),
		NewQuaternionXYZW(0, 1, 0, 0),
		NewQuaternionXYZW(0, 0, 1, 0),
		NewQuaternionXYZW(0, 0, 0, 1),
		NewQuaternionXYZW(0, 0, 0, -1),
		NewQuaternionXYZW(math.Sqrt(0.5), math.Sqrt(0.5), 0, 0),
	} {
		m, err := q.RotationMatrix()
		test.That(t, err, test.ShouldBeNil)
		q2, err := QuaternionFromRotationMatrix(m)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, q2.SameRotation(q), test.ShouldBeTrue)
	}
}

func TestFromRotationMatrixDimensions(t *testing.T) {
	for _, m := range []mat.Matrix{
		mat.NewDense(2, 2, nil),
		mat.NewDense(3, 4, nil),
		mat.NewDense(4, 4, nil),
		mat.NewVecDense(3, nil),
	} {
		_, err := QuaternionFromRotationMatrix(m)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, ErrDimension), test.ShouldBeTrue)
	}
}

func TestFromEuler(t *testing.T) {
	for _, tc := range []struct {
		euler    Vector3
		expected Quaternion
	}{
		{NewVector3(0, 0, 0), NewQuaternionXYZW(0, 0, 0, 1)},
		{NewVector3(1, 0, 0), NewQuaternionXYZW(0.4794255, 0, 0, 0.8775826)},
		{NewVector3(1, 1, 0), NewQuaternionXYZW(0.4207355, 0.4207355, -0.2298488, 0.7701512)},
		{NewVector3(0, 0, math.Pi/2), NewQuaternionXYZW(0, 0, math.Sqrt(0.5), math.Sqrt(0.5))},
		{NewVector3(-1.262, -1.111, 2.405), NewQuaternionXYZW(0.2168010, -0.6209384, 0.5280131, 0.5372476)},
	} {
		q, err := QuaternionFromEuler(tc.euler)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, q.X(), test.ShouldAlmostEqual, tc.expected.X(), 1e-6)
		test.That(t, q.Y(), test.ShouldAlmostEqual, tc.expected.Y(), 1e-6)
		test.That(t, q.Z(), test.ShouldAlmostEqual, tc.expected.Z(), 1e-6)
		test.That(t, q.W(), test.ShouldAlmostEqual, tc.expected.W(), 1e-6)
		test.That(t, q.Magnitude(), test.ShouldAlmostEqual, 1, 1e-12)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	src := rand.NewPCG(4, 4)
	for i := 0; i < 1000; i++ {
		e := RandomEuler(src)
		q, err := QuaternionFromEuler(e)
		test.That(t, err, test.ShouldBeNil)
		e2, err := q.ToEuler()
		test.That(t, err, test.ShouldBeNil)
		q2, err := QuaternionFromEuler(e2)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, q2.SameRotation(q), test.ShouldBeTrue)
	}

	// angles inside (-π, π) with |pitch| < π/2 come back unchanged
	e := NewVector3(0.3, -0.4, 2.5)
	q, err := QuaternionFromEuler(e)
	test.That(t, err, test.ShouldBeNil)
	e2, err := q.ToEuler()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, e2.AlmostEqual(e), test.ShouldBeTrue)

	e2, err = NewQuaternionXYZW(0, 0, math.Sqrt(0.5), math.Sqrt(0.5)).ToEuler()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, e2.AlmostEqual(NewVector3(0, 0, math.Pi/2)), test.ShouldBeTrue)
}

func TestEulerGimbalLock(t *testing.T) {
	for _, e := range []Vector3{
		NewVector3(0.3, math.Pi/2, 0.2),
		NewVector3(0.3, -math.Pi/2, 0.2),
	} {
		q, err := QuaternionFromEuler(e)
		test.That(t, err, test.ShouldBeNil)
		e2, err := q.ToEuler()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, e2.Z(), test.ShouldEqual, 0.0)
		test.That(t, math.Abs(e2.Y()), test.ShouldAlmostEqual, math.Pi/2)
		q2, err := QuaternionFromEuler(e2)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, q2.SameRotation(q), test.ShouldBeTrue)
	}
}

func TestMultiply(t *testing.T) {
	src := rand.NewPCG(5, 5)
	for i := 0; i < 100; i++ {
		q1 := RandomQuaternion(src)
		q2 := RandomQuaternion(src)
		expected := hamilton(q1.Array(), q2.Array())
		product := q1.Multiply(q2)
		for j := range expected {
			c, err := product.At(j)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, c, test.ShouldAlmostEqual, expected[j], 1e-9)
		}
	}

	// q2 is applied first, then q1
	q1, err := QuaternionFromEuler(NewVector3(0, 0, math.Pi/2))
	test.That(t, err, test.ShouldBeNil)
	q2, err := QuaternionFromEuler(NewVector3(math.Pi/2, 0, 0))
	test.That(t, err, test.ShouldBeNil)
	v := NewVector3(0, 1, 0)
	viaProduct, err := v.Rotate(q1.Multiply(q2))
	test.That(t, err, test.ShouldBeNil)
	step, err := v.Rotate(q2)
	test.That(t, err, test.ShouldBeNil)
	step, err = step.Rotate(q1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, viaProduct.AlmostEqual(step), test.ShouldBeTrue)
	test.That(t, viaProduct.AlmostEqual(NewVector3(0, 0, 1)), test.ShouldBeTrue)

	// not commutative
	test.That(t, q1.Multiply(q2).AlmostEqual(q2.Multiply(q1)), test.ShouldBeFalse)
}

func TestConjugate(t *testing.T) {
	q := NewQuaternionXYZW(1, -2, 3, 4)
	test.That(t, q.Conjugate().Equal(NewQuaternionXYZW(-1, 2, -3, 4)), test.ShouldBeTrue)

	src := rand.NewPCG(6, 6)
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		// unnormalized on purpose
		scale := 0.5 + 2*rng.Float64()
		r := RandomQuaternion(src)
		q := NewQuaternionXYZW(r.X()*scale, r.Y()*scale, r.Z()*scale, r.W()*scale)

		test.That(t, q.Conjugate().Conjugate().Equal(q), test.ShouldBeTrue)

		n2 := q.Magnitude() * q.Magnitude()
		test.That(t, q.Multiply(q.Conjugate()).AlmostEqualTol(NewQuaternionXYZW(0, 0, 0, n2), 1e-9, 1e-9), test.ShouldBeTrue)
	}
}

func TestDifference(t *testing.T) {
	src := rand.NewPCG(8, 8)
	for i := 0; i < 100; i++ {
		from := RandomQuaternion(src)
		to := RandomQuaternion(src)
		diff := from.Difference(to)
		test.That(t, diff.Equal(from.Conjugate().Multiply(to)), test.ShouldBeTrue)
		test.That(t, from.Multiply(diff).SameRotation(to), test.ShouldBeTrue)
	}
	q := RandomQuaternion(src)
	test.That(t, q.Difference(q).SameRotation(IdentityQuaternion()), test.ShouldBeTrue)
}

func TestQuaternionAlmostEqual(t *testing.T) {
	q := NewQuaternionXYZW(0.5, 0.5, 0.5, 0.5)
	test.That(t, q.AlmostEqual(NewQuaternionXYZW(0.5+1e-9, 0.5, 0.5, 0.5-1e-9)), test.ShouldBeTrue)
	test.That(t, q.AlmostEqual(NewQuaternionXYZW(0.501, 0.5, 0.5, 0.5)), test.ShouldBeFalse)
	test.That(t, q.AlmostEqual(q.Negate()), test.ShouldBeFalse)
	test.That(t, q.SameRotation(q.Negate()), test.ShouldBeTrue)
	test.That(t, q.Equal(NewQuaternionXYZW(0.5, 0.5, 0.5, 0.5)), test.ShouldBeTrue)
}

func TestQuaternionString(t *testing.T) {
	test.That(t, NewQuaternionXYZW(0, 0.5, -1, 1).String(), test.ShouldEqual, "Quaternion<x:0,y:0.5,z:-1,w:1>")
}
