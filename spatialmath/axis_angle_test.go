package spatialmath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestAxisAngleRoundTrip(t *testing.T) {
	data := []struct {
		axis  Vector3
		theta float64
	}{
		{NewVector3(1, 1, 1), 1},
		{NewVector3(1, 0, 0), 1},
		{NewVector3(0, 1, 0), 1},
		{NewVector3(0, 0, 1), 1},
	}

	// Quaternion [x, y, z, w]
	// from https://www.andre-gaschler.com/rotationconverter/
	qc := [][]float64{
		{0.2767965, 0.2767965, 0.2767965, 0.8775826},
		{0.4794255, 0, 0, 0.8775826},
		{0, 0.4794255, 0, 0.8775826},
		{0, 0, 0.4794255, 0.8775826},
	}

	for idx, d := range data {
		aa, err := NewAxisAngle(d.axis, d.theta)
		test.That(t, err, test.ShouldBeNil)
		q := aa.Quaternion()
		test.That(t, q.X(), test.ShouldAlmostEqual, qc[idx][0], .00001)
		test.That(t, q.Y(), test.ShouldAlmostEqual, qc[idx][1], .00001)
		test.That(t, q.Z(), test.ShouldAlmostEqual, qc[idx][2], .00001)
		test.That(t, q.W(), test.ShouldAlmostEqual, qc[idx][3], .00001)

		aa2, err := q.AxisAngle()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, aa2.Theta, test.ShouldAlmostEqual, aa.Theta)
		test.That(t, aa2.Axis.AlmostEqual(aa.Axis), test.ShouldBeTrue)
	}

	_, err := NewAxisAngle(NewVector3(0, 0, 0), 1)
	test.That(t, errors.Is(err, ErrDivideByZero), test.ShouldBeTrue)
}

func TestAxisAngleShortestPath(t *testing.T) {
	aa, err := NewAxisAngle(NewVector3(0, 0, 1), 3*math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	aa2, err := aa.Quaternion().AxisAngle()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, aa2.Theta, test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, aa2.Axis.AlmostEqual(NewVector3(0, 0, 1)), test.ShouldBeTrue)

	aa2, err = IdentityQuaternion().AxisAngle()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, aa2.Theta, test.ShouldEqual, 0.0)
	test.That(t, aa2.Axis.Equal(NewVector3(1, 0, 0)), test.ShouldBeTrue)
}

func TestR3RoundTrip(t *testing.T) {
	test.That(t, AxisAngleFromR3(NewVector3(0, 0, 0)), test.ShouldResemble, AxisAngle{Theta: 0, Axis: NewVector3(0, 0, 1)})

	src := rand.NewPCG(13, 13)
	for i := 0; i < 100; i++ {
		q := RandomQuaternion(src)
		aa, err := q.AxisAngle()
		test.That(t, err, test.ShouldBeNil)
		r3 := aa.ToR3()
		q2 := AxisAngleFromR3(r3).Quaternion()
		test.That(t, q2.SameRotation(q), test.ShouldBeTrue)
	}
}
