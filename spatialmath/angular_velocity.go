package spatialmath

import (
	"github.com/lobster-robotics/common/timeunit"
)

// AngularVelocityBetween calculates the constant angular velocity, in rad/s around the body axes of from,
// that turns the orientation from into the orientation to over dt.
func AngularVelocityBetween(from, to Quaternion, dt timeunit.Duration) (Vector3, error) {
	if dt.Nanoseconds() == 0 {
		return Vector3{}, NewDivideByZeroError("angular velocity over a zero duration")
	}
	aa, err := from.Difference(to).AxisAngle()
	if err != nil {
		return Vector3{}, err
	}
	return aa.ToR3().Div(dt.Seconds())
}

// IntegrateAngularVelocity rotates the orientation q by the angular velocity w, in rad/s around the body
// axes of q, held for dt. It is the inverse of AngularVelocityBetween.
func IntegrateAngularVelocity(q Quaternion, w Vector3, dt timeunit.Duration) Quaternion {
	step := AxisAngleFromR3(w.Scale(dt.Seconds())).Quaternion()
	return q.Multiply(step)
}
