package spatialmath

import (
	"strconv"
	"strings"
)

// Frame is an axis convention. Values are always stored in NED; the other frames only exist at the
// boundary with consumers that speak them.
type Frame int

const (
	// NED is North-East-Down, the canonical storage frame.
	NED Frame = iota
	// ENU is East-North-Up.
	ENU
	// NWU is North-West-Up.
	NWU
)

// String returns the conventional abbreviation of the frame.
func (f Frame) String() string {
	switch f {
	case NED:
		return "NED"
	case ENU:
		return "ENU"
	case NWU:
		return "NWU"
	default:
		return "Frame(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFrame parses a frame abbreviation, case insensitively.
func ParseFrame(s string) (Frame, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NED":
		return NED, nil
	case "ENU":
		return ENU, nil
	case "NWU":
		return NWU, nil
	default:
		return NED, NewUnknownFrameError(s)
	}
}

// Both ENU and NWU differ from NED by a half turn about the first axis, which negates the second and
// third components of a vector and of the vector part of a quaternion. The flip is its own inverse, so
// converting there and back is exact.

// AsENU returns the vector in the ENU frame.
func (v Vector3) AsENU() Vector3 { return flipVector(v) }

// AsNWU returns the vector in the NWU frame.
func (v Vector3) AsNWU() Vector3 { return flipVector(v) }

// Vector3FromENU converts a vector given in the ENU frame to NED.
func Vector3FromENU(v Vector3) Vector3 { return flipVector(v) }

// Vector3FromNWU converts a vector given in the NWU frame to NED.
func Vector3FromNWU(v Vector3) Vector3 { return flipVector(v) }

// AsENU returns the quaternion in the ENU frame.
func (q Quaternion) AsENU() Quaternion { return flipQuaternion(q) }

// AsNWU returns the quaternion in the NWU frame.
func (q Quaternion) AsNWU() Quaternion { return flipQuaternion(q) }

// QuaternionFromENU converts a quaternion given in the ENU frame to NED.
func QuaternionFromENU(q Quaternion) Quaternion { return flipQuaternion(q) }

// QuaternionFromNWU converts a quaternion given in the NWU frame to NED.
func QuaternionFromNWU(q Quaternion) Quaternion { return flipQuaternion(q) }

// ConvertVector converts v from one frame to another, going through NED.
func ConvertVector(v Vector3, from, to Frame) (Vector3, error) {
	if err := checkFrames(from, to); err != nil {
		return Vector3{}, err
	}
	switch from {
	case ENU:
		v = Vector3FromENU(v)
	case NWU:
		v = Vector3FromNWU(v)
	}
	switch to {
	case ENU:
		v = v.AsENU()
	case NWU:
		v = v.AsNWU()
	}
	return v, nil
}

// ConvertQuaternion converts q from one frame to another, going through NED.
func ConvertQuaternion(q Quaternion, from, to Frame) (Quaternion, error) {
	if err := checkFrames(from, to); err != nil {
		return Quaternion{}, err
	}
	switch from {
	case ENU:
		q = QuaternionFromENU(q)
	case NWU:
		q = QuaternionFromNWU(q)
	}
	switch to {
	case ENU:
		q = q.AsENU()
	case NWU:
		q = q.AsNWU()
	}
	return q, nil
}

func flipVector(v Vector3) Vector3 {
	return NewVector3(v.X(), -v.Y(), -v.Z())
}

func flipQuaternion(q Quaternion) Quaternion {
	return NewQuaternionXYZW(q.X(), -q.Y(), -q.Z(), q.W())
}

func checkFrames(frames ...Frame) error {
	for _, f := range frames {
		if f < NED || f > NWU {
			return NewUnknownFrameError(f.String())
		}
	}
	return nil
}
