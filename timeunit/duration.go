// Package timeunit defines a nanosecond resolution duration that is always constructed from an explicit unit.
package timeunit

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/lobster-robotics/common/utils"
)

const (
	nanosecondsPerSecond      = int64(1e9)
	nanosecondsPerMillisecond = int64(1e6)
	nanosecondsPerMicrosecond = int64(1e3)
)

// ErrOutOfRange means a value is not finite or does not fit in the int64 nanoseconds of a Duration.
var ErrOutOfRange = errors.New("duration out of range")

// Duration is a span of time stored as a whole number of nanoseconds. There is no way to build one
// from a bare number: use Seconds, Milliseconds, Microseconds or Nanoseconds so the unit is always
// explicit. The zero value is a zero duration.
type Duration struct {
	ns int64
}

// Seconds creates a Duration from seconds. Fractions below a nanosecond are truncated.
// Values beyond the range of a Duration saturate at its bounds and NaN becomes zero; use
// ParseDuration when such input must be rejected.
func Seconds(seconds float64) Duration {
	return fromScaled(seconds, nanosecondsPerSecond)
}

// Milliseconds creates a Duration from milliseconds. Fractions below a nanosecond are truncated.
func Milliseconds(milliseconds float64) Duration {
	return fromScaled(milliseconds, nanosecondsPerMillisecond)
}

// Microseconds creates a Duration from microseconds. Fractions below a nanosecond are truncated.
func Microseconds(microseconds float64) Duration {
	return fromScaled(microseconds, nanosecondsPerMicrosecond)
}

// Nanoseconds creates a Duration from nanoseconds.
func Nanoseconds(nanoseconds int64) Duration {
	return Duration{nanoseconds}
}

// FromStd converts a time.Duration, which is also in nanoseconds.
func FromStd(d time.Duration) Duration {
	return Duration{int64(d)}
}

// float64(math.MaxInt64) rounds up to 2^63, the first value that no longer fits.
const int64Limit = float64(math.MaxInt64)

func fromScaled(value float64, nsPerUnit int64) Duration {
	ns := math.Trunc(value * float64(nsPerUnit))
	switch {
	case math.IsNaN(ns):
		return Duration{}
	case ns >= int64Limit:
		return Duration{math.MaxInt64}
	case ns < -int64Limit:
		return Duration{math.MinInt64}
	}
	return Duration{int64(ns)}
}

// checkedScaled is fromScaled without saturation.
func checkedScaled(value float64, nsPerUnit int64) (Duration, error) {
	ns := math.Trunc(value * float64(nsPerUnit))
	if math.IsNaN(ns) || ns >= int64Limit || ns < -int64Limit {
		return Duration{}, ErrOutOfRange
	}
	return Duration{int64(ns)}, nil
}

// Add returns d + other. No precision is lost; a sum beyond the range of a Duration saturates.
func (d Duration) Add(other Duration) Duration {
	sum := d.ns + other.ns
	switch {
	case d.ns > 0 && other.ns > 0 && sum < 0:
		return Duration{math.MaxInt64}
	case d.ns < 0 && other.ns < 0 && sum >= 0:
		return Duration{math.MinInt64}
	}
	return Duration{sum}
}

// Sub returns d - other, saturating like Add.
func (d Duration) Sub(other Duration) Duration {
	diff := d.ns - other.ns
	switch {
	case d.ns >= 0 && other.ns < 0 && diff < 0:
		return Duration{math.MaxInt64}
	case d.ns < 0 && other.ns > 0 && diff >= 0:
		return Duration{math.MinInt64}
	}
	return Duration{diff}
}

// Plus adds an operand of a dynamic kind to d. Only another Duration can be added; a bare number has no
// unit and is a type mismatch.
func (d Duration) Plus(operand interface{}) (Duration, error) {
	switch o := operand.(type) {
	case Duration:
		return d.Add(o), nil
	case *Duration:
		if o != nil {
			return d.Add(*o), nil
		}
	}
	return Duration{}, utils.NewUnsupportedOperandError("+", d, operand)
}

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 {
	return float64(d.ns) / float64(nanosecondsPerSecond)
}

// Milliseconds returns the duration in milliseconds.
func (d Duration) Milliseconds() float64 {
	return float64(d.ns) / float64(nanosecondsPerMillisecond)
}

// Microseconds returns the duration in microseconds.
func (d Duration) Microseconds() float64 {
	return float64(d.ns) / float64(nanosecondsPerMicrosecond)
}

// Nanoseconds returns the duration in nanoseconds.
func (d Duration) Nanoseconds() int64 {
	return d.ns
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.ns)
}

// String renders the duration in seconds with nanosecond precision.
func (d Duration) String() string {
	return fmt.Sprintf("Time<%.9f seconds>", d.Seconds())
}

var unitSuffixes = []struct {
	suffix    string
	nsPerUnit int64
}{
	// longest suffixes first so "ms" is not read as "s"
	{"ns", 1},
	{"us", nanosecondsPerMicrosecond},
	{"µs", nanosecondsPerMicrosecond},
	{"ms", nanosecondsPerMillisecond},
	{"s", nanosecondsPerSecond},
}

// ParseDuration parses a number followed by a unit suffix: s, ms, us (or µs) or ns, e.g. "30s" or "500ms".
// Unlike the float constructors it fails with ErrOutOfRange for NaN, infinities and values that do not
// fit in a Duration.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	for _, u := range unitSuffixes {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		value, err := cast.ToFloat64E(strings.TrimSpace(strings.TrimSuffix(s, u.suffix)))
		if err != nil {
			return Duration{}, errors.Wrapf(err, "invalid duration %q", s)
		}
		d, err := checkedScaled(value, u.nsPerUnit)
		if err != nil {
			return Duration{}, errors.Wrapf(err, "invalid duration %q", s)
		}
		return d, nil
	}
	return Duration{}, errors.Errorf("duration %q has no unit, expected one of s, ms, us, ns", s)
}
