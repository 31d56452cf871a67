package spatialmath

import (
	"strconv"
	"strings"

	"go.uber.org/atomic"
)

// FormatConfig controls how vectors and quaternions are rendered for display. The zero value
// prints the shortest representation that round-trips. A nil or negative Precision does the same,
// so only an explicit Precision fixes the number of digits after the decimal point.
type FormatConfig struct {
	Width     int  `json:"width" yaml:"width"`
	Precision *int `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// WithPrecision returns a copy of cfg printing `digits` digits after the decimal point.
func (cfg FormatConfig) WithPrecision(digits int) FormatConfig {
	cfg.Precision = &digits
	return cfg
}

// Digits returns the number of digits after the decimal point, or -1 for the shortest
// representation.
func (cfg FormatConfig) Digits() int {
	if cfg.Precision == nil || *cfg.Precision < 0 {
		return -1
	}
	return *cfg.Precision
}

// defaultFormat is process-wide. It starts unset, in which case every type uses its natural format.
var defaultFormat atomic.Pointer[FormatConfig]

// SetDefaultFormat replaces the process-wide display format used by String. Passing nil restores the
// natural formatting. Changing it while other goroutines format values makes their output unpredictable,
// so set it once at startup.
func SetDefaultFormat(cfg *FormatConfig) {
	if cfg == nil {
		defaultFormat.Store(nil)
		return
	}
	c := *cfg
	if cfg.Precision != nil {
		c = c.WithPrecision(*cfg.Precision)
	}
	defaultFormat.Store(&c)
}

// DefaultFormat returns the process-wide display format, or nil if it is unset.
func DefaultFormat() *FormatConfig {
	return defaultFormat.Load()
}

// FormatFloat renders a single number, right aligned to Width.
func (cfg FormatConfig) FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', cfg.Digits(), 64)
	if pad := cfg.Width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// Format renders v with an explicit display format.
func (v Vector3) Format(cfg FormatConfig) string {
	return "Vec3<" + cfg.FormatFloat(v.X()) + ", " + cfg.FormatFloat(v.Y()) + ", " + cfg.FormatFloat(v.Z()) + ">"
}

// Format renders q with an explicit display format.
func (q Quaternion) Format(cfg FormatConfig) string {
	return "Quaternion<x:" + cfg.FormatFloat(q.X()) +
		",y:" + cfg.FormatFloat(q.Y()) +
		",z:" + cfg.FormatFloat(q.Z()) +
		",w:" + cfg.FormatFloat(q.W()) + ">"
}
