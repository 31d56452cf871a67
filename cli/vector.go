package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lobster-robotics/common/spatialmath"
)

type formattable interface {
	fmt.Stringer
	Format(cfg spatialmath.FormatConfig) string
}

// render formats a value with the display format of the command line, if one was given.
func render(c *cli.Context, value formattable) string {
	if cfg := formatFromContext(c); cfg != nil {
		return value.Format(*cfg)
	}
	return value.String()
}

func renderFloat(c *cli.Context, f float64) string {
	if cfg := formatFromContext(c); cfg != nil {
		return cfg.FormatFloat(f)
	}
	return spatialmath.FormatConfig{}.FormatFloat(f)
}

// VectorConvertAction converts a vector between frames.
func VectorConvertAction(c *cli.Context) error {
	v, err := vectorArgs(c)
	if err != nil {
		return err
	}
	from, to, err := parseFrameFlags(c)
	if err != nil {
		return err
	}
	converted, err := spatialmath.ConvertVector(v, from, to)
	if err != nil {
		return err
	}
	loggerFromContext(c).Sublogger("vector").Debugw("converted vector", "from", from.String(), "to", to.String())
	printf(c.App.Writer, "%s", render(c, converted))
	return nil
}

// VectorRotateAction rotates a vector by a quaternion given as a flag.
func VectorRotateAction(c *cli.Context) error {
	v, err := vectorArgs(c)
	if err != nil {
		return err
	}
	q, err := spatialmath.NewQuaternion(c.Float64Slice(flagQuat))
	if err != nil {
		return err
	}

	var rotated spatialmath.Vector3
	if c.Bool(flagInverse) {
		rotated, err = v.RotateInverse(q)
	} else {
		rotated, err = v.Rotate(q)
	}
	if err != nil {
		return err
	}
	loggerFromContext(c).Sublogger("vector").Debugw("rotated vector", "quaternion", q.String(), "inverse", c.Bool(flagInverse))
	printf(c.App.Writer, "%s", render(c, rotated))
	return nil
}
