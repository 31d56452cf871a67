package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/lobster-robotics/common/spatialmath"
	"github.com/lobster-robotics/common/timeunit"
)

// printf prints a message with a trailing newline.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a warning message with a trailing newline. The prefix is colored when the
// terminal supports it.
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	color.New(color.FgYellow, color.Bold).Fprint(w, "Warning: ")
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// parseFloats parses every argument as a number. All bad arguments are reported together.
func parseFloats(args []string) ([]float64, error) {
	var errs error
	values := lo.Map(args, func(arg string, i int) float64 {
		value, err := cast.ToFloat64E(arg)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "argument %d", i+1))
		}
		return value
	})
	if errs != nil {
		return nil, errs
	}
	return values, nil
}

// floatArgs parses exactly `want` numeric positional arguments.
func floatArgs(c *cli.Context, want int) ([]float64, error) {
	args := c.Args().Slice()
	if len(args) != want {
		return nil, errors.Errorf("expected %d numeric arguments but got %d", want, len(args))
	}
	return parseFloats(args)
}

func vectorArgs(c *cli.Context) (spatialmath.Vector3, error) {
	values, err := floatArgs(c, 3)
	if err != nil {
		return spatialmath.Vector3{}, err
	}
	return spatialmath.NewVector3FromSlice(values)
}

func quaternionArgs(c *cli.Context) (spatialmath.Quaternion, error) {
	values, err := floatArgs(c, 4)
	if err != nil {
		return spatialmath.Quaternion{}, err
	}
	return spatialmath.NewQuaternion(values)
}

// parseDurations parses every argument as a duration. All bad arguments are reported together.
func parseDurations(args []string) ([]timeunit.Duration, error) {
	var errs error
	durations := lo.Map(args, func(arg string, _ int) timeunit.Duration {
		d, err := timeunit.ParseDuration(arg)
		errs = multierr.Append(errs, err)
		return d
	})
	if errs != nil {
		return nil, errs
	}
	return durations, nil
}

func parseFrameFlags(c *cli.Context) (spatialmath.Frame, spatialmath.Frame, error) {
	from, fromErr := spatialmath.ParseFrame(c.String(flagFrom))
	to, toErr := spatialmath.ParseFrame(c.String(flagTo))
	if err := multierr.Combine(fromErr, toErr); err != nil {
		return spatialmath.NED, spatialmath.NED, err
	}
	return from, to, nil
}
