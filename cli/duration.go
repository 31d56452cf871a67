package cli

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/lobster-robotics/common/timeunit"
)

// DurationAddAction prints the sum of one or more durations.
func DurationAddAction(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return errors.New("expected at least one duration")
	}
	durations, err := parseDurations(c.Args().Slice())
	if err != nil {
		return err
	}
	total := lo.Reduce(durations, func(sum, d timeunit.Duration, _ int) timeunit.Duration {
		return sum.Add(d)
	}, timeunit.Nanoseconds(0))
	logger := loggerFromContext(c).Sublogger("duration")
	logger.Debugw("added durations", "count", len(durations))
	if ns := total.Nanoseconds(); ns == math.MaxInt64 || ns == math.MinInt64 {
		logger.Warnw("sum saturated at the range of a duration", "total", total.String())
	}
	printf(c.App.Writer, "%s", total)
	return nil
}
