// Package cli contains the lobster command line tool for converting and inspecting vectors,
// quaternions and durations.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/lobster-robotics/common/logging"
)

const (
	// Global flags.
	generalFlagDebug        = "debug"
	generalFlagLogLevel     = "log-level"
	generalFlagPrecision    = "precision"
	generalFlagWidth        = "width"
	generalFlagFormatConfig = "format-config"

	// Command flags.
	flagFrom     = "from"
	flagTo       = "to"
	flagQuat     = "quat"
	flagInverse  = "inverse"
	flagDegrees  = "degrees"
	flagPositive = "positive"
	flagSeed     = "seed"
	flagCount    = "count"
)

func frameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagFrom,
			Value: "NED",
			Usage: "frame the input is given in: NED, ENU or NWU",
		},
		&cli.StringFlag{
			Name:  flagTo,
			Value: "NED",
			Usage: "frame to convert the input to: NED, ENU or NWU",
		},
	}
}

func degreesFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    flagDegrees,
		Aliases: []string{"deg"},
		Usage:   "read and print angles in degrees instead of radians",
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut. Commands log through logger, whose level is set from the flags.
// Run returns every error instead of exiting, so the caller owns the exit code.
func NewApp(out, errOut io.Writer, logger logging.Logger) *cli.App {
	return &cli.App{
		Name:            "lobster",
		Usage:           "convert and inspect vectors, quaternions and durations",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Metadata:        map[string]interface{}{metadataLogger: logger},
		ExitErrHandler:  func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging, same as --log-level debug",
			},
			&cli.StringFlag{
				Name:  generalFlagLogLevel,
				Value: "info",
				Usage: "minimum level to log: debug, info, warn or error",
			},
			&cli.IntFlag{
				Name:  generalFlagPrecision,
				Value: -1,
				Usage: "digits after the decimal point, -1 for the shortest exact representation",
			},
			&cli.IntFlag{
				Name:  generalFlagWidth,
				Usage: "minimum width of every printed number",
			},
			&cli.PathFlag{
				Name:      generalFlagFormatConfig,
				Usage:     "load the display format from a YAML `FILE`",
				TakesFile: true,
			},
		},
		Before: BeforeAction,
		After:  AfterAction,
		Commands: []*cli.Command{
			{
				Name:            "vector",
				Aliases:         []string{"vec"},
				Usage:           "work with 3 dimensional vectors",
				HideHelpCommand: true,
				Subcommands: []*cli.Command{
					{
						Name:      "convert",
						Usage:     "convert a vector between frames",
						ArgsUsage: "<x> <y> <z>",
						Flags:     frameFlags(),
						Action:    VectorConvertAction,
					},
					{
						Name:      "rotate",
						Usage:     "rotate a vector by a quaternion",
						ArgsUsage: "<x> <y> <z>",
						Flags: []cli.Flag{
							&cli.Float64SliceFlag{
								Name:     flagQuat,
								Aliases:  []string{"q"},
								Usage:    "rotation as comma separated x,y,z,w",
								Required: true,
							},
							&cli.BoolFlag{
								Name:  flagInverse,
								Usage: "apply the inverse rotation",
							},
						},
						Action: VectorRotateAction,
					},
				},
			},
			{
				Name:            "quat",
				Aliases:         []string{"quaternion"},
				Usage:           "work with quaternions",
				HideHelpCommand: true,
				Subcommands: []*cli.Command{
					{
						Name:      "convert",
						Usage:     "convert a quaternion between frames",
						ArgsUsage: "<x> <y> <z> <w>",
						Flags:     frameFlags(),
						Action:    QuatConvertAction,
					},
					{
						Name:      "from-euler",
						Usage:     "build a unit quaternion from Euler angles",
						ArgsUsage: "<x> <y> <z>",
						Flags:     []cli.Flag{degreesFlag()},
						Action:    QuatFromEulerAction,
					},
					{
						Name:      "to-euler",
						Usage:     "print the Euler angles of a quaternion",
						ArgsUsage: "<x> <y> <z> <w>",
						Flags: []cli.Flag{
							degreesFlag(),
							&cli.BoolFlag{
								Name:  flagPositive,
								Usage: "wrap every angle into [0, 2π) instead of (-π, π]",
							},
						},
						Action: QuatToEulerAction,
					},
					{
						Name:      "matrix",
						Usage:     "print the rotation matrix of a quaternion",
						ArgsUsage: "<x> <y> <z> <w>",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  flagInverse,
								Usage: "print the inverse rotation matrix",
							},
						},
						Action: QuatMatrixAction,
					},
					{
						Name:      "multiply",
						Usage:     "print the Hamilton product of two quaternions",
						ArgsUsage: "<x1> <y1> <z1> <w1> <x2> <y2> <z2> <w2>",
						Action:    QuatMultiplyAction,
					},
					{
						Name:  "random",
						Usage: "sample uniformly distributed unit quaternions",
						Flags: []cli.Flag{
							&cli.Uint64Flag{
								Name:  flagSeed,
								Usage: "seed for reproducible samples",
							},
							&cli.IntFlag{
								Name:  flagCount,
								Value: 1,
								Usage: "number of quaternions to print",
							},
						},
						Action: QuatRandomAction,
					},
				},
			},
			{
				Name:            "duration",
				Usage:           "work with durations",
				HideHelpCommand: true,
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "add durations such as 30s, 500ms, 42us or 7ns",
						ArgsUsage: "<duration> [<duration>...]",
						Action:    DurationAddAction,
					},
				},
			},
		},
	}
}
