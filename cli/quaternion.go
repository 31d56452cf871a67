package cli

import (
	"math/rand/v2"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/lobster-robotics/common/spatialmath"
	"github.com/lobster-robotics/common/utils"
)

// QuatConvertAction converts a quaternion between frames.
func QuatConvertAction(c *cli.Context) error {
	q, err := quaternionArgs(c)
	if err != nil {
		return err
	}
	from, to, err := parseFrameFlags(c)
	if err != nil {
		return err
	}
	converted, err := spatialmath.ConvertQuaternion(q, from, to)
	if err != nil {
		return err
	}
	loggerFromContext(c).Sublogger("quat").Debugw("converted quaternion", "from", from.String(), "to", to.String())
	printf(c.App.Writer, "%s", render(c, converted))
	return nil
}

// QuatFromEulerAction prints the unit quaternion of a set of Euler angles.
func QuatFromEulerAction(c *cli.Context) error {
	angles, err := vectorArgs(c)
	if err != nil {
		return err
	}
	if c.Bool(flagDegrees) {
		angles = spatialmath.NewVector3(
			utils.DegToRad(angles.X()),
			utils.DegToRad(angles.Y()),
			utils.DegToRad(angles.Z()),
		)
	}
	q, err := spatialmath.QuaternionFromEuler(angles)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", render(c, q))
	return nil
}

// QuatToEulerAction prints the Euler angles of a quaternion.
func QuatToEulerAction(c *cli.Context) error {
	q, err := quaternionArgs(c)
	if err != nil {
		return err
	}
	angles, err := q.ToEuler()
	if err != nil {
		return err
	}
	if c.Bool(flagPositive) {
		angles = spatialmath.NewVector3(
			utils.ModAngRad(angles.X()),
			utils.ModAngRad(angles.Y()),
			utils.ModAngRad(angles.Z()),
		)
	}
	if c.Bool(flagDegrees) {
		angles = spatialmath.NewVector3(
			utils.RadToDeg(angles.X()),
			utils.RadToDeg(angles.Y()),
			utils.RadToDeg(angles.Z()),
		)
	}
	printf(c.App.Writer, "%s", render(c, angles))
	return nil
}

// QuatMatrixAction prints the rotation matrix of a quaternion as a table.
func QuatMatrixAction(c *cli.Context) error {
	q, err := quaternionArgs(c)
	if err != nil {
		return err
	}
	if c.Bool(flagInverse) {
		m, err := q.InverseRotationMatrix()
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%s", matrixTable(c, m))
		return nil
	}
	m, err := q.RotationMatrix()
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", matrixTable(c, m))
	return nil
}

func matrixTable(c *cli.Context, m mat.Matrix) string {
	rows, cols := m.Dims()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"", "x", "y", "z"})
	for i, name := range []string{"x", "y", "z"}[:rows] {
		row := table.Row{name}
		for j := 0; j < cols; j++ {
			row = append(row, renderFloat(c, m.At(i, j)))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// QuatMultiplyAction prints the Hamilton product of two quaternions.
func QuatMultiplyAction(c *cli.Context) error {
	values, err := floatArgs(c, 8)
	if err != nil {
		return err
	}
	chunks := lo.Chunk(values, 4)
	lhs, err := spatialmath.NewQuaternion(chunks[0])
	if err != nil {
		return err
	}
	rhs, err := spatialmath.NewQuaternion(chunks[1])
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", render(c, lhs.Multiply(rhs)))
	return nil
}

// QuatRandomAction prints uniformly distributed unit quaternions.
func QuatRandomAction(c *cli.Context) error {
	count := c.Int(flagCount)
	if count < 1 {
		return errors.Errorf("--%s must be at least 1 but got %d", flagCount, count)
	}

	var src rand.Source
	if c.IsSet(flagSeed) {
		seed := c.Uint64(flagSeed)
		src = rand.NewPCG(seed, seed)
	}
	loggerFromContext(c).Sublogger("quat").Debugw("sampling quaternions", "count", count, "seeded", src != nil)
	for i := 0; i < count; i++ {
		printf(c.App.Writer, "%s", render(c, spatialmath.RandomQuaternion(src)))
	}
	return nil
}
