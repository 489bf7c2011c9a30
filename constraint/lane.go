package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// Lane constrains a body-frame robot point to stay within Tolerance of a
// fixed field centerline, compiling into one On PointLineRegion when
// Tolerance == 0, or two offset ABOVE/BELOW PointLineRegions otherwise.
// The compiled sub-constraints are built once at construction, since the
// centerline geometry is entirely constant data (spec §4.2).
type Lane struct {
	RobotPoint      geom2d.Translation2d
	CenterLineStart geom2d.Translation2d
	CenterLineEnd   geom2d.Translation2d
	Tolerance       float64
	compiled        []*PointLineRegion
}

var _ Constraint = (*Lane)(nil)

func (*Lane) sealed() {}

// NewLane validates tolerance >= 0 and compiles the offset regions.
func NewLane(robotX, robotY, startX, startY, endX, endY, tolerance float64) (*Lane, error) {
	if tolerance < 0 {
		return nil, errors.Errorf("constraint: Lane: tolerance must be >= 0, got %v", tolerance)
	}
	l := &Lane{
		RobotPoint:      geom2d.Translation2d{X: robotX, Y: robotY},
		CenterLineStart: geom2d.Translation2d{X: startX, Y: startY},
		CenterLineEnd:   geom2d.Translation2d{X: endX, Y: endY},
		Tolerance:       tolerance,
	}
	l.compile()
	return l, nil
}

func (c *Lane) compile() {
	rx, ry := c.RobotPoint.X, c.RobotPoint.Y
	if c.Tolerance == 0 {
		c.compiled = []*PointLineRegion{
			NewPointLineRegion(rx, ry, c.CenterLineStart.X, c.CenterLineStart.Y, c.CenterLineEnd.X, c.CenterLineEnd.Y, On),
		}
		return
	}
	direction := c.CenterLineEnd.Sub(c.CenterLineStart)
	norm := direction.Norm()
	perp := geom2d.Translation2d{X: -direction.Y / norm, Y: direction.X / norm}
	offset := perp.Mul(c.Tolerance)

	aboveStart := c.CenterLineStart.Add(offset)
	aboveEnd := c.CenterLineEnd.Add(offset)
	belowStart := c.CenterLineStart.Sub(offset)
	belowEnd := c.CenterLineEnd.Sub(offset)

	c.compiled = []*PointLineRegion{
		NewPointLineRegion(rx, ry, aboveStart.X, aboveStart.Y, aboveEnd.X, aboveEnd.Y, Below),
		NewPointLineRegion(rx, ry, belowStart.X, belowStart.Y, belowEnd.X, belowEnd.Y, Above),
	}
}

// Apply delegates to the compiled PointLineRegion sub-constraints.
func (c *Lane) Apply(p *solve.Problem, k Kinematics) {
	for _, sub := range c.compiled {
		sub.Apply(p, k)
	}
}
