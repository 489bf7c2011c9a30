package constraint

import (
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// Side is which half-plane of a field line a PointLineRegion constrains a
// robot point to.
type Side int

const (
	// Above requires the cross product to be > 0.
	Above Side = iota
	// Below requires the cross product to be < 0.
	Below
	// On requires the cross product to be == 0.
	On
)

// PointLineRegion constrains a body-frame robot point, transformed into the
// world frame, to lie on one side of a fixed field line using the sign of
// the 2D cross product of the line direction and the vector from the line
// start to the robot point.
type PointLineRegion struct {
	RobotPoint     geom2d.Translation2d
	FieldLineStart geom2d.Translation2d
	FieldLineEnd   geom2d.Translation2d
	Side           Side
}

var _ Constraint = (*PointLineRegion)(nil)

func (*PointLineRegion) sealed() {}

// NewPointLineRegion builds a PointLineRegion constraint.
func NewPointLineRegion(robotX, robotY, startX, startY, endX, endY float64, side Side) *PointLineRegion {
	return &PointLineRegion{
		RobotPoint:     geom2d.Translation2d{X: robotX, Y: robotY},
		FieldLineStart: geom2d.Translation2d{X: startX, Y: startY},
		FieldLineEnd:   geom2d.Translation2d{X: endX, Y: endY},
		Side:           side,
	}
}

// Apply emits the half-plane inequality (or equality, for On) on the cross
// product of the line direction and (robotPoint - lineStart).
func (c *PointLineRegion) Apply(p *solve.Problem, k Kinematics) {
	robot := geom2d.ConstTranslation2Expr(c.RobotPoint)
	worldPoint := k.Pose.Translation.Add(robot.RotateBy(k.Pose.Rotation))
	start := geom2d.ConstTranslation2Expr(c.FieldLineStart)
	end := geom2d.ConstTranslation2Expr(c.FieldLineEnd)

	direction := end.Sub(start)
	toPoint := worldPoint.Sub(start)
	cross := direction.Cross(toPoint)

	switch c.Side {
	case Above:
		p.SubjectToGE(cross)
	case Below:
		p.SubjectToLE(cross)
	case On:
		p.SubjectToEq(cross)
	}
}
