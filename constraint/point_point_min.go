package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// PointPointMin constrains the distance from a body-frame robot point
// (rotated and translated into the field frame by the current pose) to a
// fixed field point to be >= DMin.
type PointPointMin struct {
	RobotPoint geom2d.Translation2d
	FieldPoint geom2d.Translation2d
	DMin       float64
}

var _ Constraint = (*PointPointMin)(nil)

func (*PointPointMin) sealed() {}

// NewPointPointMin validates dMin >= 0 at construction.
func NewPointPointMin(robotX, robotY, fieldX, fieldY, dMin float64) (*PointPointMin, error) {
	if dMin < 0 {
		return nil, errors.Errorf("constraint: PointPointMin: dMin must be >= 0, got %v", dMin)
	}
	return &PointPointMin{
		RobotPoint: geom2d.Translation2d{X: robotX, Y: robotY},
		FieldPoint: geom2d.Translation2d{X: fieldX, Y: fieldY},
		DMin:       dMin,
	}, nil
}

func (c *PointPointMin) worldRobotPoint(k Kinematics) geom2d.Translation2Expr {
	robot := geom2d.ConstTranslation2Expr(c.RobotPoint)
	return k.Pose.Translation.Add(robot.RotateBy(k.Pose.Rotation))
}

// Apply emits ||worldRobotPoint - FieldPoint||^2 >= DMin^2.
func (c *PointPointMin) Apply(p *solve.Problem, k Kinematics) {
	field := geom2d.ConstTranslation2Expr(c.FieldPoint)
	diff := c.worldRobotPoint(k).Sub(field)
	p.SubjectToGE(diff.SquaredNorm().AddC(-c.DMin * c.DMin))
}
