package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// PointLine is the symmetric role of LinePoint: a body-frame robot point
// must stay >= DMin from a fixed field-frame line segment.
type PointLine struct {
	RobotPoint     geom2d.Translation2d
	FieldLineStart geom2d.Translation2d
	FieldLineEnd   geom2d.Translation2d
	DMin           float64
}

var _ Constraint = (*PointLine)(nil)

func (*PointLine) sealed() {}

// NewPointLine validates dMin >= 0 at construction.
func NewPointLine(robotX, robotY, startX, startY, endX, endY, dMin float64) (*PointLine, error) {
	if dMin < 0 {
		return nil, errors.Errorf("constraint: PointLine: dMin must be >= 0, got %v", dMin)
	}
	return &PointLine{
		RobotPoint:     geom2d.Translation2d{X: robotX, Y: robotY},
		FieldLineStart: geom2d.Translation2d{X: startX, Y: startY},
		FieldLineEnd:   geom2d.Translation2d{X: endX, Y: endY},
		DMin:           dMin,
	}, nil
}

// Apply emits squaredDistance(worldRobotPoint, FieldLine) >= DMin^2.
func (c *PointLine) Apply(p *solve.Problem, k Kinematics) {
	robot := geom2d.ConstTranslation2Expr(c.RobotPoint)
	worldPoint := k.Pose.Translation.Add(robot.RotateBy(k.Pose.Rotation))
	start := geom2d.ConstTranslation2Expr(c.FieldLineStart)
	end := geom2d.ConstTranslation2Expr(c.FieldLineEnd)

	distSq := squaredPointSegmentDistance(start, end, worldPoint)
	p.SubjectToGE(distSq.AddC(-c.DMin * c.DMin))
}
