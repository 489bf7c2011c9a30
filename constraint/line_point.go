package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// LinePoint constrains the squared distance from a fixed field point to a
// body-frame line segment (transformed into the world frame by the
// current pose) to be >= DMin^2.
type LinePoint struct {
	RobotLineStart geom2d.Translation2d
	RobotLineEnd   geom2d.Translation2d
	FieldPoint     geom2d.Translation2d
	DMin           float64
}

var _ Constraint = (*LinePoint)(nil)

func (*LinePoint) sealed() {}

// NewLinePoint validates dMin >= 0 at construction.
func NewLinePoint(startX, startY, endX, endY, fieldX, fieldY, dMin float64) (*LinePoint, error) {
	if dMin < 0 {
		return nil, errors.Errorf("constraint: LinePoint: dMin must be >= 0, got %v", dMin)
	}
	return &LinePoint{
		RobotLineStart: geom2d.Translation2d{X: startX, Y: startY},
		RobotLineEnd:   geom2d.Translation2d{X: endX, Y: endY},
		FieldPoint:     geom2d.Translation2d{X: fieldX, Y: fieldY},
		DMin:           dMin,
	}, nil
}

// Apply emits squaredDistance(FieldPoint, worldLineSegment) >= DMin^2.
func (c *LinePoint) Apply(p *solve.Problem, k Kinematics) {
	start := geom2d.ConstTranslation2Expr(c.RobotLineStart)
	end := geom2d.ConstTranslation2Expr(c.RobotLineEnd)
	worldStart := k.Pose.Translation.Add(start.RotateBy(k.Pose.Rotation))
	worldEnd := k.Pose.Translation.Add(end.RotateBy(k.Pose.Rotation))
	field := geom2d.ConstTranslation2Expr(c.FieldPoint)

	distSq := squaredPointSegmentDistance(worldStart, worldEnd, field)
	p.SubjectToGE(distSq.AddC(-c.DMin * c.DMin))
}
