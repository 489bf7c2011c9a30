package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// PointPointMax is the symmetric counterpart of PointPointMin: it bounds
// the distance from a body-frame robot point to a fixed field point to be
// <= DMax. Its header was not directly retrievable from original_source
// (see SPEC_FULL.md §4.2), but its semantics follow directly from mirroring
// PointPointMin's Min/Max pairing, the same pattern used by
// LinearVelocityMaxMagnitude/AngularVelocityMaxMagnitude.
type PointPointMax struct {
	RobotPoint geom2d.Translation2d
	FieldPoint geom2d.Translation2d
	DMax       float64
}

var _ Constraint = (*PointPointMax)(nil)

func (*PointPointMax) sealed() {}

// NewPointPointMax validates dMax >= 0 at construction.
func NewPointPointMax(robotX, robotY, fieldX, fieldY, dMax float64) (*PointPointMax, error) {
	if dMax < 0 {
		return nil, errors.Errorf("constraint: PointPointMax: dMax must be >= 0, got %v", dMax)
	}
	return &PointPointMax{
		RobotPoint: geom2d.Translation2d{X: robotX, Y: robotY},
		FieldPoint: geom2d.Translation2d{X: fieldX, Y: fieldY},
		DMax:       dMax,
	}, nil
}

// Apply emits ||worldRobotPoint - FieldPoint||^2 <= DMax^2.
func (c *PointPointMax) Apply(p *solve.Problem, k Kinematics) {
	robot := geom2d.ConstTranslation2Expr(c.RobotPoint)
	world := k.Pose.Translation.Add(robot.RotateBy(k.Pose.Rotation))
	field := geom2d.ConstTranslation2Expr(c.FieldPoint)
	diff := world.Sub(field)
	p.SubjectToLE(diff.SquaredNorm().AddC(-c.DMax * c.DMax))
}
