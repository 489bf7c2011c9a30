package constraint

import (
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// PoseEquality constrains pose == target exactly (translation and heading).
type PoseEquality struct {
	Target geom2d.Pose2d
}

var _ Constraint = (*PoseEquality)(nil)

func (*PoseEquality) sealed() {}

// NewPoseEquality builds a PoseEquality constraint for the given field-frame
// target pose.
func NewPoseEquality(x, y, headingRadians float64) *PoseEquality {
	return &PoseEquality{Target: geom2d.NewPose2d(x, y, headingRadians)}
}

// Apply emits x == target.x, y == target.y, and the angle-equality +
// unit-vector pair (§4.1) for heading equality on the manifold.
func (c *PoseEquality) Apply(p *solve.Problem, k Kinematics) {
	target := geom2d.ConstPose2Expr(c.Target)
	p.SubjectToEq(k.Pose.Translation.X.Sub(target.Translation.X))
	p.SubjectToEq(k.Pose.Translation.Y.Sub(target.Translation.Y))
	p.SubjectToEq(geom2d.AngleEqualityResidual(k.Pose.Rotation, target.Rotation))
	p.SubjectToEq(k.Pose.Rotation.UnitCircleResidual())
}
