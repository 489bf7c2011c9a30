package constraint

import (
	"math"

	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// PointAt constrains the robot heading to point at (or away from, if Flip)
// FieldPoint within HeadingTolerance radians.
type PointAt struct {
	FieldPoint       geom2d.Translation2d
	HeadingTolerance float64
	Flip             bool
}

var _ Constraint = (*PointAt)(nil)

func (*PointAt) sealed() {}

// NewPointAt validates headingTolerance >= 0 at construction.
func NewPointAt(fieldX, fieldY, headingTolerance float64, flip bool) (*PointAt, error) {
	if headingTolerance < 0 {
		return nil, errors.Errorf("constraint: PointAt: headingTolerance must be >= 0, got %v", headingTolerance)
	}
	return &PointAt{
		FieldPoint:       geom2d.Translation2d{X: fieldX, Y: fieldY},
		HeadingTolerance: headingTolerance,
		Flip:             flip,
	}, nil
}

// Apply emits dot >= cos(tol)*||d|| (or dot <= -cos(tol)*||d|| if Flip),
// where d = FieldPoint - pose.translation and dot = cosθ*d.x + sinθ*d.y.
func (c *PointAt) Apply(p *solve.Problem, k Kinematics) {
	field := geom2d.ConstTranslation2Expr(c.FieldPoint)
	d := field.Sub(k.Pose.Translation)
	dot := k.Pose.Rotation.Cos.Mul(d.X).Add(k.Pose.Rotation.Sin.Mul(d.Y))
	cosTol := math.Cos(c.HeadingTolerance)
	bound := d.Norm().Scale(cosTol)
	if !c.Flip {
		p.SubjectToGE(dot.Sub(bound))
	} else {
		p.SubjectToLE(dot.Add(bound))
	}
}
