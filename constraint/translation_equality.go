package constraint

import (
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// TranslationEquality constrains pose.translation == target, leaving
// heading free.
type TranslationEquality struct {
	Target geom2d.Translation2d
}

var _ Constraint = (*TranslationEquality)(nil)

func (*TranslationEquality) sealed() {}

// NewTranslationEquality builds a TranslationEquality constraint.
func NewTranslationEquality(x, y float64) *TranslationEquality {
	return &TranslationEquality{Target: geom2d.Translation2d{X: x, Y: y}}
}

// Apply emits x == target.x, y == target.y.
func (c *TranslationEquality) Apply(p *solve.Problem, k Kinematics) {
	target := geom2d.ConstTranslation2Expr(c.Target)
	p.SubjectToEq(k.Pose.Translation.X.Sub(target.X))
	p.SubjectToEq(k.Pose.Translation.Y.Sub(target.Y))
}
