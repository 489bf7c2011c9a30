// Package constraint implements the closed family of 13 constraint types of
// spec §4.2. Each constraint is a value object that knows how to emit its
// own NLP equalities/inequalities given the pose/twist/acceleration
// expressions at the sample it is applied to. The family is closed: every
// member satisfies the sealed Constraint interface, checked at compile
// time via a `var _ Constraint = (*T)(nil)` assertion alongside each type,
// rather than relying on a runtime type switch (spec Design Notes §9:
// "tagged variant ... not dynamic inheritance").
package constraint

import (
	"github.com/SleipnirGroup/Choreo-sub000/autodiff"
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// Kinematics bundles the symbolic pose/twist/acceleration state a
// constraint is applied against at one sample.
type Kinematics struct {
	Pose       geom2d.Pose2Expr
	LinearVel  geom2d.Translation2Expr
	AngularVel autodiff.Sym
	LinearAcc  geom2d.Translation2Expr
	AngularAcc autodiff.Sym
}

// Constraint is the sealed capability every constraint family member must
// satisfy. sealed is unexported so no type outside this package can
// implement Constraint, which is how the "closed family" invariant is
// enforced at compile time.
type Constraint interface {
	Apply(p *solve.Problem, k Kinematics)
	sealed()
}
