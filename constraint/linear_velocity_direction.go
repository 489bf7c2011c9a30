package constraint

import (
	"math"

	"github.com/SleipnirGroup/Choreo-sub000/autodiff"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// LinearVelocityDirection constrains the velocity vector to be parallel to
// the unit vector (cos(Heading), sin(Heading)): (v.u)^2 == ||v||^2.
type LinearVelocityDirection struct {
	Heading float64
}

var _ Constraint = (*LinearVelocityDirection)(nil)

func (*LinearVelocityDirection) sealed() {}

// NewLinearVelocityDirection builds a LinearVelocityDirection constraint.
func NewLinearVelocityDirection(headingRadians float64) *LinearVelocityDirection {
	return &LinearVelocityDirection{Heading: headingRadians}
}

// Apply emits (v . u)^2 == ||v||^2.
func (c *LinearVelocityDirection) Apply(p *solve.Problem, k Kinematics) {
	ux := autodiff.ConstSym(math.Cos(c.Heading))
	uy := autodiff.ConstSym(math.Sin(c.Heading))
	dot := k.LinearVel.X.Mul(ux).Add(k.LinearVel.Y.Mul(uy))
	p.SubjectToEq(dot.Square().Sub(k.LinearVel.SquaredNorm()))
}
