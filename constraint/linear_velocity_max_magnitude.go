package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// LinearVelocityMaxMagnitude bounds ||v|| <= VMax, or forces v == 0 when
// VMax == 0.
type LinearVelocityMaxMagnitude struct {
	VMax float64
}

var _ Constraint = (*LinearVelocityMaxMagnitude)(nil)

func (*LinearVelocityMaxMagnitude) sealed() {}

// NewLinearVelocityMaxMagnitude validates vMax >= 0 at construction, per
// §7's "usage errors at build time" requirement for every constraint with a
// positive magnitude argument.
func NewLinearVelocityMaxMagnitude(vMax float64) (*LinearVelocityMaxMagnitude, error) {
	if vMax < 0 {
		return nil, errors.Errorf("constraint: LinearVelocityMaxMagnitude: vMax must be >= 0, got %v", vMax)
	}
	return &LinearVelocityMaxMagnitude{VMax: vMax}, nil
}

// Apply emits v.x == 0 && v.y == 0 when VMax == 0, else ||v||^2 <= VMax^2.
func (c *LinearVelocityMaxMagnitude) Apply(p *solve.Problem, k Kinematics) {
	if c.VMax == 0 {
		p.SubjectToEq(k.LinearVel.X)
		p.SubjectToEq(k.LinearVel.Y)
		return
	}
	residual := k.LinearVel.SquaredNorm().AddC(-c.VMax * c.VMax)
	p.SubjectToLE(residual)
}
