package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// AngularVelocityMaxMagnitude bounds -OmegaMax <= omega <= OmegaMax, or
// forces omega == 0 when OmegaMax == 0.
type AngularVelocityMaxMagnitude struct {
	OmegaMax float64
}

var _ Constraint = (*AngularVelocityMaxMagnitude)(nil)

func (*AngularVelocityMaxMagnitude) sealed() {}

// NewAngularVelocityMaxMagnitude validates omegaMax >= 0 at construction.
func NewAngularVelocityMaxMagnitude(omegaMax float64) (*AngularVelocityMaxMagnitude, error) {
	if omegaMax < 0 {
		return nil, errors.Errorf("constraint: AngularVelocityMaxMagnitude: omegaMax must be >= 0, got %v", omegaMax)
	}
	return &AngularVelocityMaxMagnitude{OmegaMax: omegaMax}, nil
}

// Apply emits omega == 0 when OmegaMax == 0, else the symmetric bound.
func (c *AngularVelocityMaxMagnitude) Apply(p *solve.Problem, k Kinematics) {
	if c.OmegaMax == 0 {
		p.SubjectToEq(k.AngularVel)
		return
	}
	p.SubjectToLE(k.AngularVel.AddC(-c.OmegaMax))
	p.SubjectToGE(k.AngularVel.AddC(c.OmegaMax))
}
