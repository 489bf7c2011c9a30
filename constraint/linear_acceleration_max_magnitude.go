package constraint

import (
	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// LinearAccelerationMaxMagnitude bounds ||a|| <= AMax, or forces a == 0
// when AMax == 0.
type LinearAccelerationMaxMagnitude struct {
	AMax float64
}

var _ Constraint = (*LinearAccelerationMaxMagnitude)(nil)

func (*LinearAccelerationMaxMagnitude) sealed() {}

// NewLinearAccelerationMaxMagnitude validates aMax >= 0 at construction.
func NewLinearAccelerationMaxMagnitude(aMax float64) (*LinearAccelerationMaxMagnitude, error) {
	if aMax < 0 {
		return nil, errors.Errorf("constraint: LinearAccelerationMaxMagnitude: aMax must be >= 0, got %v", aMax)
	}
	return &LinearAccelerationMaxMagnitude{AMax: aMax}, nil
}

// Apply emits a.x == 0 && a.y == 0 when AMax == 0, else ||a||^2 <= AMax^2.
func (c *LinearAccelerationMaxMagnitude) Apply(p *solve.Problem, k Kinematics) {
	if c.AMax == 0 {
		p.SubjectToEq(k.LinearAcc.X)
		p.SubjectToEq(k.LinearAcc.Y)
		return
	}
	p.SubjectToLE(k.LinearAcc.SquaredNorm().AddC(-c.AMax * c.AMax))
}
