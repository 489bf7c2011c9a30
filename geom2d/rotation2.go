package geom2d

import "math"

// Rotation2d stores a 2D rotation as (cos, sin), never a bare angle, and is
// always kept normalized to the unit circle for concrete values.
type Rotation2d struct {
	Cos, Sin float64
}

// NewRotation2d builds a Rotation2d from an angle in radians.
func NewRotation2d(radians float64) Rotation2d {
	return Rotation2d{Cos: math.Cos(radians), Sin: math.Sin(radians)}
}

// Radians returns the angle this rotation represents, in (-pi, pi].
func (r Rotation2d) Radians() float64 {
	return math.Atan2(r.Sin, r.Cos)
}

// Add composes two rotations (angle addition via the sum-of-angles
// identity expressed on cos/sin directly).
func (r Rotation2d) Add(o Rotation2d) Rotation2d {
	return Rotation2d{
		Cos: r.Cos*o.Cos - r.Sin*o.Sin,
		Sin: r.Cos*o.Sin + r.Sin*o.Cos,
	}
}

// Sub returns r composed with the inverse of o.
func (r Rotation2d) Sub(o Rotation2d) Rotation2d {
	return r.Add(o.Inverse())
}

// Inverse returns the rotation by -angle.
func (r Rotation2d) Inverse() Rotation2d {
	return Rotation2d{Cos: r.Cos, Sin: -r.Sin}
}

// RotateBy is an alias of Add kept for readability at call sites that
// compose a heading change rather than "add" two rotations conceptually.
func (r Rotation2d) RotateBy(o Rotation2d) Rotation2d {
	return r.Add(o)
}
