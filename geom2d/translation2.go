// Package geom2d implements the 2D translation/rotation/pose algebra of
// trajopt_util's geometry module, in two parallel families: the concrete
// float64 family in this file set, and the autodiff.Expr family in the
// *_expr.go files, per the "duplicate modules per scalar family" guidance
// for languages without zero-cost numeric generics.
package geom2d

import "math"

// zeroNormEpsilon is the threshold below which a translation's angle is
// considered undefined; Angle() falls back to Rotation2d{1, 0} below it.
const zeroNormEpsilon = 1e-6

// Translation2d is a 2D vector in meters.
type Translation2d struct {
	X, Y float64
}

// Add returns t + o.
func (t Translation2d) Add(o Translation2d) Translation2d {
	return Translation2d{t.X + o.X, t.Y + o.Y}
}

// Sub returns t - o.
func (t Translation2d) Sub(o Translation2d) Translation2d {
	return Translation2d{t.X - o.X, t.Y - o.Y}
}

// Neg returns -t.
func (t Translation2d) Neg() Translation2d {
	return Translation2d{-t.X, -t.Y}
}

// Mul returns t scaled by k.
func (t Translation2d) Mul(k float64) Translation2d {
	return Translation2d{t.X * k, t.Y * k}
}

// Div returns t scaled by 1/k.
func (t Translation2d) Div(k float64) Translation2d {
	return Translation2d{t.X / k, t.Y / k}
}

// Dot returns the scalar dot product t . o.
func (t Translation2d) Dot(o Translation2d) float64 {
	return t.X*o.X + t.Y*o.Y
}

// Cross returns the scalar 2D cross product t.x*o.y - t.y*o.x.
func (t Translation2d) Cross(o Translation2d) float64 {
	return t.X*o.Y - t.Y*o.X
}

// SquaredNorm returns ||t||^2.
func (t Translation2d) SquaredNorm() float64 {
	return t.X*t.X + t.Y*t.Y
}

// Norm returns ||t||.
func (t Translation2d) Norm() float64 {
	return math.Hypot(t.X, t.Y)
}

// Distance returns ||t - o||.
func (t Translation2d) Distance(o Translation2d) float64 {
	return t.Sub(o).Norm()
}

// Angle returns the direction of t as a Rotation2d, falling back to the
// identity rotation (1, 0) when t's norm is below zeroNormEpsilon — a
// translation with zero norm has an undefined angle.
func (t Translation2d) Angle() Rotation2d {
	if t.Norm() < zeroNormEpsilon {
		return Rotation2d{Cos: 1, Sin: 0}
	}
	n := t.Norm()
	return Rotation2d{Cos: t.X / n, Sin: t.Y / n}
}

// RotateBy returns t rotated by r.
func (t Translation2d) RotateBy(r Rotation2d) Translation2d {
	return Translation2d{
		X: t.X*r.Cos - t.Y*r.Sin,
		Y: t.X*r.Sin + t.Y*r.Cos,
	}
}
