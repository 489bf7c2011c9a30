// Package spline implements the cubic-Hermite spline family trajopt's
// initial-guess engine fits through waypoint guess points: a 1D scalar
// spline, its 2D (translation) composition, and a pose variant that chains
// heading continuously across a path (§4.4, §9's "spline module boundary"
// note).
package spline

// CubicHermiteSpline1D is a single cubic polynomial segment fit to a
// position/velocity pair at t=0 and another at t=1.
type CubicHermiteSpline1D struct {
	a, b, c, d float64
}

// NewCubicHermiteSpline1D builds the spline through (p0, v0) at t=0 and
// (p1, v1) at t=1.
func NewCubicHermiteSpline1D(p0, p1, v0, v1 float64) CubicHermiteSpline1D {
	return CubicHermiteSpline1D{
		a: v0 + v1 + 2*p0 - 2*p1,
		b: -2*v0 - v1 - 3*p0 + 3*p1,
		c: v0,
		d: p0,
	}
}

// Position returns the position at t.
func (s CubicHermiteSpline1D) Position(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return s.a*t3 + s.b*t2 + s.c*t + s.d
}

// Velocity returns the velocity (first derivative) at t.
func (s CubicHermiteSpline1D) Velocity(t float64) float64 {
	return 3*s.a*t*t + 2*s.b*t + s.c
}

// Acceleration returns the acceleration (second derivative) at t.
func (s CubicHermiteSpline1D) Acceleration(t float64) float64 {
	return 6*s.a*t + 2*s.b
}
