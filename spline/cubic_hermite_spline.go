package spline

import (
	"math"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
)

// ControlVector is a position/velocity pair along one axis at a spline
// endpoint.
type ControlVector struct {
	Position float64
	Velocity float64
}

// CubicHermiteSpline is a 2D translation spline built from two independent
// 1D cubic Hermite splines, one per axis.
type CubicHermiteSpline struct {
	x, y CubicHermiteSpline1D
}

// NewCubicHermiteSpline builds the spline through the given X and Y control
// vectors.
func NewCubicHermiteSpline(x0, x1, y0, y1 ControlVector) CubicHermiteSpline {
	return CubicHermiteSpline{
		x: NewCubicHermiteSpline1D(x0.Position, x1.Position, x0.Velocity, x1.Velocity),
		y: NewCubicHermiteSpline1D(y0.Position, y1.Position, y0.Velocity, y1.Velocity),
	}
}

// Point returns the position and signed curvature at t.
func (s CubicHermiteSpline) Point(t float64) (geom2d.Translation2d, float64) {
	pos := geom2d.Translation2d{X: s.x.Position(t), Y: s.y.Position(t)}
	dx, dy := s.x.Velocity(t), s.y.Velocity(t)
	ddx, ddy := s.x.Acceleration(t), s.y.Acceleration(t)
	denom := math.Pow(dx*dx+dy*dy, 1.5)
	if denom < 1e-9 {
		return pos, 0
	}
	return pos, (dx*ddy - dy*ddx) / denom
}

// Velocity returns the translational velocity at t.
func (s CubicHermiteSpline) Velocity(t float64) geom2d.Translation2d {
	return geom2d.Translation2d{X: s.x.Velocity(t), Y: s.y.Velocity(t)}
}

// Acceleration returns the translational acceleration at t.
func (s CubicHermiteSpline) Acceleration(t float64) geom2d.Translation2d {
	return geom2d.Translation2d{X: s.x.Acceleration(t), Y: s.y.Acceleration(t)}
}

// Heading returns the direction of travel at t, falling back to the
// identity rotation when the spline is momentarily stopped.
func (s CubicHermiteSpline) Heading(t float64) geom2d.Rotation2d {
	return s.Velocity(t).Angle()
}
