package spline

import "github.com/SleipnirGroup/Choreo-sub000/geom2d"

// PoseSplineHolonomic pairs a 2D translation spline piece with a heading
// that is fit independently, as its own 1D cubic Hermite spline sweeping
// the short arc from r0 to r1. Used for the swerve initial guess, one per
// translation spline piece, so heading chains smoothly from each waypoint
// to the next without ever taking the long way around.
type PoseSplineHolonomic struct {
	translation CubicHermiteSpline
	theta       CubicHermiteSpline1D
	r0          geom2d.Rotation2d
}

// NewPoseSplineHolonomic builds a pose spline from translation control
// vectors and the rotations to interpolate between.
func NewPoseSplineHolonomic(x0, x1, y0, y1 ControlVector, r0, r1 geom2d.Rotation2d) PoseSplineHolonomic {
	return PoseSplineHolonomic{
		translation: NewCubicHermiteSpline(x0, x1, y0, y1),
		theta:       NewCubicHermiteSpline1D(0, HeadingDelta(r0, r1), 0, 0),
		r0:          r0,
	}
}

// NewPoseSplineHolonomicFromSpline pairs an already-built translation spline
// piece with a chained heading between r0 and r1, mirroring the original's
// overload that adapts a spline fit elsewhere (e.g. one piece of a
// multi-point chain) instead of raw control vectors.
func NewPoseSplineHolonomicFromSpline(translation CubicHermiteSpline, r0, r1 geom2d.Rotation2d) PoseSplineHolonomic {
	return PoseSplineHolonomic{
		translation: translation,
		theta:       NewCubicHermiteSpline1D(0, HeadingDelta(r0, r1), 0, 0),
		r0:          r0,
	}
}

// HeadingDelta returns the short-arc angle (radians) from r0 to r1, the
// quantity a 1D heading spline is built from: (-r0).rotate_by(r1) in the
// original's notation.
func HeadingDelta(r0, r1 geom2d.Rotation2d) float64 {
	return r0.Inverse().RotateBy(r1).Radians()
}

// Translation returns the translation spline's position and curvature at t.
func (s PoseSplineHolonomic) Translation(t float64) (geom2d.Translation2d, float64) {
	return s.translation.Point(t)
}

// TranslationVelocity returns the translational velocity at t.
func (s PoseSplineHolonomic) TranslationVelocity(t float64) geom2d.Translation2d {
	return s.translation.Velocity(t)
}

// TranslationAcceleration returns the translational acceleration at t.
func (s PoseSplineHolonomic) TranslationAcceleration(t float64) geom2d.Translation2d {
	return s.translation.Acceleration(t)
}

// Heading returns the heading at t.
func (s PoseSplineHolonomic) Heading(t float64) geom2d.Rotation2d {
	return s.r0.RotateBy(geom2d.NewRotation2d(s.theta.Position(t)))
}

// HeadingRate returns the heading's angular rate at t.
func (s PoseSplineHolonomic) HeadingRate(t float64) float64 {
	return s.theta.Velocity(t)
}

// Pose returns the full pose at t.
func (s PoseSplineHolonomic) Pose(t float64) geom2d.Pose2d {
	translation, _ := s.Translation(t)
	return geom2d.Pose2d{Translation: translation, Rotation: s.Heading(t)}
}
