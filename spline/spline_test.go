package spline

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
)

func TestCubicHermiteSpline1DMatchesEndpoints(t *testing.T) {
	s := NewCubicHermiteSpline1D(1, 4, 2, -1)
	test.That(t, s.Position(0), test.ShouldAlmostEqual, 1.0)
	test.That(t, s.Position(1), test.ShouldAlmostEqual, 4.0)
	test.That(t, s.Velocity(0), test.ShouldAlmostEqual, 2.0)
	test.That(t, s.Velocity(1), test.ShouldAlmostEqual, -1.0)
}

func TestCubicHermiteSplineStraightLineHasZeroCurvature(t *testing.T) {
	s := NewCubicHermiteSpline(
		ControlVector{Position: 0, Velocity: 1},
		ControlVector{Position: 1, Velocity: 1},
		ControlVector{Position: 0, Velocity: 0},
		ControlVector{Position: 0, Velocity: 0},
	)
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		_, curvature := s.Point(tt)
		test.That(t, curvature, test.ShouldAlmostEqual, 0.0)
	}
}

func TestCubicHermiteSplineEndpointsMatchControlVectors(t *testing.T) {
	x0 := ControlVector{Position: 0, Velocity: 2}
	x1 := ControlVector{Position: 3, Velocity: 1}
	y0 := ControlVector{Position: 0, Velocity: 0}
	y1 := ControlVector{Position: 2, Velocity: 1}
	s := NewCubicHermiteSpline(x0, x1, y0, y1)

	start, _ := s.Point(0)
	end, _ := s.Point(1)
	test.That(t, start, test.ShouldResemble, geom2d.Translation2d{X: x0.Position, Y: y0.Position})
	test.That(t, end, test.ShouldResemble, geom2d.Translation2d{X: x1.Position, Y: y1.Position})

	startVel := s.Velocity(0)
	endVel := s.Velocity(1)
	test.That(t, startVel, test.ShouldResemble, geom2d.Translation2d{X: x0.Velocity, Y: y0.Velocity})
	test.That(t, endVel, test.ShouldResemble, geom2d.Translation2d{X: x1.Velocity, Y: y1.Velocity})
}

func TestPoseSplineHolonomicHeadingSweepsShortArc(t *testing.T) {
	r0 := geom2d.NewRotation2d(0)
	r1 := geom2d.NewRotation2d(math.Pi / 2)
	s := NewPoseSplineHolonomic(
		ControlVector{Position: 0, Velocity: 1}, ControlVector{Position: 1, Velocity: 1},
		ControlVector{Position: 0, Velocity: 0}, ControlVector{Position: 0, Velocity: 0},
		r0, r1,
	)
	test.That(t, s.Heading(0).Radians(), test.ShouldAlmostEqual, 0.0)
	test.That(t, s.Heading(1).Radians(), test.ShouldAlmostEqual, math.Pi/2)
}

func TestCubicControlVectorsFromWaypointsScalesByOnePointTwoTimesDistance(t *testing.T) {
	start := geom2d.NewPose2d(0, 0, 0)
	end := geom2d.NewPose2d(4, 0, 0)
	startVec, endVec := CubicControlVectorsFromWaypoints(start, nil, end)
	test.That(t, startVec.X.Velocity, test.ShouldAlmostEqual, 1.2*4.0)
	test.That(t, endVec.X.Velocity, test.ShouldAlmostEqual, 1.2*4.0)
}

func TestCubicSplinesFromControlVectorsNoInteriorReturnsOneSpline(t *testing.T) {
	start, end := CubicControlVectorsFromWaypoints(geom2d.NewPose2d(0, 0, 0), nil, geom2d.NewPose2d(1, 0, 0))
	splines := CubicSplinesFromControlVectors(start, nil, end)
	test.That(t, len(splines), test.ShouldEqual, 1)
}

func TestCubicSplinesFromControlVectorsOneInteriorReturnsTwoSplinesThroughIt(t *testing.T) {
	start, end := CubicControlVectorsFromWaypoints(geom2d.NewPose2d(0, 0, 0), []geom2d.Translation2d{{X: 1, Y: 0}}, geom2d.NewPose2d(2, 0, 0))
	splines := CubicSplinesFromControlVectors(start, []geom2d.Translation2d{{X: 1, Y: 0}}, end)
	test.That(t, len(splines), test.ShouldEqual, 2)

	joinA, _ := splines[0].Point(1)
	joinB, _ := splines[1].Point(0)
	test.That(t, joinA.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, joinA.Y, test.ShouldAlmostEqual, 0.0)
	test.That(t, joinB.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, joinB.Y, test.ShouldAlmostEqual, 0.0)
}

func TestCubicSplinesFromControlVectorsTwoInteriorPassesThroughEachWaypoint(t *testing.T) {
	interior := []geom2d.Translation2d{{X: 1, Y: 0}, {X: 2, Y: 1}}
	start, end := CubicControlVectorsFromWaypoints(geom2d.NewPose2d(0, 0, 0), interior, geom2d.NewPose2d(3, 0, 0))
	splines := CubicSplinesFromControlVectors(start, interior, end)
	test.That(t, len(splines), test.ShouldEqual, 3)

	p0, _ := splines[0].Point(0)
	test.That(t, p0, test.ShouldResemble, geom2d.Translation2d{X: 0, Y: 0})

	j1a, _ := splines[0].Point(1)
	j1b, _ := splines[1].Point(0)
	test.That(t, j1a.X, test.ShouldAlmostEqual, interior[0].X)
	test.That(t, j1a.Y, test.ShouldAlmostEqual, interior[0].Y)
	test.That(t, j1b.X, test.ShouldAlmostEqual, interior[0].X)
	test.That(t, j1b.Y, test.ShouldAlmostEqual, interior[0].Y)

	j2a, _ := splines[1].Point(1)
	j2b, _ := splines[2].Point(0)
	test.That(t, j2a.X, test.ShouldAlmostEqual, interior[1].X)
	test.That(t, j2a.Y, test.ShouldAlmostEqual, interior[1].Y)
	test.That(t, j2b.X, test.ShouldAlmostEqual, interior[1].X)
	test.That(t, j2b.Y, test.ShouldAlmostEqual, interior[1].Y)

	pEnd, _ := splines[2].Point(1)
	test.That(t, pEnd.X, test.ShouldAlmostEqual, 3.0)
	test.That(t, pEnd.Y, test.ShouldAlmostEqual, 0.0)
}

func TestThomasAlgorithmSolvesKnownSystem(t *testing.T) {
	// [4 1 0; 1 4 1; 0 1 4] f = [5 6 5] has solution f = [1 1 1].
	a := []float64{0, 1, 1}
	b := []float64{4, 4, 4}
	c := []float64{1, 1, 0}
	d := []float64{5, 6, 5}
	f := thomasAlgorithm(a, b, c, d)
	test.That(t, len(f), test.ShouldEqual, 3)
	test.That(t, f[0], test.ShouldAlmostEqual, 1.0)
	test.That(t, f[1], test.ShouldAlmostEqual, 1.0)
	test.That(t, f[2], test.ShouldAlmostEqual, 1.0)
}
