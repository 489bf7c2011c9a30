package guess

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/SleipnirGroup/Choreo-sub000/path"
)

func straightTwoWaypointPath() *path.BuiltPath {
	b := path.NewBuilder()
	b.SetDrivetrain(path.NewSwerveDrivetrain(45, 6, 0.05, 70, 1.4, 1.2, nil))
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 4, 0, 0)
	return b.Build()
}

func TestLinearGuessStartsAndEndsAtWaypointPoses(t *testing.T) {
	s := Linear(straightTwoWaypointPath())
	n := len(s.X)
	test.That(t, s.X[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, s.Y[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, s.X[n-1], test.ShouldAlmostEqual, 4.0)
	test.That(t, s.Y[n-1], test.ShouldAlmostEqual, 0.0)
}

func TestLinearGuessSampleCountMatchesControlIntervalCounts(t *testing.T) {
	built := straightTwoWaypointPath()
	s := Linear(built)
	want := 1
	for _, n := range built.ControlIntervalCounts {
		want += n
	}
	test.That(t, len(s.X), test.ShouldEqual, want)
}

func TestLinearGuessFirstSampleHasZeroRate(t *testing.T) {
	s := Linear(straightTwoWaypointPath())
	test.That(t, s.Vx[0], test.ShouldEqual, 0.0)
	test.That(t, s.Ax[0], test.ShouldEqual, 0.0)
}

func TestLinearGuessHeadingWrapsShortArc(t *testing.T) {
	b := path.NewBuilder()
	b.SetDrivetrain(path.NewDifferentialDrivetrain(45, 6, 0.05, 70, 1.4, 1.2, 0.6))
	b.PoseWpt(0, 0, 0, math.Pi-0.1)
	b.PoseWpt(1, 1, 0, -math.Pi+0.1)
	s := Linear(b.Build())
	for i := 1; i < len(s.Theta); i++ {
		delta := s.Theta[i] - s.Theta[i-1]
		test.That(t, math.Abs(delta), test.ShouldBeLessThan, 0.1)
	}
}

func TestSplineGuessStartsAndEndsAtWaypointPoses(t *testing.T) {
	s := Spline(straightTwoWaypointPath())
	n := len(s.X)
	test.That(t, s.X[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, s.X[n-1], test.ShouldAlmostEqual, 4.0)
	test.That(t, s.Y[n-1], test.ShouldAlmostEqual, 0.0)
}

func TestSplineGuessDifferentialHeadingFollowsTravelDirection(t *testing.T) {
	b := path.NewBuilder()
	b.SetDrivetrain(path.NewDifferentialDrivetrain(45, 6, 0.05, 70, 1.4, 1.2, 0.6))
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 4, 0, 0)
	s := Spline(b.Build())
	for i := range s.Theta {
		test.That(t, math.Abs(s.Theta[i]), test.ShouldBeLessThan, 1e-6)
	}
}

func TestSplineGuessSampleCountMatchesLinear(t *testing.T) {
	built := straightTwoWaypointPath()
	linear := Linear(built)
	spl := Spline(built)
	test.That(t, len(spl.X), test.ShouldEqual, len(linear.X))
}
