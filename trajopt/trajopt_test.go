package trajopt

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/SleipnirGroup/Choreo-sub000/choreolog"
	"github.com/SleipnirGroup/Choreo-sub000/constraint"
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	trajpath "github.com/SleipnirGroup/Choreo-sub000/path"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
)

// scenarioDrivetrain builds the swerve drivetrain shared by every §8
// end-to-end scenario: mass=45, moi=6, wheel_radius=0.04, wheel_max_ω=70,
// wheel_max_τ=2, wheel_cof=1.5, modules at (±0.6, ±0.6).
func scenarioDrivetrain() *trajpath.SwerveDrivetrain {
	return trajpath.NewSwerveDrivetrain(45, 6, 0.04, 70, 2, 1.5, []geom2d.Translation2d{
		{X: 0.6, Y: 0.6}, {X: -0.6, Y: 0.6}, {X: -0.6, Y: -0.6}, {X: 0.6, Y: -0.6},
	})
}

func zeroVelocity(b *trajpath.Builder, i int) {
	c, err := constraint.NewLinearVelocityMaxMagnitude(0)
	if err != nil {
		panic(err)
	}
	b.WptConstraint(i, c)
}

func straightSwervePath(intervals int) *trajpath.BuiltPath {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(trajpath.NewSwerveDrivetrain(45, 6, 0.05, 70, 1.4, 1.2, []geom2d.Translation2d{
		{X: 0.3, Y: 0.3}, {X: -0.3, Y: 0.3}, {X: -0.3, Y: -0.3}, {X: 0.3, Y: -0.3},
	}))
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 0, 0)
	b.SetControlIntervalCounts([]int{intervals})
	return b.Build()
}

func straightDifferentialPath(intervals int) *trajpath.BuiltPath {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(trajpath.NewDifferentialDrivetrain(45, 6, 0.05, 70, 1.4, 1.2, 0.6))
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 0, 0)
	b.SetControlIntervalCounts([]int{intervals})
	return b.Build()
}

func TestNewSwerveGeneratorRejectsWrongDrivetrain(t *testing.T) {
	built := straightDifferentialPath(4)
	_, err := NewSwerveGenerator(built, choreolog.Nop())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewSwerveGeneratorRejectsMismatchedControlIntervalCounts(t *testing.T) {
	built := straightSwervePath(4)
	built.ControlIntervalCounts = []int{1, 2, 3}
	_, err := NewSwerveGenerator(built, choreolog.Nop())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewSwerveGeneratorStartsConfigured(t *testing.T) {
	g, err := NewSwerveGenerator(straightSwervePath(4), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.State(), test.ShouldEqual, Configured)
}

func TestNewDifferentialGeneratorRejectsWrongDrivetrain(t *testing.T) {
	built := straightSwervePath(4)
	_, err := NewDifferentialGenerator(built, choreolog.Nop())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewDifferentialGeneratorRejectsMismatchedControlIntervalCounts(t *testing.T) {
	built := straightDifferentialPath(4)
	built.ControlIntervalCounts = []int{1, 2, 3}
	_, err := NewDifferentialGenerator(built, choreolog.Nop())
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSwerveGenerateOutsideConfiguredFails(t *testing.T) {
	g, err := NewSwerveGenerator(straightSwervePath(4), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)
	g.state = Succeeded
	sol, status := g.Generate(GenerateOptions{})
	test.That(t, sol, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, solve.Failure)
}

func TestSwerveGenerateProducesStructurallyValidSolution(t *testing.T) {
	intervals := 4
	g, err := NewSwerveGenerator(straightSwervePath(intervals), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)

	sol, _ := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 200}})
	test.That(t, sol, test.ShouldNotBeNil)
	test.That(t, len(sol.X), test.ShouldEqual, intervals+1)
	test.That(t, len(sol.Dt), test.ShouldEqual, intervals+1)
	test.That(t, sol.X[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, sol.Y[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, sol.Dt[0], test.ShouldEqual, 0.0)
	for _, dt := range sol.Dt[1:] {
		test.That(t, dt, test.ShouldBeGreaterThan, 0.0)
	}
	test.That(t, g.State(), test.ShouldNotEqual, Generating)
}

func TestDifferentialGenerateProducesStructurallyValidSolution(t *testing.T) {
	intervals := 4
	g, err := NewDifferentialGenerator(straightDifferentialPath(intervals), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)

	sol, _ := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 200}})
	test.That(t, sol, test.ShouldNotBeNil)
	test.That(t, len(sol.X), test.ShouldEqual, intervals+1)
	test.That(t, len(sol.Vl), test.ShouldEqual, intervals+1)
	test.That(t, sol.X[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, sol.Heading[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, g.State(), test.ShouldNotEqual, Generating)
}

// TestScenarioOneMeterForward is spec.md §8 scenario 1: a straight
// one-meter move from rest to rest should take about 0.86s and make forward
// progress in x through the middle sample and on to the end.
func TestScenarioOneMeterForward(t *testing.T) {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(scenarioDrivetrain())
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 0, 0)
	zeroVelocity(b, 0)
	zeroVelocity(b, 1)
	b.SetControlIntervalCounts([]int{40})

	g, err := NewSwerveGenerator(b.Build(), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)
	sol, status := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 2000}})
	test.That(t, status.IsFailure(), test.ShouldBeFalse)
	test.That(t, sol, test.ShouldNotBeNil)

	total := 0.0
	for _, dt := range sol.Dt {
		total += dt
	}
	test.That(t, total, test.ShouldAlmostEqual, 0.86, 0.2)

	mid := len(sol.X) / 2
	test.That(t, sol.X[mid], test.ShouldBeGreaterThan, sol.X[0])
	test.That(t, sol.X[len(sol.X)-1], test.ShouldBeGreaterThan, sol.X[mid])
}

// TestScenarioBasicCurve is spec.md §8 scenario 2: the robot must turn from
// -π/2 to 0 along the short arc, never wrapping the long way around.
func TestScenarioBasicCurve(t *testing.T) {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(scenarioDrivetrain())
	b.PoseWpt(0, 1, 1, -math.Pi/2)
	b.PoseWpt(1, 2, 0, 0)
	zeroVelocity(b, 0)
	zeroVelocity(b, 1)
	b.SetControlIntervalCounts([]int{40})

	g, err := NewSwerveGenerator(b.Build(), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)
	sol, status := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 2000}})
	test.That(t, status.IsFailure(), test.ShouldBeFalse)
	test.That(t, sol, test.ShouldNotBeNil)

	for i := range sol.X {
		h := sol.Heading(i)
		test.That(t, h, test.ShouldBeGreaterThanOrEqualTo, -math.Pi/2-1e-3)
		test.That(t, h, test.ShouldBeLessThanOrEqualTo, 1e-3)
	}
}

// TestScenarioThreeWaypoints is spec.md §8 scenario 3: the path must pass
// exactly through the middle waypoint's commanded heading of 0.
func TestScenarioThreeWaypoints(t *testing.T) {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(scenarioDrivetrain())
	b.PoseWpt(0, 0, 0, math.Pi/2)
	b.PoseWpt(1, 1, 1, 0)
	b.PoseWpt(2, 2, 0, math.Pi/2)
	zeroVelocity(b, 0)
	zeroVelocity(b, 1)
	b.SetControlIntervalCounts([]int{40, 40})

	g, err := NewSwerveGenerator(b.Build(), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)
	sol, status := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 3000}})
	test.That(t, status.IsFailure(), test.ShouldBeFalse)
	test.That(t, sol, test.ShouldNotBeNil)

	test.That(t, len(sol.X), test.ShouldEqual, 81)
	test.That(t, sol.Heading(40), test.ShouldAlmostEqual, 0.0, 1e-3)
}

// TestScenarioEndingVelocityFree is spec.md §8 scenario 4: leaving the final
// velocity free should finish faster than scenario 1's stop-to-stop move,
// with nonzero speed at the end.
func TestScenarioEndingVelocityFree(t *testing.T) {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(scenarioDrivetrain())
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 0, 1, 0)
	zeroVelocity(b, 0)
	b.SetControlIntervalCounts([]int{40})

	g, err := NewSwerveGenerator(b.Build(), choreolog.Nop())
	test.That(t, err, test.ShouldBeNil)
	sol, status := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 2000}})
	test.That(t, status.IsFailure(), test.ShouldBeFalse)
	test.That(t, sol, test.ShouldNotBeNil)

	last := len(sol.Vx) - 1
	finalSpeed := math.Hypot(sol.Vx[last], sol.Vy[last])
	test.That(t, finalSpeed, test.ShouldBeGreaterThan, 0.0)

	total := 0.0
	for _, dt := range sol.Dt {
		total += dt
	}
	test.That(t, total, test.ShouldBeLessThan, 0.86)
}

// TestScenarioKeepOutCircle is spec.md §8 scenario 5: every bumper corner
// must clear a 0.1m keep-out circle centered at (0.5, 0.5) throughout the
// path. Only the corner clearance is checked here, not the total time.
func TestScenarioKeepOutCircle(t *testing.T) {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(scenarioDrivetrain())
	b.SetBumpers(0.35, 0.35, 0.35, 0.35)
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 0, 0)
	zeroVelocity(b, 0)
	zeroVelocity(b, 1)
	err := b.WptKeepOutCircle(0, 0.5, 0.5, 0.1)
	test.That(t, err, test.ShouldBeNil)
	err = b.SgmtKeepOutCircle(0, 1, 0.5, 0.5, 0.1)
	test.That(t, err, test.ShouldBeNil)
	b.SetControlIntervalCounts([]int{40})

	g, genErr := NewSwerveGenerator(b.Build(), choreolog.Nop())
	test.That(t, genErr, test.ShouldBeNil)
	sol, status := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 3000}})
	test.That(t, status.IsFailure(), test.ShouldBeFalse)
	test.That(t, sol, test.ShouldNotBeNil)

	center := geom2d.Translation2d{X: 0.5, Y: 0.5}
	for i := range sol.X {
		pose := geom2d.NewPose2d(sol.X[i], sol.Y[i], sol.Heading(i))
		for _, corner := range []geom2d.Translation2d{
			{X: 0.35, Y: 0.35}, {X: -0.35, Y: 0.35}, {X: -0.35, Y: -0.35}, {X: 0.35, Y: -0.35},
		} {
			world := pose.Translation.Add(corner.RotateBy(pose.Rotation))
			dist := math.Hypot(world.X-center.X, world.Y-center.Y)
			test.That(t, dist, test.ShouldBeGreaterThan, 0.1-1e-3)
		}
	}
}

// TestScenarioPointAtFieldPoint is spec.md §8 scenario 6: at the
// mid-waypoint the heading must point at (1, 4) within 1 degree.
func TestScenarioPointAtFieldPoint(t *testing.T) {
	b := trajpath.NewBuilder()
	b.SetDrivetrain(scenarioDrivetrain())
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 1, math.Pi/2)
	b.WptConstraint(1, constraint.NewLinearVelocityDirection(math.Pi/2))
	pointAt, err := constraint.NewPointAt(1, 4, 1*math.Pi/180, false)
	test.That(t, err, test.ShouldBeNil)
	b.WptConstraint(1, pointAt)
	b.SetControlIntervalCounts([]int{40})

	g, genErr := NewSwerveGenerator(b.Build(), choreolog.Nop())
	test.That(t, genErr, test.ShouldBeNil)
	sol, status := g.Generate(GenerateOptions{Solve: solve.SolveOptions{MaxEval: 3000}})
	test.That(t, status.IsFailure(), test.ShouldBeFalse)
	test.That(t, sol, test.ShouldNotBeNil)

	mid := 40 // waypoint 1's sample index with 40 intervals in segment 0
	dx := 1.0 - sol.X[mid]
	dy := 4.0 - sol.Y[mid]
	dist := math.Hypot(dx, dy)
	dot := math.Cos(sol.Heading(mid))*dx + math.Sin(sol.Heading(mid))*dy
	test.That(t, dot, test.ShouldBeGreaterThanOrEqualTo, math.Cos(1*math.Pi/180)*dist-1e-3)
}

func TestStateStringCoversAllValues(t *testing.T) {
	cases := map[State]string{
		Unconfigured: "UNCONFIGURED",
		Configured:   "CONFIGURED",
		Generating:   "GENERATING",
		Succeeded:    "SUCCESS",
		Failed:       "FAILED",
		State(99):    "UNKNOWN",
	}
	for s, want := range cases {
		test.That(t, s.String(), test.ShouldEqual, want)
	}
}

func TestWheelForceMaxTakesTighterBound(t *testing.T) {
	motorLimited := wheelForceMax(1, 0.05, 100, 45, 4)
	test.That(t, motorLimited, test.ShouldAlmostEqual, 1/0.05)

	frictionLimited := wheelForceMax(1000, 0.05, 1.2, 45, 4)
	test.That(t, frictionLimited, test.ShouldAlmostEqual, 1.2*45*gravity/4)
}

func TestBootstrapSpeedsDerivesFromWheelAndForceLimits(t *testing.T) {
	fMax := wheelForceMax(1.4, 0.05, 1.2, 45, 4)
	vMax, aMax := bootstrapSpeeds(0.05, 70, fMax, 45, 4)
	test.That(t, vMax, test.ShouldAlmostEqual, 0.05*70)
	test.That(t, aMax, test.ShouldAlmostEqual, fMax*4/45)
}

func TestMinPairwiseDistanceOfSquareModules(t *testing.T) {
	pts := []geom2d.Translation2d{{X: 0.3, Y: 0.3}, {X: -0.3, Y: 0.3}, {X: -0.3, Y: -0.3}, {X: 0.3, Y: -0.3}}
	d := minPairwiseDistance(pts)
	test.That(t, d, test.ShouldAlmostEqual, 0.6)
}

func TestMinPairwiseDistanceSinglePointIsZero(t *testing.T) {
	d := minPairwiseDistance([]geom2d.Translation2d{{X: 1, Y: 1}})
	test.That(t, d, test.ShouldEqual, 0.0)
}

func TestCallbackDispatcherReportsCancellation(t *testing.T) {
	trajpath.RequestCancellation()
	defer trajpath.ResetCancellation()

	d := newCallbackDispatcher(nil)
	stop := d.check(1, func() trajpath.PartialSolution { return trajpath.PartialSolution{} })
	test.That(t, stop, test.ShouldBeTrue)
}

func TestCallbackDispatcherThrottlesBelowFPS(t *testing.T) {
	var calls int
	cb := trajpath.Callback{Handle: 1, Fn: func(handle int, sol trajpath.PartialSolution) { calls++ }}
	d := newCallbackDispatcher([]trajpath.Callback{cb})

	for i := 0; i < 5; i++ {
		d.check(i, func() trajpath.PartialSolution { return trajpath.PartialSolution{} })
	}
	test.That(t, calls, test.ShouldBeLessThan, 5)
}

func TestGuessAlgorithmOptionsAreDistinct(t *testing.T) {
	test.That(t, LinearGuess, test.ShouldNotEqual, SplineGuess)
}

func TestCallbackRequestedStopIsFailure(t *testing.T) {
	test.That(t, solve.CallbackRequestedStop.IsFailure(), test.ShouldBeTrue)
}
