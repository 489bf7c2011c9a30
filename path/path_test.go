package path

import (
	"testing"

	"go.viam.com/test"

	"github.com/SleipnirGroup/Choreo-sub000/constraint"
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
)

func TestNewWptsDefaultsOriginGuessAndFortyIntervals(t *testing.T) {
	b := NewBuilder()
	b.newWpts(2)
	test.That(t, len(b.path.Waypoints), test.ShouldEqual, 3)
	test.That(t, b.controlIntervalCounts, test.ShouldResemble, []int{40, 40})
	for _, g := range b.guessPoints {
		test.That(t, len(g), test.ShouldEqual, 1)
		test.That(t, g[0], test.ShouldResemble, geom2d.NewPose2d(0, 0, 0))
	}
}

func TestPoseWptSetsConstraintAndGuessTail(t *testing.T) {
	b := NewBuilder()
	b.PoseWpt(0, 1, 2, 0.5)
	built := b.Build()
	test.That(t, len(built.Path.Waypoints[0].WaypointConstraints), test.ShouldEqual, 1)
	test.That(t, built.GuessPoints[0][len(built.GuessPoints[0])-1], test.ShouldResemble, geom2d.NewPose2d(1, 2, 0.5))
}

func TestWptInitialGuessPointReplacesLastEntryOnly(t *testing.T) {
	b := NewBuilder()
	b.PoseWpt(0, 0, 0, 0)
	b.WptInitialGuessPoint(0, geom2d.NewPose2d(5, 5, 1))
	built := b.Build()
	test.That(t, len(built.GuessPoints[0]), test.ShouldEqual, 1)
	test.That(t, built.GuessPoints[0][0], test.ShouldResemble, geom2d.NewPose2d(5, 5, 1))
}

func TestSgmtInitialGuessPointsPrependsToDownstreamWaypoint(t *testing.T) {
	b := NewBuilder()
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 2, 0, 0)
	interior := []geom2d.Pose2d{geom2d.NewPose2d(1, 0, 0)}
	b.SgmtInitialGuessPoints(0, interior)
	built := b.Build()
	test.That(t, len(built.GuessPoints[1]), test.ShouldEqual, 2)
	test.That(t, built.GuessPoints[1][0], test.ShouldResemble, interior[0])
	test.That(t, built.GuessPoints[1][1], test.ShouldResemble, geom2d.NewPose2d(2, 0, 0))
}

func TestSgmtConstraintRejectsInvertedIndices(t *testing.T) {
	b := NewBuilder()
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 0, 0)
	c := constraint.NewTranslationEquality(9, 9)
	err := b.SgmtConstraint(1, 1, c)
	test.That(t, err, test.ShouldNotBeNil)
	err = b.SgmtConstraint(1, 0, c)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSgmtConstraintAppliesToWaypointAndSegmentLists(t *testing.T) {
	b := NewBuilder()
	b.PoseWpt(0, 0, 0, 0)
	b.PoseWpt(1, 1, 0, 0)
	b.PoseWpt(2, 2, 0, 0)
	c := constraint.NewTranslationEquality(9, 9)
	err := b.SgmtConstraint(0, 2, c)
	test.That(t, err, test.ShouldBeNil)

	built := b.Build()
	// from=0 only gets waypoint_constraints (pose eq + this one).
	test.That(t, len(built.Path.Waypoints[0].WaypointConstraints), test.ShouldEqual, 2)
	test.That(t, len(built.Path.Waypoints[0].SegmentConstraints), test.ShouldEqual, 0)
	// i in (0,2] get both lists.
	test.That(t, len(built.Path.Waypoints[1].SegmentConstraints), test.ShouldEqual, 1)
	test.That(t, len(built.Path.Waypoints[2].SegmentConstraints), test.ShouldEqual, 1)
}

func TestKeepInCircleAppliesOnePerBumperCorner(t *testing.T) {
	b := NewBuilder()
	b.SetBumpers(0.4, 0.4, 0.4, 0.4)
	b.PoseWpt(0, 0, 0, 0)
	err := b.WptKeepInCircle(0, 0, 0, 5)
	test.That(t, err, test.ShouldBeNil)
	built := b.Build()
	// pose eq (1) + 4 corners = 5.
	test.That(t, len(built.Path.Waypoints[0].WaypointConstraints), test.ShouldEqual, 5)
}

func TestKeepOutCircleAppliesCornerAndEdgeConstraints(t *testing.T) {
	b := NewBuilder()
	b.SetBumpers(0.4, 0.4, 0.4, 0.4)
	b.PoseWpt(0, 0, 0, 0)
	err := b.WptKeepOutCircle(0, 0.5, 0.5, 0.1)
	test.That(t, err, test.ShouldBeNil)
	built := b.Build()
	// pose eq (1) + 4 corners + 4 edges = 9.
	test.That(t, len(built.Path.Waypoints[0].WaypointConstraints), test.ShouldEqual, 9)
}

func TestCancellationFlagResetAndRequest(t *testing.T) {
	ResetCancellation()
	test.That(t, CancellationRequested(), test.ShouldBeFalse)
	RequestCancellation()
	test.That(t, CancellationRequested(), test.ShouldBeTrue)
	ResetCancellation()
	test.That(t, CancellationRequested(), test.ShouldBeFalse)
}
