package path

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/SleipnirGroup/Choreo-sub000/constraint"
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
)

// defaultControlIntervalCount is the interval count new_wpts gives to every
// segment it creates (§4.5).
const defaultControlIntervalCount = 40

// defaultBumperSafety is the safety distance SetBumpers applies to the
// rectangular polygon it pushes (§4.5).
const defaultBumperSafety = 0.01

// Builder is the stateful fluent mutation API of §4.5. It accumulates a
// Path plus the initial-guess metadata (control interval counts and
// per-waypoint guess poses) that the builder holds "alongside the Path"
// rather than inside it, per §3.
type Builder struct {
	path                  *Path
	bumpers               []Bumper
	controlIntervalCounts []int
	guessPoints           [][]geom2d.Pose2d
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{path: &Path{}}
}

// BuiltPath is what Build returns: the Path a generator consumes, plus the
// initial-guess metadata that feeds the initial-guess engine (§4.4).
type BuiltPath struct {
	Path                  *Path
	ControlIntervalCounts []int
	GuessPoints           [][]geom2d.Pose2d
}

// Build snapshots the builder's accumulated state. The builder remains
// usable afterward; a generator constructed from a BuiltPath does not
// observe later mutations to the Builder it came from.
func (b *Builder) Build() *BuiltPath {
	p := &Path{Drivetrain: b.path.Drivetrain, Callbacks: append([]Callback(nil), b.path.Callbacks...)}
	for _, w := range b.path.Waypoints {
		p.Waypoints = append(p.Waypoints, &Waypoint{
			WaypointConstraints: append([]constraint.Constraint(nil), w.WaypointConstraints...),
			SegmentConstraints:  append([]constraint.Constraint(nil), w.SegmentConstraints...),
		})
	}
	guessPoints := make([][]geom2d.Pose2d, len(b.guessPoints))
	for i, g := range b.guessPoints {
		guessPoints[i] = append([]geom2d.Pose2d(nil), g...)
	}
	return &BuiltPath{
		Path:                  p,
		ControlIntervalCounts: append([]int(nil), b.controlIntervalCounts...),
		GuessPoints:           guessPoints,
	}
}

// newWpts extends the waypoint list up to and including finalIndex.
// Newly inserted waypoints default to an origin pose guess; newly created
// segments default to defaultControlIntervalCount intervals.
func (b *Builder) newWpts(finalIndex int) {
	for len(b.path.Waypoints) <= finalIndex {
		b.path.Waypoints = append(b.path.Waypoints, &Waypoint{})
		b.guessPoints = append(b.guessPoints, []geom2d.Pose2d{geom2d.NewPose2d(0, 0, 0)})
		if len(b.path.Waypoints) > 1 {
			b.controlIntervalCounts = append(b.controlIntervalCounts, defaultControlIntervalCount)
		}
	}
}

// setGuessTail replaces (or, if empty, creates) the last guess pose of
// waypoint i — the entry that ties to the waypoint's own position.
func (b *Builder) setGuessTail(i int, pose geom2d.Pose2d) {
	g := b.guessPoints[i]
	if len(g) == 0 {
		b.guessPoints[i] = []geom2d.Pose2d{pose}
		return
	}
	g[len(g)-1] = pose
}

// SetDrivetrain replaces the path's drivetrain.
func (b *Builder) SetDrivetrain(d Drivetrain) {
	b.path.Drivetrain = d
}

// SetBumpers pushes a rectangular bumper polygon with the default 0.01m
// safety distance.
func (b *Builder) SetBumpers(front, left, right, back float64) {
	b.bumpers = append(b.bumpers, NewRectangularBumper(front, left, right, back, defaultBumperSafety))
}

// SetControlIntervalCounts replaces the per-segment step counts. Len(v)
// must equal len(Waypoints)-1 by the time the path is generated; the
// builder does not validate this eagerly since waypoints may still be
// added afterward.
func (b *Builder) SetControlIntervalCounts(v []int) {
	b.controlIntervalCounts = append([]int(nil), v...)
}

// PoseWpt ensures waypoint i exists, pushes a PoseEquality constraint, and
// sets i's initial guess pose.
func (b *Builder) PoseWpt(i int, x, y, headingRadians float64) {
	b.newWpts(i)
	wpt := b.path.Waypoints[i]
	wpt.WaypointConstraints = append(wpt.WaypointConstraints, constraint.NewPoseEquality(x, y, headingRadians))
	b.setGuessTail(i, geom2d.NewPose2d(x, y, headingRadians))
}

// TranslationWpt ensures waypoint i exists, pushes a TranslationEquality
// constraint (heading left free), and sets i's initial guess pose using
// headingGuess only to shape the initial guess.
func (b *Builder) TranslationWpt(i int, x, y, headingGuess float64) {
	b.newWpts(i)
	wpt := b.path.Waypoints[i]
	wpt.WaypointConstraints = append(wpt.WaypointConstraints, constraint.NewTranslationEquality(x, y))
	b.setGuessTail(i, geom2d.NewPose2d(x, y, headingGuess))
}

// WptInitialGuessPoint replaces the last guess point of waypoint i.
func (b *Builder) WptInitialGuessPoint(i int, pose geom2d.Pose2d) {
	b.newWpts(i)
	b.setGuessTail(i, pose)
}

// SgmtInitialGuessPoints prepends interior guess points to segment i→i+1,
// stored (per §3/§4.5) on the downstream waypoint i+1.
func (b *Builder) SgmtInitialGuessPoints(i int, poses []geom2d.Pose2d) {
	b.newWpts(i + 1)
	existing := b.guessPoints[i+1]
	b.guessPoints[i+1] = append(append([]geom2d.Pose2d{}, poses...), existing...)
}

// WptConstraint appends c to waypoint i's waypoint_constraints.
func (b *Builder) WptConstraint(i int, c constraint.Constraint) {
	b.newWpts(i)
	wpt := b.path.Waypoints[i]
	wpt.WaypointConstraints = append(wpt.WaypointConstraints, c)
}

// SgmtConstraint appends c to from's waypoint_constraints, then for every
// waypoint i in (from, to] appends c to both its waypoint_constraints and
// segment_constraints. Requires from < to.
func (b *Builder) SgmtConstraint(from, to int, c constraint.Constraint) error {
	if from >= to {
		return errors.Errorf("path: SgmtConstraint: from (%d) must be < to (%d)", from, to)
	}
	b.newWpts(to)
	b.path.Waypoints[from].WaypointConstraints = append(b.path.Waypoints[from].WaypointConstraints, c)
	for i := from + 1; i <= to; i++ {
		wpt := b.path.Waypoints[i]
		wpt.WaypointConstraints = append(wpt.WaypointConstraints, c)
		wpt.SegmentConstraints = append(wpt.SegmentConstraints, c)
	}
	return nil
}

// AddCallback registers a progress callback on the path.
func (b *Builder) AddCallback(handle int, fn func(handle int, sol PartialSolution)) {
	b.path.AddCallback(handle, fn)
}

// keepInCircleConstraints lowers a keep-in circle to one PointPointMax per
// bumper corner: a convex polygon is entirely inside a circle iff every
// corner is, so no edge constraints are needed.
func (b *Builder) keepInCircleConstraints(x, y, r float64) ([]constraint.Constraint, error) {
	var out []constraint.Constraint
	var errs error
	for _, bump := range b.bumpers {
		for _, corner := range bump.Corners {
			c, err := constraint.NewPointPointMax(corner.X, corner.Y, x, y, r-bump.Safety)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, c)
		}
	}
	return out, errs
}

// keepOutCircleConstraints lowers a keep-out circle to one PointPointMin
// per bumper corner plus one LinePoint per bumper edge, so the circle
// cannot slip between two corners and clip an edge.
func (b *Builder) keepOutCircleConstraints(x, y, r float64) ([]constraint.Constraint, error) {
	var out []constraint.Constraint
	var errs error
	for _, bump := range b.bumpers {
		n := len(bump.Corners)
		for idx, corner := range bump.Corners {
			c, err := constraint.NewPointPointMin(corner.X, corner.Y, x, y, r+bump.Safety)
			if err != nil {
				errs = multierr.Append(errs, err)
			} else {
				out = append(out, c)
			}

			next := bump.Corners[(idx+1)%n]
			edge, err := constraint.NewLinePoint(corner.X, corner.Y, next.X, next.Y, x, y, r+bump.Safety)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, edge)
		}
	}
	return out, errs
}

// keepInPolygonConstraints lowers a keep-in field polygon (given in
// counterclockwise winding, so "inside" is the Above side of every directed
// edge) to one PointLineRegion per bumper-corner/polygon-edge pair.
func (b *Builder) keepInPolygonConstraints(polygon []geom2d.Translation2d) []constraint.Constraint {
	var out []constraint.Constraint
	n := len(polygon)
	for _, bump := range b.bumpers {
		for _, corner := range bump.Corners {
			for idx := 0; idx < n; idx++ {
				start := polygon[idx]
				end := polygon[(idx+1)%n]
				out = append(out, constraint.NewPointLineRegion(corner.X, corner.Y, start.X, start.Y, end.X, end.Y, constraint.Above))
			}
		}
	}
	return out
}

// keepInLaneConstraints lowers a keep-in lane to one Lane constraint per
// bumper corner.
func (b *Builder) keepInLaneConstraints(startX, startY, endX, endY, tolerance float64) ([]constraint.Constraint, error) {
	var out []constraint.Constraint
	var errs error
	for _, bump := range b.bumpers {
		for _, corner := range bump.Corners {
			lane, err := constraint.NewLane(corner.X, corner.Y, startX, startY, endX, endY, tolerance)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, lane)
		}
	}
	return out, errs
}

// WptKeepInCircle constrains every bumper corner to stay within a field
// circle, at waypoint i only.
func (b *Builder) WptKeepInCircle(i int, x, y, r float64) error {
	cs, err := b.keepInCircleConstraints(x, y, r)
	if err != nil {
		return err
	}
	for _, c := range cs {
		b.WptConstraint(i, c)
	}
	return nil
}

// SgmtKeepInCircle is WptKeepInCircle applied across segment (from, to].
func (b *Builder) SgmtKeepInCircle(from, to int, x, y, r float64) error {
	cs, err := b.keepInCircleConstraints(x, y, r)
	if err != nil {
		return err
	}
	for _, c := range cs {
		if err := b.SgmtConstraint(from, to, c); err != nil {
			return err
		}
	}
	return nil
}

// WptKeepOutCircle constrains every bumper corner and edge to stay outside
// a field circle, at waypoint i only.
func (b *Builder) WptKeepOutCircle(i int, x, y, r float64) error {
	cs, err := b.keepOutCircleConstraints(x, y, r)
	if err != nil {
		return err
	}
	for _, c := range cs {
		b.WptConstraint(i, c)
	}
	return nil
}

// SgmtKeepOutCircle is WptKeepOutCircle applied across segment (from, to].
func (b *Builder) SgmtKeepOutCircle(from, to int, x, y, r float64) error {
	cs, err := b.keepOutCircleConstraints(x, y, r)
	if err != nil {
		return err
	}
	for _, c := range cs {
		if err := b.SgmtConstraint(from, to, c); err != nil {
			return err
		}
	}
	return nil
}

// WptKeepInPolygon constrains every bumper corner to stay within a
// (counterclockwise-wound) field polygon, at waypoint i only.
func (b *Builder) WptKeepInPolygon(i int, polygon []geom2d.Translation2d) {
	for _, c := range b.keepInPolygonConstraints(polygon) {
		b.WptConstraint(i, c)
	}
}

// SgmtKeepInPolygon is WptKeepInPolygon applied across segment (from, to].
func (b *Builder) SgmtKeepInPolygon(from, to int, polygon []geom2d.Translation2d) error {
	for _, c := range b.keepInPolygonConstraints(polygon) {
		if err := b.SgmtConstraint(from, to, c); err != nil {
			return err
		}
	}
	return nil
}

// WptKeepInLane constrains every bumper corner to a tolerance-wide lane
// around the given centerline, at waypoint i only.
func (b *Builder) WptKeepInLane(i int, startX, startY, endX, endY, tolerance float64) error {
	cs, err := b.keepInLaneConstraints(startX, startY, endX, endY, tolerance)
	if err != nil {
		return err
	}
	for _, c := range cs {
		b.WptConstraint(i, c)
	}
	return nil
}

// SgmtKeepInLane is WptKeepInLane applied across segment (from, to].
func (b *Builder) SgmtKeepInLane(from, to int, startX, startY, endX, endY, tolerance float64) error {
	cs, err := b.keepInLaneConstraints(startX, startY, endX, endY, tolerance)
	if err != nil {
		return err
	}
	for _, c := range cs {
		if err := b.SgmtConstraint(from, to, c); err != nil {
			return err
		}
	}
	return nil
}
