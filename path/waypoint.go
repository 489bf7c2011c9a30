package path

import "github.com/SleipnirGroup/Choreo-sub000/constraint"

// Waypoint holds the two ordered constraint lists of §3: WaypointConstraints
// apply only at this waypoint's sample; SegmentConstraints apply at every
// discrete sample of the segment leading to this waypoint (between waypoint
// i-1 and waypoint i). Waypoints carry no geometric position of their own —
// position and heading are expressed via PoseEquality/TranslationEquality
// entries in WaypointConstraints, with the builder tracking the
// corresponding initial-guess pose separately (see BuiltPath).
type Waypoint struct {
	WaypointConstraints []constraint.Constraint
	SegmentConstraints  []constraint.Constraint
}
