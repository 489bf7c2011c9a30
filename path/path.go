// Package path implements the Path model and fluent Builder of §3/§4.5: the
// in-memory representation of waypoints, their constraints, bumpers, and
// drivetrain parameters, and the stateful API that populates them.
package path

// Path is the ordered sequence of waypoints, the drivetrain they are
// generated for, and the progress callbacks the generator invokes (§3).
type Path struct {
	Waypoints  []*Waypoint
	Drivetrain Drivetrain
	Callbacks  []Callback
}

// AddCallback registers fn under handle, in registration order — within a
// single solver iteration, callbacks fire in the order they were
// registered (§5).
func (p *Path) AddCallback(handle int, fn func(handle int, sol PartialSolution)) {
	p.Callbacks = append(p.Callbacks, Callback{Handle: handle, Fn: fn})
}
