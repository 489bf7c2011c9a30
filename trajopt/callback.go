package trajopt

import (
	"time"

	trajpath "github.com/SleipnirGroup/Choreo-sub000/path"
)

// callbackFPS is the wall-clock throttle §5 imposes on progress callbacks.
const callbackFPS = 60

// callbackDispatcher fans a solver iteration out to every path-level
// callback in registration order, at most callbackFPS times per second,
// and reports the process-wide cancellation flag on every check
// regardless of whether a frame was due.
type callbackDispatcher struct {
	callbacks []trajpath.Callback
	lastFrame time.Time
	interval  time.Duration
}

func newCallbackDispatcher(callbacks []trajpath.Callback) *callbackDispatcher {
	return &callbackDispatcher{callbacks: callbacks, interval: time.Second / callbackFPS}
}

// check runs once per solver iteration. buildFn is only invoked (to avoid
// the copy cost on throttled-away iterations) when a frame is due.
func (d *callbackDispatcher) check(iteration int, buildFn func() trajpath.PartialSolution) bool {
	if trajpath.CancellationRequested() {
		return true
	}
	now := time.Now()
	if !d.lastFrame.IsZero() && now.Sub(d.lastFrame) < d.interval {
		return false
	}
	d.lastFrame = now
	if len(d.callbacks) == 0 {
		return false
	}
	sol := buildFn()
	sol.Iteration = iteration
	for _, cb := range d.callbacks {
		cb.Fn(cb.Handle, sol)
	}
	return false
}
