package path

import "go.uber.org/atomic"

// cancelFlag is the process-wide cancellation flag of §5/§9: a package
// level var is created on first access and never torn down, matching the
// "program-scoped, created on first access" lifecycle the spec calls for.
// Concurrent generators share it by design.
var cancelFlag = atomic.NewInt32(0)

// CancellationRequested reports whether the global flag is currently
// nonzero.
func CancellationRequested() bool {
	return cancelFlag.Load() != 0
}

// RequestCancellation sets the global flag. Every running generator sees it
// at its next solver iteration (the check is not throttled) and records a
// stop request; the nlopt run itself is not interrupted and continues to
// its own termination, after which Generate reports CallbackRequestedStop.
// Safe to call from any goroutine.
func RequestCancellation() {
	cancelFlag.Store(1)
}

// ResetCancellation clears the global flag. The generator calls this once
// at the start of every Generate call.
func ResetCancellation() {
	cancelFlag.Store(0)
}
