package path

// PartialSolution is the partial state rebuilt from the solver's current
// decision vector for one callback invocation (§9: "partial solutions are
// rebuilt each callback from current variable values; this copy cost is
// amortized by the 60fps cap"). Heading is already resolved to a scalar via
// atan2(sin, cos) for swerve, or copied directly for differential.
type PartialSolution struct {
	Iteration int
	X, Y      []float64
	Heading   []float64
}

// Callback pairs a registered progress hook with the opaque handle integer
// the caller supplied at registration time (§5).
type Callback struct {
	Handle int
	Fn     func(handle int, sol PartialSolution)
}
