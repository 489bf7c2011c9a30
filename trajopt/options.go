package trajopt

import "github.com/SleipnirGroup/Choreo-sub000/solve"

// GuessAlgorithm selects which §4.4 initial-guess engine seeds the NLP's
// decision variables.
type GuessAlgorithm int

const (
	// LinearGuess interpolates positions/heading linearly between guess
	// points (the default: cheap, deterministic).
	LinearGuess GuessAlgorithm = iota
	// SplineGuess fits a cubic-Hermite pose spline through the guess
	// points first, usually a better-conditioned starting point for
	// paths with sharp turns.
	SplineGuess
)

// GenerateOptions configures one Generate call.
type GenerateOptions struct {
	Solve solve.SolveOptions
	Guess GuessAlgorithm
}
