// Package guess implements the initial-guess engine of §4.4: given a built
// path's guess poses and control interval counts, produce a drivetrain-
// agnostic sample train (positions, heading, and finite-differenced
// velocities/accelerations) the generator seeds its decision variables
// from. Two algorithms are offered, linear and spline, mirroring
// trajoptlib's generate_linear_initial_guess / generate_spline_initial_guess;
// both return the same Samples shape so the generator does not need to
// know which one produced it.
package guess

import "github.com/SleipnirGroup/Choreo-sub000/util"

// Samples is the drivetrain-agnostic initial guess for every flattened
// sample 0..S-1 (S = sum(control interval counts) + 1). Theta is always a
// scalar in radians; the generator derives (cos, sin) from it for swerve,
// or uses it directly for differential.
type Samples struct {
	X, Y, Theta []float64
	Dt          []float64
	Vx, Vy      []float64
	Omega       []float64
	Ax, Ay      []float64
	Alpha       []float64
}

// newSamples allocates a Samples of length n with every slice zeroed.
func newSamples(n int) *Samples {
	return &Samples{
		X: make([]float64, n), Y: make([]float64, n), Theta: make([]float64, n),
		Dt:    make([]float64, n),
		Vx:    make([]float64, n), Vy: make([]float64, n),
		Omega: make([]float64, n),
		Ax:    make([]float64, n), Ay: make([]float64, n),
		Alpha: make([]float64, n),
	}
}

// seedDt fills every sample's dt with the rough (wptCount*5)/S estimate
// §4.4 calls for — a bootstrap value only, distinct from the generator's
// own per-segment trapezoidal-profile estimate.
func seedDt(s *Samples, wptCount int) {
	n := len(s.Dt)
	if n == 0 {
		return
	}
	dt := (float64(wptCount) * 5.0) / float64(n)
	for i := range s.Dt {
		s.Dt[i] = dt
	}
}

// finiteDifference fills velocity/acceleration/angular fields by
// differencing consecutive samples and dividing by dt, with the first
// sample's rates left at rest (0). Heading differences use
// util.AngleModulus so a guess that wraps through +-pi does not produce a
// spurious near-2pi angular rate.
func finiteDifference(s *Samples) {
	for i := 1; i < len(s.X); i++ {
		dt := s.Dt[i]
		if dt == 0 {
			continue
		}
		s.Vx[i] = (s.X[i] - s.X[i-1]) / dt
		s.Vy[i] = (s.Y[i] - s.Y[i-1]) / dt
		s.Omega[i] = util.AngleModulus(s.Theta[i]-s.Theta[i-1]) / dt
	}
	for i := 1; i < len(s.X); i++ {
		dt := s.Dt[i]
		if dt == 0 {
			continue
		}
		s.Ax[i] = (s.Vx[i] - s.Vx[i-1]) / dt
		s.Ay[i] = (s.Vy[i] - s.Vy[i-1]) / dt
		s.Alpha[i] = (s.Omega[i] - s.Omega[i-1]) / dt
	}
}
