// Package solve implements the §6 "problem" interface the core trajectory
// generator consumes, backed concretely by github.com/go-nlopt/nlopt's
// LD_SLSQP algorithm (a gradient-based SQP solver, the closest available
// analogue to "an interior-point NLP with autodiff" in the example pack).
package solve

import (
	"github.com/go-nlopt/nlopt"

	"github.com/SleipnirGroup/Choreo-sub000/autodiff"
)

// ExitStatus mirrors the solver exit-status taxonomy of §6/§7: zero and
// positive non-callback codes are successes, negative codes and
// CallbackRequestedStop are failures, returned unchanged to the caller.
type ExitStatus int

const (
	// Success indicates the solver converged.
	Success ExitStatus = 0
	// CallbackRequestedStop indicates a user iteration callback asked the
	// solver to stop; it is negative and always a failure.
	CallbackRequestedStop ExitStatus = -1000
	// Failure is the generic negative exit status Solve returns whenever
	// solver setup or Optimize returns an error; the specific nlopt result
	// code is not inspected.
	Failure ExitStatus = -1
)

// IsFailure reports whether status represents a failed solve, per §6: all
// negative codes, plus CallbackRequestedStop, are failures.
func (s ExitStatus) IsFailure() bool {
	return s < 0
}

// Relation is the comparator of a constraint residual against zero.
type Relation int

const (
	// Eq requires Lhs == 0.
	Eq Relation = iota
	// LE requires Lhs <= 0.
	LE
	// GE requires Lhs >= 0.
	GE
)

// Constraint pairs a residual expression with how it must compare to zero.
type Constraint struct {
	Lhs autodiff.Sym
	Rel Relation
}

// IterationInfo is passed to registered callbacks once per rendered frame
// (§5's 60fps throttle is enforced by the caller of Problem, not here).
type IterationInfo struct {
	Iteration int
	X         []float64
}

// SolveOptions configures Solve; Tolerance defaults to 1e-4 (§6) when zero.
type SolveOptions struct {
	Tolerance   float64
	Diagnostics bool
	MaxEval     int
}

// Problem is the concrete §6 "problem" facility: it accumulates decision
// variables, an objective, and equality/inequality constraints expressed as
// autodiff.Sym, then drives go-nlopt's LD_SLSQP to a solution.
type Problem struct {
	numVars     int
	initial     []float64
	objective   autodiff.Sym
	constraints []Constraint
	callback    func(IterationInfo) bool
}

// NewProblem returns an empty problem.
func NewProblem() *Problem {
	return &Problem{}
}

// DecisionVariable allocates a fresh scalar decision variable seeded with
// initialValue and returns its Sym handle.
func (p *Problem) DecisionVariable(initialValue float64) autodiff.Sym {
	idx := p.numVars
	p.numVars++
	p.initial = append(p.initial, initialValue)
	return autodiff.VarSym(idx)
}

// SetInitialValue overwrites the warm-start value of an already-allocated
// decision variable, identified by the index order it was created in. Used
// by the initial-guess engine to seed variables after allocation.
func (p *Problem) SetInitialValue(index int, value float64) {
	p.initial[index] = value
}

// NumVars returns the number of decision variables allocated so far.
func (p *Problem) NumVars() int {
	return p.numVars
}

// Constraints returns the registered constraints, for inspection by tests
// and by callers that need to audit what a builder step produced.
func (p *Problem) Constraints() []Constraint {
	return p.constraints
}

// Initial returns a copy of the current warm-start vector.
func (p *Problem) Initial() []float64 {
	out := make([]float64, len(p.initial))
	copy(out, p.initial)
	return out
}

// Minimize sets (replacing any previous call) the scalar objective.
func (p *Problem) Minimize(e autodiff.Sym) {
	p.objective = e
}

// SubjectTo registers a constraint.
func (p *Problem) SubjectTo(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// SubjectToEq is shorthand for SubjectTo(Constraint{e, Eq}).
func (p *Problem) SubjectToEq(e autodiff.Sym) {
	p.SubjectTo(Constraint{Lhs: e, Rel: Eq})
}

// SubjectToLE is shorthand for SubjectTo(Constraint{e, LE}) (e <= 0).
func (p *Problem) SubjectToLE(e autodiff.Sym) {
	p.SubjectTo(Constraint{Lhs: e, Rel: LE})
}

// SubjectToGE is shorthand for SubjectTo(Constraint{e, GE}) (e >= 0),
// implemented as -e <= 0 since go-nlopt only exposes <= inequalities.
func (p *Problem) SubjectToGE(e autodiff.Sym) {
	p.SubjectTo(Constraint{Lhs: e, Rel: GE})
}

// RegisterIterationCallback installs the single iteration hook the solver
// calls synchronously once per iteration (§5). Only one callback is wired
// into nlopt directly; trajopt fans it out to all path-level callbacks in
// registration order and applies the 60fps throttle.
func (p *Problem) RegisterIterationCallback(fn func(IterationInfo) bool) {
	p.callback = fn
}

// Solve runs the solver to completion and returns the terminal exit status
// plus the final decision vector (valid even on failure, reflecting the
// best iterate reached).
func (p *Problem) Solve(opts SolveOptions) (ExitStatus, []float64) {
	tol := opts.Tolerance
	if tol == 0 {
		tol = 1e-4
	}

	if p.numVars == 0 {
		return Success, nil
	}

	opt, err := nlopt.NewNLopt(nlopt.LD_SLSQP, uint(p.numVars))
	if err != nil {
		return Failure, p.initial
	}
	defer opt.Destroy()

	if err := opt.SetXtolRel(tol); err != nil {
		return Failure, p.initial
	}
	if opts.MaxEval > 0 {
		_ = opt.SetMaxEval(opts.MaxEval)
	}

	iteration := 0
	stopRequested := false

	if err := opt.SetMinObjective(p.objectiveFunc(&iteration, &stopRequested)); err != nil {
		return Failure, p.initial
	}

	for _, c := range p.constraints {
		f := p.constraintFunc(c)
		var cerr error
		switch c.Rel {
		case Eq:
			cerr = opt.AddEqualityConstraint(f, 1e-8)
		case LE:
			cerr = opt.AddInequalityConstraint(f, 1e-8)
		case GE:
			negated := func(x, gradient []float64) float64 {
				v := f(x, gradient)
				for i := range gradient {
					gradient[i] = -gradient[i]
				}
				return -v
			}
			cerr = opt.AddInequalityConstraint(negated, 1e-8)
		}
		if cerr != nil {
			return Failure, p.initial
		}
	}

	xopt, _, err := opt.Optimize(p.initial)
	if stopRequested {
		return CallbackRequestedStop, xopt
	}
	if err != nil {
		return Failure, xopt
	}
	return Success, xopt
}

// objectiveFunc adapts the Sym objective into go-nlopt's (value,grad) Func
// shape, evaluating the iteration callback (if any) once per call.
func (p *Problem) objectiveFunc(iteration *int, stopRequested *bool) nlopt.Func {
	return func(x, gradient []float64) float64 {
		*iteration++
		if p.callback != nil && p.callback(IterationInfo{Iteration: *iteration, X: x}) {
			*stopRequested = true
		}
		if p.objective == nil {
			return 0
		}
		v := p.objective(x)
		if len(gradient) > 0 {
			for i := range gradient {
				gradient[i] = 0
			}
			v.AddGradTo(gradient, 1.0)
		}
		return v.Value
	}
}

// constraintFunc adapts a residual Sym into go-nlopt's Func shape; for LE
// and Eq constraints the residual is used as-is (lhs <= 0 / lhs == 0).
func (p *Problem) constraintFunc(c Constraint) nlopt.Func {
	return func(x, gradient []float64) float64 {
		v := c.Lhs(x)
		if len(gradient) > 0 {
			for i := range gradient {
				gradient[i] = 0
			}
			v.AddGradTo(gradient, 1.0)
		}
		return v.Value
	}
}
