// Package autodiff implements a forward-mode dual-number type that stands in
// for the nonlinear solver's symbolic expression variable. An Expr carries a
// scalar value plus a sparse gradient row against the decision vector, so
// that building an objective or constraint out of Exprs produces both the
// value and the gradient the solver needs in one pass.
package autodiff

import "math"

// Expr is a scalar value paired with its gradient against the decision
// vector. The gradient is sparse: only decision variables the expression
// actually depends on appear as keys. A concrete number lifted with
// Constant has an empty gradient.
type Expr struct {
	Value float64
	grad  map[int]float64
}

// Constant returns an Expr with no dependence on any decision variable.
func Constant(v float64) Expr {
	return Expr{Value: v}
}

// Var returns the Expr for decision variable index i, i.e. d/dx_i == 1.
func Var(i int, value float64) Expr {
	return Expr{Value: value, grad: map[int]float64{i: 1}}
}

// Grad returns the partial derivative with respect to decision variable i.
func (e Expr) Grad(i int) float64 {
	if e.grad == nil {
		return 0
	}
	return e.grad[i]
}

// AddGradTo accumulates this expression's gradient, scaled by coeff, into
// out (indexed by decision variable). Used by solve.Problem to assemble the
// dense gradient row nlopt expects from a small set of sparse Exprs.
func (e Expr) AddGradTo(out []float64, coeff float64) {
	for i, g := range e.grad {
		out[i] += coeff * g
	}
}

func merge(a, b map[int]float64, fa, fb func(float64) float64) map[int]float64 {
	if a == nil && b == nil {
		return nil
	}
	out := make(map[int]float64, len(a)+len(b))
	for i, g := range a {
		out[i] += fa(g)
	}
	for i, g := range b {
		out[i] += fb(g)
	}
	return out
}

func identity(g float64) float64 { return g }
func negate(g float64) float64   { return -g }
func scaleBy(k float64) func(float64) float64 {
	return func(g float64) float64 { return k * g }
}

// Add returns a + b.
func Add(a, b Expr) Expr {
	return Expr{Value: a.Value + b.Value, grad: merge(a.grad, b.grad, identity, identity)}
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return Expr{Value: a.Value - b.Value, grad: merge(a.grad, b.grad, identity, negate)}
}

// Neg returns -a.
func Neg(a Expr) Expr {
	return Expr{Value: -a.Value, grad: merge(a.grad, nil, negate, identity)}
}

// Mul returns a * b (product rule).
func Mul(a, b Expr) Expr {
	return Expr{
		Value: a.Value * b.Value,
		grad:  merge(a.grad, b.grad, scaleBy(b.Value), scaleBy(a.Value)),
	}
}

// Div returns a / b (quotient rule). It does not check for b.Value == 0;
// in that case the value and gradient follow IEEE float division and come
// out as ±Inf or NaN.
func Div(a, b Expr) Expr {
	inv := 1 / b.Value
	return Expr{
		Value: a.Value * inv,
		grad:  merge(a.grad, b.grad, scaleBy(inv), scaleBy(-a.Value*inv*inv)),
	}
}

// Scale returns k*a for a plain float64 k.
func Scale(k float64, a Expr) Expr {
	return Expr{Value: k * a.Value, grad: merge(a.grad, nil, scaleBy(k), identity)}
}

// AddC returns a + k for a plain float64 k.
func AddC(a Expr, k float64) Expr {
	return Expr{Value: a.Value + k, grad: a.grad}
}

// Sin returns sin(a).
func Sin(a Expr) Expr {
	return Expr{Value: math.Sin(a.Value), grad: merge(a.grad, nil, scaleBy(math.Cos(a.Value)), identity)}
}

// Cos returns cos(a).
func Cos(a Expr) Expr {
	return Expr{Value: math.Cos(a.Value), grad: merge(a.grad, nil, scaleBy(-math.Sin(a.Value)), identity)}
}

// Hypot returns sqrt(a^2 + b^2).
func Hypot(a, b Expr) Expr {
	h := math.Hypot(a.Value, b.Value)
	if h < 1e-12 {
		return Expr{Value: 0}
	}
	return Expr{
		Value: h,
		grad:  merge(a.grad, b.grad, scaleBy(a.Value/h), scaleBy(b.Value/h)),
	}
}

// Sign returns the sign of a (0 at a == 0), with zero gradient everywhere —
// the solver must not be asked to differentiate through a hard sign flip.
func Sign(a Expr) Expr {
	switch {
	case a.Value > 0:
		return Constant(1)
	case a.Value < 0:
		return Constant(-1)
	default:
		return Constant(0)
	}
}

// Abs returns |a|.
func Abs(a Expr) Expr {
	if a.Value < 0 {
		return Neg(a)
	}
	return a
}

// Min returns a smooth-safe min(a, b): the subgradient of the active branch.
func Min(a, b Expr) Expr {
	if a.Value <= b.Value {
		return a
	}
	return b
}

// Max returns a smooth-safe max(a, b): the subgradient of the active branch.
func Max(a, b Expr) Expr {
	if a.Value >= b.Value {
		return a
	}
	return b
}

// Clamp returns min(max(a, lo), hi) using Min/Max's subgradient selection,
// matching the original's "smooth (autodiff-safe) min/max" clamp.
func Clamp(a, lo, hi Expr) Expr {
	return Min(Max(a, lo), hi)
}

// Square returns a*a.
func Square(a Expr) Expr {
	return Mul(a, a)
}
