package autodiff

// Sym is a symbolic scalar: a recipe that, given the solver's current trial
// point x, produces the Expr (value + gradient) for this expression at that
// point. This is the Go rendering of the original's ExpressionVariable — a
// graph built once while assembling the NLP and evaluated once per solver
// iteration, rather than a one-shot Expr baked to a single x. Composing Syms
// with the methods below builds the graph; nothing is evaluated until the
// solver calls it with a concrete x.
type Sym func(x []float64) Expr

// ConstSym lifts a plain float64 into a Sym with no decision-variable
// dependence.
func ConstSym(v float64) Sym {
	return func(x []float64) Expr { return Constant(v) }
}

// VarSym returns the Sym for decision variable index i.
func VarSym(i int) Sym {
	return func(x []float64) Expr { return Var(i, x[i]) }
}

// Add returns a + b.
func (a Sym) Add(b Sym) Sym {
	return func(x []float64) Expr { return Add(a(x), b(x)) }
}

// Sub returns a - b.
func (a Sym) Sub(b Sym) Sym {
	return func(x []float64) Expr { return Sub(a(x), b(x)) }
}

// Mul returns a * b.
func (a Sym) Mul(b Sym) Sym {
	return func(x []float64) Expr { return Mul(a(x), b(x)) }
}

// Div returns a / b.
func (a Sym) Div(b Sym) Sym {
	return func(x []float64) Expr { return Div(a(x), b(x)) }
}

// Neg returns -a.
func (a Sym) Neg() Sym {
	return func(x []float64) Expr { return Neg(a(x)) }
}

// Scale returns k*a.
func (a Sym) Scale(k float64) Sym {
	return func(x []float64) Expr { return Scale(k, a(x)) }
}

// AddC returns a + k.
func (a Sym) AddC(k float64) Sym {
	return func(x []float64) Expr { return AddC(a(x), k) }
}

// Sin returns sin(a).
func (a Sym) Sin() Sym {
	return func(x []float64) Expr { return Sin(a(x)) }
}

// Cos returns cos(a).
func (a Sym) Cos() Sym {
	return func(x []float64) Expr { return Cos(a(x)) }
}

// SymHypot returns sqrt(a^2+b^2).
func SymHypot(a, b Sym) Sym {
	return func(x []float64) Expr { return Hypot(a(x), b(x)) }
}

// Sign returns the sign of a, zero gradient.
func (a Sym) Sign() Sym {
	return func(x []float64) Expr { return Sign(a(x)) }
}

// Abs returns |a|.
func (a Sym) Abs() Sym {
	return func(x []float64) Expr { return Abs(a(x)) }
}

// SymMin returns a smooth-safe min(a, b).
func SymMin(a, b Sym) Sym {
	return func(x []float64) Expr { return Min(a(x), b(x)) }
}

// SymMax returns a smooth-safe max(a, b).
func SymMax(a, b Sym) Sym {
	return func(x []float64) Expr { return Max(a(x), b(x)) }
}

// SymClamp returns min(max(a, lo), hi).
func SymClamp(a, lo, hi Sym) Sym {
	return func(x []float64) Expr { return Clamp(a(x), lo(x), hi(x)) }
}

// Square returns a*a.
func (a Sym) Square() Sym {
	return func(x []float64) Expr { return Square(a(x)) }
}
