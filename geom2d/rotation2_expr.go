package geom2d

import "github.com/SleipnirGroup/Choreo-sub000/autodiff"

// Rotation2Expr is the symbolic counterpart of Rotation2d: a (cos, sin)
// pair of Syms. Unlike the concrete family, nothing here enforces
// cos^2 + sin^2 == 1 automatically — callers that mix this with solver
// unknowns must impose the unit-vector constraint themselves (§4.1).
type Rotation2Expr struct {
	Cos, Sin autodiff.Sym
}

// ConstRotation2Expr lifts a concrete rotation into the expression family.
func ConstRotation2Expr(r Rotation2d) Rotation2Expr {
	return Rotation2Expr{Cos: autodiff.ConstSym(r.Cos), Sin: autodiff.ConstSym(r.Sin)}
}

// Add composes two rotations via the angle-sum identity on cos/sin.
func (r Rotation2Expr) Add(o Rotation2Expr) Rotation2Expr {
	return Rotation2Expr{
		Cos: r.Cos.Mul(o.Cos).Sub(r.Sin.Mul(o.Sin)),
		Sin: r.Cos.Mul(o.Sin).Add(r.Sin.Mul(o.Cos)),
	}
}

// UnitCircleResidual returns cos^2 + sin^2 - 1, the residual that must be
// constrained to zero whenever this rotation's components are genuine
// decision variables (the "unit-vector constraint" of §4.1).
func (r Rotation2Expr) UnitCircleResidual() autodiff.Sym {
	return r.Cos.Square().Add(r.Sin.Square()).AddC(-1)
}

// AngleEqualityResidual returns lhs.cos*rhs.sin - lhs.sin*rhs.cos, the
// residual that must be constrained to zero to express rotation equality
// on the unit-circle manifold (§4.1's angle-equality constraint).
func AngleEqualityResidual(lhs, rhs Rotation2Expr) autodiff.Sym {
	return lhs.Cos.Mul(rhs.Sin).Sub(lhs.Sin.Mul(rhs.Cos))
}
