package geom2d

import "github.com/SleipnirGroup/Choreo-sub000/autodiff"

// Translation2Expr is the symbolic counterpart of Translation2d, built on
// autodiff.Sym so its components may be decision variables evaluated once
// per solver iteration rather than baked to a single point.
type Translation2Expr struct {
	X, Y autodiff.Sym
}

// ConstTranslation2Expr lifts a concrete translation into the expression
// family.
func ConstTranslation2Expr(t Translation2d) Translation2Expr {
	return Translation2Expr{X: autodiff.ConstSym(t.X), Y: autodiff.ConstSym(t.Y)}
}

// Add returns t + o.
func (t Translation2Expr) Add(o Translation2Expr) Translation2Expr {
	return Translation2Expr{t.X.Add(o.X), t.Y.Add(o.Y)}
}

// Sub returns t - o.
func (t Translation2Expr) Sub(o Translation2Expr) Translation2Expr {
	return Translation2Expr{t.X.Sub(o.X), t.Y.Sub(o.Y)}
}

// Dot returns the scalar dot product t . o.
func (t Translation2Expr) Dot(o Translation2Expr) autodiff.Sym {
	return t.X.Mul(o.X).Add(t.Y.Mul(o.Y))
}

// Cross returns the scalar 2D cross product t.x*o.y - t.y*o.x.
func (t Translation2Expr) Cross(o Translation2Expr) autodiff.Sym {
	return t.X.Mul(o.Y).Sub(t.Y.Mul(o.X))
}

// SquaredNorm returns ||t||^2.
func (t Translation2Expr) SquaredNorm() autodiff.Sym {
	return t.Dot(t)
}

// Norm returns ||t||.
func (t Translation2Expr) Norm() autodiff.Sym {
	return autodiff.SymHypot(t.X, t.Y)
}

// Scale returns t scaled by the symbolic scalar k.
func (t Translation2Expr) Scale(k autodiff.Sym) Translation2Expr {
	return Translation2Expr{X: t.X.Mul(k), Y: t.Y.Mul(k)}
}

// RotateBy returns t rotated by r.
func (t Translation2Expr) RotateBy(r Rotation2Expr) Translation2Expr {
	return Translation2Expr{
		X: t.X.Mul(r.Cos).Sub(t.Y.Mul(r.Sin)),
		Y: t.X.Mul(r.Sin).Add(t.Y.Mul(r.Cos)),
	}
}
