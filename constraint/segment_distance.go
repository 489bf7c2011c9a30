package constraint

import (
	"github.com/SleipnirGroup/Choreo-sub000/autodiff"
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
)

// squaredPointSegmentDistance returns the squared distance from point to
// the segment [a, b], using the standard parameter clamp
// t = clamp(v.l / ||l||^2, 0, 1), with clamp implemented via the
// autodiff-safe Min/Max subgradient selection (Design Notes §9, "a
// non-smooth max/min of the autodiff engine is also acceptable provided
// the engine supports subgradients").
func squaredPointSegmentDistance(a, b, point geom2d.Translation2Expr) autodiff.Sym {
	l := b.Sub(a)
	v := point.Sub(a)
	lenSq := l.SquaredNorm()
	t := autodiff.SymClamp(v.Dot(l).Div(lenSq), autodiff.ConstSym(0), autodiff.ConstSym(1))
	closest := a.Add(l.Scale(t))
	return point.Sub(closest).SquaredNorm()
}
