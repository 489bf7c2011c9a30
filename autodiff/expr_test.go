package autodiff

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestMulGradIsProductRule(t *testing.T) {
	x := Var(0, 3)
	y := Var(1, 4)
	z := Mul(x, y)
	test.That(t, z.Value, test.ShouldEqual, 12.0)
	test.That(t, z.Grad(0), test.ShouldEqual, 4.0)
	test.That(t, z.Grad(1), test.ShouldEqual, 3.0)
}

func TestHypotGrad(t *testing.T) {
	x := Var(0, 3)
	y := Var(1, 4)
	h := Hypot(x, y)
	test.That(t, h.Value, test.ShouldEqual, 5.0)
	test.That(t, h.Grad(0), test.ShouldAlmostEqual, 0.6, 1e-9)
	test.That(t, h.Grad(1), test.ShouldAlmostEqual, 0.8, 1e-9)
}

func TestSinCosGrad(t *testing.T) {
	x := Var(0, 0.5)
	s := Sin(x)
	c := Cos(x)
	test.That(t, s.Value, test.ShouldAlmostEqual, math.Sin(0.5), 1e-12)
	test.That(t, s.Grad(0), test.ShouldAlmostEqual, math.Cos(0.5), 1e-12)
	test.That(t, c.Grad(0), test.ShouldAlmostEqual, -math.Sin(0.5), 1e-12)
}

func TestClampSelectsActiveBranchGradient(t *testing.T) {
	x := Var(0, 5)
	clamped := Clamp(x, Constant(0), Constant(2))
	test.That(t, clamped.Value, test.ShouldEqual, 2.0)
	test.That(t, clamped.Grad(0), test.ShouldEqual, 0.0)

	y := Var(0, 1)
	clampedY := Clamp(y, Constant(0), Constant(2))
	test.That(t, clampedY.Value, test.ShouldEqual, 1.0)
	test.That(t, clampedY.Grad(0), test.ShouldEqual, 1.0)
}

func TestAddGradToAccumulatesSparseRow(t *testing.T) {
	x := Var(0, 1)
	y := Var(2, 1)
	e := Add(Mul(Constant(2), x), Mul(Constant(3), y))
	out := make([]float64, 3)
	e.AddGradTo(out, 1.0)
	test.That(t, out[0], test.ShouldEqual, 2.0)
	test.That(t, out[1], test.ShouldEqual, 0.0)
	test.That(t, out[2], test.ShouldEqual, 3.0)
}
