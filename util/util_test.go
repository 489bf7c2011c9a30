package util

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestGetIndex(t *testing.T) {
	n := []int{40, 40, 1}
	test.That(t, GetIndex(n, 0, 0), test.ShouldEqual, 0)
	test.That(t, GetIndex(n, 1, 0), test.ShouldEqual, 40)
	test.That(t, GetIndex(n, 2, 1), test.ShouldEqual, 81)
}

func TestLinspace(t *testing.T) {
	out := Linspace(0, 10, 5)
	test.That(t, len(out), test.ShouldEqual, 5)
	test.That(t, out[4], test.ShouldAlmostEqual, 10.0, 1e-9)
	test.That(t, out[0], test.ShouldAlmostEqual, 2.0, 1e-9)
}

func TestAngleLinspaceWrapsShortArc(t *testing.T) {
	start := math.Pi - 0.0872665 // ~175 deg
	end := -math.Pi + 0.0872665  // ~-175 deg
	out := AngleLinspace(start, end, 10)
	test.That(t, len(out), test.ShouldEqual, 10)
	test.That(t, out[9], test.ShouldAlmostEqual, start+AngleModulus(end-start), 1e-9)
	// the wrapped delta should be small (~10deg), not a near-2pi traversal.
	test.That(t, math.Abs(AngleModulus(end-start)), test.ShouldBeLessThan, 0.5)
}

func TestCalculateTrapezoidalTimeContinuousAtBoundary(t *testing.T) {
	vMax, aMax := 4.0, 2.0
	boundary := vMax * vMax / aMax
	below := CalculateTrapezoidalTime(boundary-1e-6, vMax, aMax)
	above := CalculateTrapezoidalTime(boundary+1e-6, vMax, aMax)
	test.That(t, below, test.ShouldAlmostEqual, above, 1e-4)
}

func TestCalculateTrapezoidalTimeZeroDistance(t *testing.T) {
	test.That(t, CalculateTrapezoidalTime(0, 4, 2), test.ShouldEqual, 0.0)
}
