// Package util implements the small numeric helpers trajopt_util.hpp groups
// together: sample indexing, linear and angular interpolation, and the
// trapezoidal-profile time estimator used to seed dt.
package util

import "math"

// GetIndex returns the flattened sample index for waypoint wptIndex, sample
// sampleIndex, given the per-segment control interval counts N:
// sum(N[:wptIndex]) + sampleIndex.
func GetIndex(n []int, wptIndex, sampleIndex int) int {
	idx := sampleIndex
	for k := 0; k < wptIndex && k < len(n); k++ {
		idx += n[k]
	}
	return idx
}

// Linspace returns count samples strictly between start (exclusive) and end
// (inclusive), i.e. the last of the count samples equals end.
func Linspace(start, end float64, count int) []float64 {
	out := make([]float64, count)
	step := (end - start) / float64(count)
	for i := 0; i < count; i++ {
		out[i] = start + step*float64(i+1)
	}
	return out
}

// AngleModulus wraps an angle (radians) into [-pi, pi); pi itself maps to -pi.
func AngleModulus(angle float64) float64 {
	twoPi := 2 * math.Pi
	a := math.Mod(angle+math.Pi, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a - math.Pi
}

// AngleLinspace returns count samples interpolating the angle from start to
// end across the wrapped minor-arc delta, so a guess from +175deg to -175deg
// traverses 10deg rather than 350deg. The last sample equals start+delta
// exactly (not renormalized), matching angle_linspace's contract.
func AngleLinspace(start, end float64, count int) []float64 {
	delta := AngleModulus(end - start)
	return Linspace(start, start+delta, count)
}

// CalculateTrapezoidalTime estimates the time to cover dist starting and
// ending at rest under a trapezoidal velocity profile with cruise speed
// vMax and acceleration aMax, continuous at the trapezoid/triangle boundary
// dist == vMax^2/aMax.
func CalculateTrapezoidalTime(dist, vMax, aMax float64) float64 {
	if dist <= 0 {
		return 0
	}
	if dist > vMax*vMax/aMax {
		return dist/vMax + vMax/aMax
	}
	return 2 * math.Sqrt(dist*aMax) / aMax
}
