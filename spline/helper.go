package spline

import "github.com/SleipnirGroup/Choreo-sub000/geom2d"

// PointControlVector bundles the X and Y ControlVectors at one spline
// endpoint.
type PointControlVector struct {
	X, Y ControlVector
}

// CubicControlVectorsFromWaypoints derives clamped endpoint control vectors
// for a cubic spline running from start through the given interior points
// to end. Each endpoint's tangent points along that endpoint pose's own
// heading; its magnitude is 1.2 times the distance to the nearest interior
// point (or to the other endpoint, if there are none) — the heuristic trajoptlib uses to keep the fitted spline
// from looping back on itself near a sharp heading.
func CubicControlVectorsFromWaypoints(start geom2d.Pose2d, interior []geom2d.Translation2d, end geom2d.Pose2d) (startVec, endVec PointControlVector) {
	startTarget := end.Translation
	if len(interior) > 0 {
		startTarget = interior[0]
	}
	startVec = pointControlVector(1.2*start.Translation.Distance(startTarget), start)

	endTarget := start.Translation
	if len(interior) > 0 {
		endTarget = interior[len(interior)-1]
	}
	endVec = pointControlVector(1.2*end.Translation.Distance(endTarget), end)
	return startVec, endVec
}

func pointControlVector(tangentMagnitude float64, p geom2d.Pose2d) PointControlVector {
	return PointControlVector{
		X: ControlVector{Position: p.Translation.X, Velocity: tangentMagnitude * p.Rotation.Cos},
		Y: ControlVector{Position: p.Translation.Y, Velocity: tangentMagnitude * p.Rotation.Sin},
	}
}

// CubicSplinesFromControlVectors fits a chain of cubic Hermite splines
// through the clamped start/end control vectors and the given interior
// waypoints, solving for the interior tangents that keep the whole chain's
// curvature continuous. Mirrors trajoptlib's three-way split on interior
// waypoint count: none, exactly one (closed form), and two or more (a
// tridiagonal system solved with the Thomas algorithm).
func CubicSplinesFromControlVectors(start PointControlVector, waypoints []geom2d.Translation2d, end PointControlVector) []CubicHermiteSpline {
	switch {
	case len(waypoints) == 0:
		return []CubicHermiteSpline{NewCubicHermiteSpline(start.X, end.X, start.Y, end.Y)}

	case len(waypoints) == 1:
		xDeriv := (3*(end.X.Position-start.X.Position) - end.X.Velocity - start.X.Velocity) / 4.0
		yDeriv := (3*(end.Y.Position-start.Y.Position) - end.Y.Velocity - start.Y.Velocity) / 4.0
		midX := ControlVector{Position: waypoints[0].X, Velocity: xDeriv}
		midY := ControlVector{Position: waypoints[0].Y, Velocity: yDeriv}
		return []CubicHermiteSpline{
			NewCubicHermiteSpline(start.X, midX, start.Y, midY),
			NewCubicHermiteSpline(midX, end.X, midY, end.Y),
		}

	default:
		pts := make([]geom2d.Translation2d, 0, len(waypoints)+2)
		pts = append(pts, geom2d.Translation2d{X: start.X.Position, Y: start.Y.Position})
		pts = append(pts, waypoints...)
		pts = append(pts, geom2d.Translation2d{X: end.X.Position, Y: end.Y.Position})

		n := len(pts) - 2
		a := make([]float64, n)
		b := make([]float64, n)
		c := make([]float64, n)
		dx := make([]float64, n)
		dy := make([]float64, n)
		for i := range b {
			b[i] = 4.0
		}
		for i := 1; i < n; i++ {
			a[i] = 1
		}
		for i := 0; i < n-1; i++ {
			c[i] = 1
		}

		dx[0] = 3*(pts[2].X-pts[0].X) - start.X.Velocity
		dy[0] = 3*(pts[2].Y-pts[0].Y) - start.Y.Velocity
		for i := 1; i < n-1; i++ {
			dx[i] = 3 * (pts[i+2].X - pts[i].X)
			dy[i] = 3 * (pts[i+2].Y - pts[i].Y)
		}
		dx[n-1] = 3*(pts[len(pts)-1].X-pts[len(pts)-3].X) - end.X.Velocity
		dy[n-1] = 3*(pts[len(pts)-1].Y-pts[len(pts)-3].Y) - end.Y.Velocity

		fx := thomasAlgorithm(a, b, c, dx)
		fy := thomasAlgorithm(a, b, c, dy)

		fx = append(append([]float64{start.X.Velocity}, fx...), end.X.Velocity)
		fy = append(append([]float64{start.Y.Velocity}, fy...), end.Y.Velocity)

		splines := make([]CubicHermiteSpline, 0, len(fx)-1)
		for i := 0; i < len(fx)-1; i++ {
			splines = append(splines, NewCubicHermiteSpline(
				ControlVector{Position: pts[i].X, Velocity: fx[i]},
				ControlVector{Position: pts[i+1].X, Velocity: fx[i+1]},
				ControlVector{Position: pts[i].Y, Velocity: fy[i]},
				ControlVector{Position: pts[i+1].Y, Velocity: fy[i+1]},
			))
		}
		return splines
	}
}

// thomasAlgorithm solves the tridiagonal system with sub-diagonal a,
// diagonal b, super-diagonal c, and right-hand side d, all of length n.
// a[0] and c[n-1] are unused (the system has no entries there).
func thomasAlgorithm(a, b, c, d []float64) []float64 {
	n := len(d)
	cStar := make([]float64, n)
	dStar := make([]float64, n)

	cStar[0] = c[0] / b[0]
	dStar[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		m := 1.0 / (b[i] - a[i]*cStar[i-1])
		cStar[i] = c[i] * m
		dStar[i] = (d[i] - a[i]*dStar[i-1]) * m
	}

	f := make([]float64, n)
	f[n-1] = dStar[n-1]
	for i := n - 2; i >= 0; i-- {
		f[i] = dStar[i] - cStar[i]*f[i+1]
	}
	return f
}
