package guess

import (
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/path"
	"github.com/SleipnirGroup/Choreo-sub000/util"
)

// Linear produces the linear initial guess of §4.4: every segment's steps
// are divided evenly among its interior guess points, with x/y linearly
// interpolated and heading interpolated across the wrapped short arc.
func Linear(built *path.BuiltPath) *Samples {
	total := 1
	for _, n := range built.ControlIntervalCounts {
		total += n
	}
	s := newSamples(total)

	first := built.GuessPoints[0][0]
	s.X[0], s.Y[0], s.Theta[0] = first.Translation.X, first.Translation.Y, first.Rotation.Radians()

	idx := 1
	for seg, n := range built.ControlIntervalCounts {
		prev := built.GuessPoints[seg][len(built.GuessPoints[seg])-1]
		guessPointCount := len(built.GuessPoints[seg+1])
		base := n / guessPointCount

		sub := append([]geom2d.Pose2d{prev}, built.GuessPoints[seg+1]...)
		for j := 0; j < guessPointCount; j++ {
			nSub := base
			if j == guessPointCount-1 {
				nSub = n - base*(guessPointCount-1)
			}
			if nSub <= 0 {
				continue
			}
			start, end := sub[j], sub[j+1]
			xs := util.Linspace(start.Translation.X, end.Translation.X, nSub)
			ys := util.Linspace(start.Translation.Y, end.Translation.Y, nSub)
			thetas := util.AngleLinspace(start.Rotation.Radians(), end.Rotation.Radians(), nSub)
			for k := 0; k < nSub; k++ {
				s.X[idx], s.Y[idx], s.Theta[idx] = xs[k], ys[k], thetas[k]
				idx++
			}
		}
	}

	seedDt(s, len(built.Path.Waypoints))
	finiteDifference(s)
	return s
}
