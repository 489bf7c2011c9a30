package guess

import (
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/path"
	"github.com/SleipnirGroup/Choreo-sub000/spline"
)

// Spline produces the spline initial guess of §4.4: a cubic-Hermite
// translation spline through all guess points, sampled uniformly in t per
// segment. Swerve fits one translation spline chained across the whole path
// (tangents continuous through every waypoint) and pairs each piece with its
// own spline.PoseSplineHolonomic, chaining heading independently between
// that piece's two waypoint headings; differential fits each segment's
// translation independently (no continuity across waypoints) and takes
// heading from the translation spline's own direction of travel, since a
// differential chassis can only move the way it is pointed.
func Spline(built *path.BuiltPath) *Samples {
	chained := isSwerve(built.Path.Drivetrain)

	var allPoses []geom2d.Pose2d
	for _, g := range built.GuessPoints {
		allPoses = append(allPoses, g...)
	}

	var globalPieces []spline.CubicHermiteSpline
	if chained && len(allPoses) >= 2 {
		globalPieces = chainedTranslationSplines(allPoses)
	}

	total := 1
	for _, n := range built.ControlIntervalCounts {
		total += n
	}
	s := newSamples(total)

	first := built.GuessPoints[0][0]
	s.X[0], s.Y[0], s.Theta[0] = first.Translation.X, first.Translation.Y, first.Rotation.Radians()

	idx := 1
	pieceOffset := 0
	for seg, n := range built.ControlIntervalCounts {
		prev := built.GuessPoints[seg][len(built.GuessPoints[seg])-1]
		segPoses := built.GuessPoints[seg+1]
		guessPointCount := len(segPoses)
		base := n / guessPointCount

		var pieces []spline.CubicHermiteSpline
		if chained {
			pieces = globalPieces[pieceOffset : pieceOffset+guessPointCount]
		} else {
			pieces = localTranslationSplines(prev, segPoses)
		}
		pieceOffset += guessPointCount

		for j := 0; j < guessPointCount; j++ {
			nSub := base
			if j == guessPointCount-1 {
				nSub = n - base*(guessPointCount-1)
			}

			var poseSpline spline.PoseSplineHolonomic
			if chained {
				r0 := prev.Rotation
				if j > 0 {
					r0 = segPoses[j-1].Rotation
				}
				poseSpline = spline.NewPoseSplineHolonomicFromSpline(pieces[j], r0, segPoses[j].Rotation)
			}

			for k := 0; k < nSub; k++ {
				localT := float64(k+1) / float64(nSub)

				if chained {
					pos, _ := poseSpline.Translation(localT)
					s.X[idx], s.Y[idx] = pos.X, pos.Y
					s.Theta[idx] = poseSpline.Heading(localT).Radians()
				} else {
					pos, _ := pieces[j].Point(localT)
					s.X[idx], s.Y[idx] = pos.X, pos.Y
					s.Theta[idx] = pieces[j].Heading(localT).Radians()
				}
				idx++
			}
		}
	}

	seedDt(s, len(built.Path.Waypoints))
	finiteDifference(s)
	return s
}

func isSwerve(d path.Drivetrain) bool {
	_, ok := d.(*path.SwerveDrivetrain)
	return ok
}

// chainedTranslationSplines fits one globally-continuous spline chain
// through every guess pose in the path, in order.
func chainedTranslationSplines(poses []geom2d.Pose2d) []spline.CubicHermiteSpline {
	translations := make([]geom2d.Translation2d, len(poses))
	for i, p := range poses {
		translations[i] = p.Translation
	}
	interior := translations[1 : len(translations)-1]
	start, end := spline.CubicControlVectorsFromWaypoints(poses[0], interior, poses[len(poses)-1])
	return spline.CubicSplinesFromControlVectors(start, interior, end)
}

// localTranslationSplines fits a spline chain scoped to a single segment,
// clamped at prev and the segment's own final pose, with no continuity
// into neighboring segments.
func localTranslationSplines(prev geom2d.Pose2d, segPoses []geom2d.Pose2d) []spline.CubicHermiteSpline {
	end := segPoses[len(segPoses)-1]
	interior := make([]geom2d.Translation2d, len(segPoses)-1)
	for i, p := range segPoses[:len(segPoses)-1] {
		interior[i] = p.Translation
	}
	start, endVec := spline.CubicControlVectorsFromWaypoints(prev, interior, end)
	return spline.CubicSplinesFromControlVectors(start, interior, endVec)
}
