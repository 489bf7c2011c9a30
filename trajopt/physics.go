package trajopt

import "github.com/SleipnirGroup/Choreo-sub000/geom2d"

// gravity is the constant acceleration §6's units section fixes for every
// friction-limit computation.
const gravity = 9.8

// wheelForceMax returns the per-wheel force cap of §4.3: the lesser of the
// motor's torque-derived force and its friction-derived share of the
// robot's weight.
func wheelForceMax(wheelMaxTorque, wheelRadius, wheelCoF, mass float64, numWheels int) float64 {
	motorLimit := wheelMaxTorque / wheelRadius
	frictionLimit := wheelCoF * (mass * gravity) / float64(numWheels)
	return min(motorLimit, frictionLimit)
}

// bootstrapSpeeds derives the v_max/a_max pair the per-segment trapezoidal-
// time bootstrap (§4.4) uses to seed dt, from a drivetrain's physical
// limits and its per-wheel force cap.
func bootstrapSpeeds(wheelRadius, wheelMaxAngularVelocity, fMax, mass float64, numWheels int) (vMax, aMax float64) {
	return wheelRadius * wheelMaxAngularVelocity, fMax * float64(numWheels) / mass
}

// minPairwiseDistance returns the smallest distance between any two of the
// given points, or 0 if fewer than two are given.
func minPairwiseDistance(points []geom2d.Translation2d) float64 {
	best := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Distance(points[j])
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
