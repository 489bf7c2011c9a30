package path

import "github.com/SleipnirGroup/Choreo-sub000/geom2d"

// Bumper is a polygon in the robot body frame with a safety distance (§3).
// Corners are wound consistently (front-left, front-right, back-right,
// back-left for the rectangular case) so edge-walking helpers can pair
// Corners[idx] with Corners[(idx+1)%len(Corners)].
type Bumper struct {
	Corners []geom2d.Translation2d
	Safety  float64
}

// NewRectangularBumper builds the four-corner bumper pushed by the
// builder's SetBumpers call: front/back are the forward/backward extents
// from the robot origin, left/right the lateral extents, all in meters.
func NewRectangularBumper(front, left, right, back, safety float64) Bumper {
	return Bumper{
		Corners: []geom2d.Translation2d{
			{X: front, Y: left},
			{X: front, Y: -right},
			{X: -back, Y: -right},
			{X: -back, Y: left},
		},
		Safety: safety,
	}
}
