package geom2d

// Pose2d composes a translation and a rotation.
type Pose2d struct {
	Translation Translation2d
	Rotation    Rotation2d
}

// NewPose2d builds a Pose2d from x, y and a heading in radians.
func NewPose2d(x, y, headingRadians float64) Pose2d {
	return Pose2d{
		Translation: Translation2d{X: x, Y: y},
		Rotation:    NewRotation2d(headingRadians),
	}
}

// TransformBy returns this pose composed with a relative transform: rotate
// the relative translation into the field frame, add, then compose the
// rotations.
func (p Pose2d) TransformBy(delta Pose2d) Pose2d {
	return Pose2d{
		Translation: p.Translation.Add(delta.Translation.RotateBy(p.Rotation)),
		Rotation:    p.Rotation.Add(delta.Rotation),
	}
}
