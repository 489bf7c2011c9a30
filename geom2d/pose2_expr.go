package geom2d

// Pose2Expr is the symbolic counterpart of Pose2d.
type Pose2Expr struct {
	Translation Translation2Expr
	Rotation    Rotation2Expr
}

// ConstPose2Expr lifts a concrete pose into the expression family.
func ConstPose2Expr(p Pose2d) Pose2Expr {
	return Pose2Expr{
		Translation: ConstTranslation2Expr(p.Translation),
		Rotation:    ConstRotation2Expr(p.Rotation),
	}
}
