package path

import "github.com/SleipnirGroup/Choreo-sub000/geom2d"

// Drivetrain is the sealed capability every chassis model satisfies; sealed
// is unexported so the family stays closed to SwerveDrivetrain and
// DifferentialDrivetrain (§3), the same closed-family pattern the
// constraint package uses.
type Drivetrain interface {
	sealed()
}

// SwerveDrivetrain holds the physical parameters of an N-modular swerve
// chassis (§3). The generator models exactly four modules, but nothing here
// assumes that beyond the length of ModulePositions.
type SwerveDrivetrain struct {
	Mass                    float64
	MOI                     float64
	WheelRadius             float64
	WheelMaxAngularVelocity float64
	WheelMaxTorque          float64
	WheelCoF                float64
	ModulePositions         []geom2d.Translation2d
}

var _ Drivetrain = (*SwerveDrivetrain)(nil)

func (*SwerveDrivetrain) sealed() {}

// NewSwerveDrivetrain builds a swerve drivetrain description.
func NewSwerveDrivetrain(mass, moi, wheelRadius, wheelMaxAngularVelocity, wheelMaxTorque, wheelCoF float64, modulePositions []geom2d.Translation2d) *SwerveDrivetrain {
	return &SwerveDrivetrain{
		Mass:                    mass,
		MOI:                     moi,
		WheelRadius:             wheelRadius,
		WheelMaxAngularVelocity: wheelMaxAngularVelocity,
		WheelMaxTorque:          wheelMaxTorque,
		WheelCoF:                wheelCoF,
		ModulePositions:         modulePositions,
	}
}

// DifferentialDrivetrain holds the physical parameters of a two-driverail
// differential chassis (§3).
type DifferentialDrivetrain struct {
	Mass                    float64
	MOI                     float64
	WheelRadius             float64
	WheelMaxAngularVelocity float64
	WheelMaxTorque          float64
	WheelCoF                float64
	Trackwidth              float64
}

var _ Drivetrain = (*DifferentialDrivetrain)(nil)

func (*DifferentialDrivetrain) sealed() {}

// NewDifferentialDrivetrain builds a differential drivetrain description.
func NewDifferentialDrivetrain(mass, moi, wheelRadius, wheelMaxAngularVelocity, wheelMaxTorque, wheelCoF, trackwidth float64) *DifferentialDrivetrain {
	return &DifferentialDrivetrain{
		Mass:                    mass,
		MOI:                     moi,
		WheelRadius:             wheelRadius,
		WheelMaxAngularVelocity: wheelMaxAngularVelocity,
		WheelMaxTorque:          wheelMaxTorque,
		WheelCoF:                wheelCoF,
		Trackwidth:              trackwidth,
	}
}
