package trajopt

import (
	"math"

	"github.com/pkg/errors"

	"github.com/SleipnirGroup/Choreo-sub000/autodiff"
	"github.com/SleipnirGroup/Choreo-sub000/choreolog"
	"github.com/SleipnirGroup/Choreo-sub000/constraint"
	"github.com/SleipnirGroup/Choreo-sub000/geom2d"
	"github.com/SleipnirGroup/Choreo-sub000/guess"
	trajpath "github.com/SleipnirGroup/Choreo-sub000/path"
	"github.com/SleipnirGroup/Choreo-sub000/solve"
	"github.com/SleipnirGroup/Choreo-sub000/util"
)

// SwerveSolution is the §3 Solution record for a swerve-drivetrain path:
// every slice has length S, module force slices have an inner slice per
// module. Dt[i] is the step duration from sample i-1 to sample i; Dt[0] is
// always 0 since the first sample has no preceding step.
type SwerveSolution struct {
	Dt                 []float64
	X, Y               []float64
	ThetaCos, ThetaSin []float64
	Vx, Vy, Omega      []float64
	Ax, Ay, Alpha      []float64
	ModuleForcesX      [][]float64
	ModuleForcesY      [][]float64
}

// Heading returns the scalar heading (radians) at sample i, derived via
// atan2(sin, cos) per §6's "Solution output" note.
func (s *SwerveSolution) Heading(i int) float64 {
	return math.Atan2(s.ThetaSin[i], s.ThetaCos[i])
}

// swerveVars indexes the decision variables allocated for one sample.
type swerveVars struct {
	x, y, cos, sin int
	vx, vy, omega  int
	ax, ay, alpha  int
	fx, fy         []int
}

// SwerveGenerator builds and solves the swerve NLP of §4.3 from a built
// path. It is single-use: construct a fresh one from the builder to
// regenerate.
type SwerveGenerator struct {
	built      *trajpath.BuiltPath
	drivetrain *trajpath.SwerveDrivetrain
	logger     choreolog.Logger
	state      State

	problem *solve.Problem
	samples []swerveVars
	dtVars  []autodiff.Sym
}

// NewSwerveGenerator validates built (drivetrain type, control interval
// count arity) and returns a Configured generator.
func NewSwerveGenerator(built *trajpath.BuiltPath, logger choreolog.Logger) (*SwerveGenerator, error) {
	dt, ok := built.Path.Drivetrain.(*trajpath.SwerveDrivetrain)
	if !ok {
		return nil, errors.New("trajopt: NewSwerveGenerator: path drivetrain is not a SwerveDrivetrain")
	}
	if len(built.ControlIntervalCounts) != len(built.Path.Waypoints)-1 {
		return nil, errors.Errorf("trajopt: control interval counts has length %d, want %d",
			len(built.ControlIntervalCounts), len(built.Path.Waypoints)-1)
	}
	if logger == nil {
		logger = choreolog.Nop()
	}
	return &SwerveGenerator{built: built, drivetrain: dt, logger: logger, state: Configured}, nil
}

// State returns the generator's current lifecycle state.
func (g *SwerveGenerator) State() State { return g.state }

// Generate runs the solver to completion and returns the sampled solution
// (valid even on failure, reflecting the best iterate reached) alongside
// the terminal exit status.
func (g *SwerveGenerator) Generate(opts GenerateOptions) (*SwerveSolution, solve.ExitStatus) {
	if g.state != Configured {
		g.logger.Warnw("generate called outside CONFIGURED state", "state", g.state.String())
		return nil, solve.Failure
	}
	trajpath.ResetCancellation()
	g.state = Generating
	g.logger.Infow("generating swerve trajectory", "waypoints", len(g.built.Path.Waypoints))

	var samples *guess.Samples
	if opts.Guess == SplineGuess {
		samples = guess.Spline(g.built)
	} else {
		samples = guess.Linear(g.built)
	}

	g.problem = solve.NewProblem()
	n := g.built.ControlIntervalCounts
	g.allocate(samples, n)

	g.applyObjective(n)
	g.applyKinematics(n)
	g.applyDynamics()
	g.applyTimeStepBounds()
	g.applyUserConstraints(n)

	dispatcher := newCallbackDispatcher(g.built.Path.Callbacks)
	g.problem.RegisterIterationCallback(func(info solve.IterationInfo) bool {
		return dispatcher.check(info.Iteration, func() trajpath.PartialSolution {
			return g.partialSolution(info.X)
		})
	})

	status, x := g.problem.Solve(opts.Solve)
	sol := g.sample(x)
	if status.IsFailure() {
		g.state = Failed
		g.logger.Warnw("swerve generation failed", "status", status)
	} else {
		g.state = Succeeded
	}
	return sol, status
}

func (g *SwerveGenerator) alloc(v float64) int {
	idx := g.problem.NumVars()
	g.problem.DecisionVariable(v)
	return idx
}

func (g *SwerveGenerator) sym(idx int) autodiff.Sym { return autodiff.VarSym(idx) }

// allocate creates one decision variable per sample field (seeded from the
// initial guess) plus one dt variable per segment (seeded from the
// trapezoidal-time bootstrap), matching the "all dt[i] in a segment are
// forced equal" invariant by construction rather than by an extra equality
// constraint set.
func (g *SwerveGenerator) allocate(samples *guess.Samples, n []int) {
	total := len(samples.X)
	numModules := len(g.drivetrain.ModulePositions)
	g.samples = make([]swerveVars, total)
	for i := 0; i < total; i++ {
		var v swerveVars
		v.x = g.alloc(samples.X[i])
		v.y = g.alloc(samples.Y[i])
		v.cos = g.alloc(math.Cos(samples.Theta[i]))
		v.sin = g.alloc(math.Sin(samples.Theta[i]))
		v.vx = g.alloc(samples.Vx[i])
		v.vy = g.alloc(samples.Vy[i])
		v.omega = g.alloc(samples.Omega[i])
		v.ax = g.alloc(samples.Ax[i])
		v.ay = g.alloc(samples.Ay[i])
		v.alpha = g.alloc(samples.Alpha[i])
		v.fx = make([]int, numModules)
		v.fy = make([]int, numModules)
		for m := 0; m < numModules; m++ {
			v.fx[m] = g.alloc(0)
			v.fy[m] = g.alloc(0)
		}
		g.samples[i] = v
	}

	fMax := wheelForceMax(g.drivetrain.WheelMaxTorque, g.drivetrain.WheelRadius, g.drivetrain.WheelCoF,
		g.drivetrain.Mass, max(numModules, 1))
	vMax, aMax := bootstrapSpeeds(g.drivetrain.WheelRadius, g.drivetrain.WheelMaxAngularVelocity, fMax,
		g.drivetrain.Mass, max(numModules, 1))

	g.dtVars = make([]autodiff.Sym, len(n))
	idx := 0
	for k, count := range n {
		next := idx + count
		dist := math.Hypot(samples.X[next]-samples.X[idx], samples.Y[next]-samples.Y[idx])
		dtGuess := util.CalculateTrapezoidalTime(dist, vMax, aMax)
		dtIdx := g.alloc(dtGuess)
		g.dtVars[k] = g.sym(dtIdx)
		idx = next
	}
}

func (g *SwerveGenerator) applyObjective(n []int) {
	total := autodiff.ConstSym(0)
	for k, count := range n {
		total = total.Add(g.dtVars[k].Scale(float64(count)))
	}
	g.problem.Minimize(total)
}

// applyKinematics imposes the explicit-Euler step of §4.3 between every
// adjacent sample pair within each segment.
func (g *SwerveGenerator) applyKinematics(n []int) {
	idx := 0
	for k, count := range n {
		dt := g.dtVars[k]
		for s := 0; s < count; s++ {
			g.applyStepKinematics(idx+s, idx+s+1, dt)
		}
		idx += count
	}
}

func (g *SwerveGenerator) applyStepKinematics(i, next int, dt autodiff.Sym) {
	a, b := g.samples[i], g.samples[next]
	xi, yi := g.sym(a.x), g.sym(a.y)
	vxi, vyi := g.sym(a.vx), g.sym(a.vy)
	axi, ayi := g.sym(a.ax), g.sym(a.ay)

	halfDtSq := dt.Mul(dt).Scale(0.5)
	wantX := xi.Add(vxi.Mul(dt)).Add(axi.Mul(halfDtSq))
	wantY := yi.Add(vyi.Mul(dt)).Add(ayi.Mul(halfDtSq))
	g.problem.SubjectToEq(g.sym(b.x).Sub(wantX))
	g.problem.SubjectToEq(g.sym(b.y).Sub(wantY))

	omegaDt := g.sym(a.omega).Mul(dt)
	rotI := geom2d.Rotation2Expr{Cos: g.sym(a.cos), Sin: g.sym(a.sin)}
	rotDelta := geom2d.Rotation2Expr{Cos: omegaDt.Cos(), Sin: omegaDt.Sin()}
	composed := rotI.Add(rotDelta)
	rotNext := geom2d.Rotation2Expr{Cos: g.sym(b.cos), Sin: g.sym(b.sin)}
	g.problem.SubjectToEq(geom2d.AngleEqualityResidual(rotNext, composed))

	g.problem.SubjectToEq(g.sym(b.vx).Sub(vxi.Add(axi.Mul(dt))))
	g.problem.SubjectToEq(g.sym(b.vy).Sub(vyi.Add(ayi.Mul(dt))))
	g.problem.SubjectToEq(g.sym(b.omega).Sub(g.sym(a.omega).Add(g.sym(a.alpha).Mul(dt))))
}

// applyDynamics imposes the net-force/torque balance and the per-module
// velocity/force bounds of §4.3 at every sample.
func (g *SwerveGenerator) applyDynamics() {
	mass, moi := g.drivetrain.Mass, g.drivetrain.MOI
	wheelBound := g.drivetrain.WheelRadius * g.drivetrain.WheelMaxAngularVelocity
	numModules := len(g.drivetrain.ModulePositions)
	fMax := wheelForceMax(g.drivetrain.WheelMaxTorque, g.drivetrain.WheelRadius, g.drivetrain.WheelCoF,
		mass, max(numModules, 1))

	for _, v := range g.samples {
		rot := geom2d.Rotation2Expr{Cos: g.sym(v.cos), Sin: g.sym(v.sin)}
		g.problem.SubjectToEq(rot.UnitCircleResidual())

		sumFx, sumFy, sumTau := autodiff.ConstSym(0), autodiff.ConstSym(0), autodiff.ConstSym(0)
		for m := 0; m < numModules; m++ {
			modulePos := geom2d.ConstTranslation2Expr(g.drivetrain.ModulePositions[m]).RotateBy(rot)
			fx, fy := g.sym(v.fx[m]), g.sym(v.fy[m])
			sumFx = sumFx.Add(fx)
			sumFy = sumFy.Add(fy)
			sumTau = sumTau.Add(modulePos.Cross(geom2d.Translation2Expr{X: fx, Y: fy}))

			vModX := g.sym(v.vx).Sub(g.sym(v.omega).Mul(modulePos.Y))
			vModY := g.sym(v.vy).Add(g.sym(v.omega).Mul(modulePos.X))
			vModSq := vModX.Square().Add(vModY.Square())
			g.problem.SubjectToLE(vModSq.AddC(-wheelBound * wheelBound))

			fSq := fx.Square().Add(fy.Square())
			g.problem.SubjectToLE(fSq.AddC(-fMax * fMax))
		}

		g.problem.SubjectToEq(sumFx.Sub(g.sym(v.ax).Scale(mass)))
		g.problem.SubjectToEq(sumFy.Sub(g.sym(v.ay).Scale(mass)))
		g.problem.SubjectToEq(sumTau.Sub(g.sym(v.alpha).Scale(moi)))
	}
}

// applyTimeStepBounds imposes 0 <= dt <= 3 on every segment, plus the
// module-spacing chord bound for swerve.
func (g *SwerveGenerator) applyTimeStepBounds() {
	minWidth := minPairwiseDistance(g.drivetrain.ModulePositions)
	chordRate := g.drivetrain.WheelRadius * g.drivetrain.WheelMaxAngularVelocity
	for _, dt := range g.dtVars {
		g.problem.SubjectToGE(dt)
		g.problem.SubjectToLE(dt.AddC(-3))
		if minWidth > 0 {
			g.problem.SubjectToLE(dt.Scale(chordRate).AddC(-minWidth))
		}
	}
}

// applyUserConstraints applies waypoint constraints at each waypoint's own
// sample, and each waypoint's segment constraints at every sample of the
// segment leading to it (§4.3).
func (g *SwerveGenerator) applyUserConstraints(n []int) {
	wpts := g.built.Path.Waypoints
	for w, wpt := range wpts {
		k := g.kinematicsAt(util.GetIndex(n, w, 0))
		for _, c := range wpt.WaypointConstraints {
			c.Apply(g.problem, k)
		}
	}
	idx := 0
	for segIdx, count := range n {
		downstream := wpts[segIdx+1]
		for s := 0; s < count; s++ {
			k := g.kinematicsAt(idx + s)
			for _, c := range downstream.SegmentConstraints {
				c.Apply(g.problem, k)
			}
		}
		idx += count
	}
}

func (g *SwerveGenerator) kinematicsAt(i int) constraint.Kinematics {
	v := g.samples[i]
	return constraint.Kinematics{
		Pose: geom2d.Pose2Expr{
			Translation: geom2d.Translation2Expr{X: g.sym(v.x), Y: g.sym(v.y)},
			Rotation:    geom2d.Rotation2Expr{Cos: g.sym(v.cos), Sin: g.sym(v.sin)},
		},
		LinearVel:  geom2d.Translation2Expr{X: g.sym(v.vx), Y: g.sym(v.vy)},
		AngularVel: g.sym(v.omega),
		LinearAcc:  geom2d.Translation2Expr{X: g.sym(v.ax), Y: g.sym(v.ay)},
		AngularAcc: g.sym(v.alpha),
	}
}

func (g *SwerveGenerator) partialSolution(x []float64) trajpath.PartialSolution {
	n := len(g.samples)
	sol := trajpath.PartialSolution{X: make([]float64, n), Y: make([]float64, n), Heading: make([]float64, n)}
	for i, v := range g.samples {
		sol.X[i], sol.Y[i] = x[v.x], x[v.y]
		sol.Heading[i] = math.Atan2(x[v.sin], x[v.cos])
	}
	return sol
}

func (g *SwerveGenerator) sample(x []float64) *SwerveSolution {
	if x == nil {
		return nil
	}
	n := len(g.samples)
	sol := &SwerveSolution{
		Dt: make([]float64, n), X: make([]float64, n), Y: make([]float64, n),
		ThetaCos: make([]float64, n), ThetaSin: make([]float64, n),
		Vx: make([]float64, n), Vy: make([]float64, n), Omega: make([]float64, n),
		Ax: make([]float64, n), Ay: make([]float64, n), Alpha: make([]float64, n),
		ModuleForcesX: make([][]float64, n), ModuleForcesY: make([][]float64, n),
	}

	idx := 0
	for k, count := range g.built.ControlIntervalCounts {
		dtVal := g.dtVars[k](x).Value
		for s := 1; s <= count; s++ {
			sol.Dt[idx+s] = dtVal
		}
		idx += count
	}

	for i, v := range g.samples {
		sol.X[i], sol.Y[i] = x[v.x], x[v.y]
		sol.ThetaCos[i], sol.ThetaSin[i] = x[v.cos], x[v.sin]
		sol.Vx[i], sol.Vy[i], sol.Omega[i] = x[v.vx], x[v.vy], x[v.omega]
		sol.Ax[i], sol.Ay[i], sol.Alpha[i] = x[v.ax], x[v.ay], x[v.alpha]
		sol.ModuleForcesX[i] = make([]float64, len(v.fx))
		sol.ModuleForcesY[i] = make([]float64, len(v.fy))
		for m := range v.fx {
			sol.ModuleForcesX[i][m] = x[v.fx[m]]
			sol.ModuleForcesY[i][m] = x[v.fy[m]]
		}
	}
	return sol
}
