package trajopt

import (
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

// DifferentialSolution is the §3 Solution record for a differential
// (two-rail) drivetrain path. Dt[i] is the step duration from sample i-1 to
// sample i; Dt[0] is always 0 since the first sample has no preceding step.
type DifferentialSolution struct {
	Dt            []float64
	X, Y, Heading []float64
	Vl, Vr        []float64
	Al, Ar        []float64
	Fl, Fr        []float64
}

// diffVars indexes the five-state/two-input decision variables of one
// collocation node (§4.3's "(x,y,theta,vl,vr)" state with "(Fl,Fr)" input).
// Rail accelerations are not decision variables: they are the algebraic
// image of (fl, fr) under the B matrix, computed on demand.
type diffVars struct {
	x, y, theta int
	vl, vr      int
	fl, fr      int
}

// DifferentialGenerator builds and solves the Hermite-Simpson collocation
// NLP of §4.3 for a two-rail differential chassis.
type DifferentialGenerator struct {
	built      *trajpath.BuiltPath
	drivetrain *trajpath.DifferentialDrivetrain
	logger     choreolog.Logger
	state      State

	problem *solve.Problem
	nodes   []diffVars
	dtVars  []autodiff.Sym
}

// NewDifferentialGenerator validates built and returns a Configured
// generator.
func NewDifferentialGenerator(built *trajpath.BuiltPath, logger choreolog.Logger) (*DifferentialGenerator, error) {
	dt, ok := built.Path.Drivetrain.(*trajpath.DifferentialDrivetrain)
	if !ok {
		return nil, errors.New("trajopt: NewDifferentialGenerator: path drivetrain is not a DifferentialDrivetrain")
	}
	if len(built.ControlIntervalCounts) != len(built.Path.Waypoints)-1 {
		return nil, errors.Errorf("trajopt: control interval counts has length %d, want %d",
			len(built.ControlIntervalCounts), len(built.Path.Waypoints)-1)
	}
	if logger == nil {
		logger = choreolog.Nop()
	}
	return &DifferentialGenerator{built: built, drivetrain: dt, logger: logger, state: Configured}, nil
}

// State returns the generator's current lifecycle state.
func (g *DifferentialGenerator) State() State { return g.state }

// Generate runs the solver to completion and returns the sampled solution
// alongside the terminal exit status.
func (g *DifferentialGenerator) Generate(opts GenerateOptions) (*DifferentialSolution, solve.ExitStatus) {
	if g.state != Configured {
		g.logger.Warnw("generate called outside CONFIGURED state", "state", g.state.String())
		return nil, solve.Failure
	}
	trajpath.ResetCancellation()
	g.state = Generating
	g.logger.Infow("generating differential trajectory", "waypoints", len(g.built.Path.Waypoints))

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
	g.applyCollocation(n)
	g.applyBounds()
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
		g.logger.Warnw("differential generation failed", "status", status)
	} else {
		g.state = Succeeded
	}
	return sol, status
}

func (g *DifferentialGenerator) alloc(v float64) int {
	idx := g.problem.NumVars()
	g.problem.DecisionVariable(v)
	return idx
}

func (g *DifferentialGenerator) sym(idx int) autodiff.Sym { return autodiff.VarSym(idx) }

// allocate creates one decision variable per node field (seeded from the
// initial guess, with rail velocities derived from the chassis twist and
// trackwidth) plus one dt variable per segment.
func (g *DifferentialGenerator) allocate(samples *guess.Samples, n []int) {
	total := len(samples.X)
	rb := g.drivetrain.Trackwidth / 2

	g.nodes = make([]diffVars, total)
	for i := 0; i < total; i++ {
		vl := samples.Vx[i] - samples.Omega[i]*rb
		vr := samples.Vx[i] + samples.Omega[i]*rb

		var v diffVars
		v.x = g.alloc(samples.X[i])
		v.y = g.alloc(samples.Y[i])
		v.theta = g.alloc(samples.Theta[i])
		v.vl = g.alloc(vl)
		v.vr = g.alloc(vr)
		v.fl = g.alloc(0)
		v.fr = g.alloc(0)
		g.nodes[i] = v
	}

	fMax := wheelForceMax(g.drivetrain.WheelMaxTorque, g.drivetrain.WheelRadius, g.drivetrain.WheelCoF,
		g.drivetrain.Mass, 2)
	vMax, aMax := bootstrapSpeeds(g.drivetrain.WheelRadius, g.drivetrain.WheelMaxAngularVelocity, fMax,
		g.drivetrain.Mass, 2)

	g.dtVars = make([]autodiff.Sym, len(n))
	idx := 0
	for k, count := range n {
		next := idx + count
		dist := geom2d.Translation2d{X: samples.X[next], Y: samples.Y[next]}.Distance(
			geom2d.Translation2d{X: samples.X[idx], Y: samples.Y[idx]})
		dtGuess := util.CalculateTrapezoidalTime(dist, vMax, aMax)
		dtIdx := g.alloc(dtGuess)
		g.dtVars[k] = g.sym(dtIdx)
		idx = next
	}
}

func (g *DifferentialGenerator) applyObjective(n []int) {
	total := autodiff.ConstSym(0)
	for k, count := range n {
		total = total.Add(g.dtVars[k].Scale(float64(count)))
	}
	g.problem.Minimize(total)
}

// nodeState returns the node's 5-state (x, y, theta, vl, vr) as one array of
// plain Syms for the dynamics map below.
func (g *DifferentialGenerator) nodeState(v diffVars) [5]autodiff.Sym {
	return [5]autodiff.Sym{g.sym(v.x), g.sym(v.y), g.sym(v.theta), g.sym(v.vl), g.sym(v.vr)}
}

// railAccel maps rail forces to rail accelerations through the B matrix of
// §4.3: B = [[1/m+rb^2/J, 1/m-rb^2/J], [1/m-rb^2/J, 1/m+rb^2/J]], rb half
// the trackwidth, coupling the two rails through the chassis's moment of
// inertia.
func (g *DifferentialGenerator) railAccel(fl, fr autodiff.Sym) (al, ar autodiff.Sym) {
	mass, moi, rb := g.drivetrain.Mass, g.drivetrain.MOI, g.drivetrain.Trackwidth/2
	b11 := 1/mass + rb*rb/moi
	b12 := 1/mass - rb*rb/moi
	al = fl.Scale(b11).Add(fr.Scale(b12))
	ar = fl.Scale(b12).Add(fr.Scale(b11))
	return al, ar
}

// dynamics returns d/dt of the 5-state given state x and rail forces
// (fl, fr): the nonholonomic kinematics (x' = v*cos(theta), y' = v*sin
// (theta), theta' = (vr-vl)/track) composed with railAccel.
func (g *DifferentialGenerator) dynamics(x [5]autodiff.Sym, fl, fr autodiff.Sym) [5]autodiff.Sym {
	rb := g.drivetrain.Trackwidth / 2
	theta, vl, vr := x[2], x[3], x[4]
	v := vl.Add(vr).Scale(0.5)
	cos, sin := theta.Cos(), theta.Sin()
	al, ar := g.railAccel(fl, fr)

	return [5]autodiff.Sym{
		v.Mul(cos),
		v.Mul(sin),
		vr.Sub(vl).Scale(1 / (2 * rb)),
		al,
		ar,
	}
}

// applyCollocation imposes the Hermite-Simpson defect equation of §4.3
// between every adjacent node pair: the midpoint state/input are built from
// the two endpoint states/derivatives, and the defect ties the endpoint
// state difference to the average derivative plus a derivative-difference
// correction.
func (g *DifferentialGenerator) applyCollocation(n []int) {
	idx := 0
	for k, count := range n {
		dt := g.dtVars[k]
		for s := 0; s < count; s++ {
			g.applyStepCollocation(idx+s, idx+s+1, dt)
		}
		idx += count
	}
}

func (g *DifferentialGenerator) applyStepCollocation(i, next int, dt autodiff.Sym) {
	a, b := g.nodes[i], g.nodes[next]
	xk, xk1 := g.nodeState(a), g.nodeState(b)
	flk, frk := g.sym(a.fl), g.sym(a.fr)
	flk1, frk1 := g.sym(b.fl), g.sym(b.fr)

	fk := g.dynamics(xk, flk, frk)
	fk1 := g.dynamics(xk1, flk1, frk1)

	dtOverEight := dt.Scale(0.125)
	var xc [5]autodiff.Sym
	for i2 := range xc {
		xc[i2] = xk[i2].Add(xk1[i2]).Scale(0.5).Add(fk[i2].Sub(fk1[i2]).Mul(dtOverEight))
	}
	flc := flk.Add(flk1).Scale(0.5)
	frc := frk.Add(frk1).Scale(0.5)
	fc := g.dynamics(xc, flc, frc)

	coeff := autodiff.ConstSym(1.5).Div(dt)
	for i2 := range xk {
		lhs := coeff.Mul(xk[i2].Sub(xk1[i2])).Neg().Sub(fk[i2].Add(fk1[i2]).Scale(0.25))
		g.problem.SubjectToEq(lhs.Sub(fc[i2]))
	}
}

// applyBounds imposes the per-rail speed and force bounds of §4.3.
func (g *DifferentialGenerator) applyBounds() {
	wheelBound := g.drivetrain.WheelRadius * g.drivetrain.WheelMaxAngularVelocity
	fMax := wheelForceMax(g.drivetrain.WheelMaxTorque, g.drivetrain.WheelRadius, g.drivetrain.WheelCoF,
		g.drivetrain.Mass, 2)
	for _, v := range g.nodes {
		vl, vr := g.sym(v.vl), g.sym(v.vr)
		g.problem.SubjectToLE(vl.Square().AddC(-wheelBound * wheelBound))
		g.problem.SubjectToLE(vr.Square().AddC(-wheelBound * wheelBound))

		fl, fr := g.sym(v.fl), g.sym(v.fr)
		g.problem.SubjectToLE(fl.Square().AddC(-fMax * fMax))
		g.problem.SubjectToLE(fr.Square().AddC(-fMax * fMax))
	}
}

func (g *DifferentialGenerator) applyTimeStepBounds() {
	for _, dt := range g.dtVars {
		g.problem.SubjectToGE(dt)
		g.problem.SubjectToLE(dt.AddC(-3))
	}
}

// applyUserConstraints mirrors SwerveGenerator's waypoint/segment
// application, differing only in how Kinematics is assembled since the
// differential state carries a scalar heading rather than (cos, sin).
func (g *DifferentialGenerator) applyUserConstraints(n []int) {
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

func (g *DifferentialGenerator) kinematicsAt(i int) constraint.Kinematics {
	v := g.nodes[i]
	rb := g.drivetrain.Trackwidth / 2
	theta := g.sym(v.theta)
	rot := geom2d.Rotation2Expr{Cos: theta.Cos(), Sin: theta.Sin()}
	vl, vr := g.sym(v.vl), g.sym(v.vr)
	al, ar := g.railAccel(g.sym(v.fl), g.sym(v.fr))
	vTrans := vl.Add(vr).Scale(0.5)
	aTrans := al.Add(ar).Scale(0.5)
	omega := vr.Sub(vl).Scale(1 / (2 * rb))
	alpha := ar.Sub(al).Scale(1 / (2 * rb))

	return constraint.Kinematics{
		Pose: geom2d.Pose2Expr{
			Translation: geom2d.Translation2Expr{X: g.sym(v.x), Y: g.sym(v.y)},
			Rotation:    rot,
		},
		LinearVel:  geom2d.Translation2Expr{X: vTrans.Mul(rot.Cos), Y: vTrans.Mul(rot.Sin)},
		AngularVel: omega,
		LinearAcc:  geom2d.Translation2Expr{X: aTrans.Mul(rot.Cos), Y: aTrans.Mul(rot.Sin)},
		AngularAcc: alpha,
	}
}

func (g *DifferentialGenerator) partialSolution(x []float64) trajpath.PartialSolution {
	n := len(g.nodes)
	sol := trajpath.PartialSolution{X: make([]float64, n), Y: make([]float64, n), Heading: make([]float64, n)}
	for i, v := range g.nodes {
		sol.X[i], sol.Y[i], sol.Heading[i] = x[v.x], x[v.y], x[v.theta]
	}
	return sol
}

// railAccelValues is railAccel's concrete-float64 counterpart, used when
// sampling a solved decision vector rather than building the symbolic
// graph.
func (g *DifferentialGenerator) railAccelValues(fl, fr float64) (al, ar float64) {
	mass, moi, rb := g.drivetrain.Mass, g.drivetrain.MOI, g.drivetrain.Trackwidth/2
	b11 := 1/mass + rb*rb/moi
	b12 := 1/mass - rb*rb/moi
	return fl*b11 + fr*b12, fl*b12 + fr*b11
}

func (g *DifferentialGenerator) sample(x []float64) *DifferentialSolution {
	if x == nil {
		return nil
	}
	n := len(g.nodes)
	sol := &DifferentialSolution{
		Dt: make([]float64, n), X: make([]float64, n), Y: make([]float64, n), Heading: make([]float64, n),
		Vl: make([]float64, n), Vr: make([]float64, n),
		Al: make([]float64, n), Ar: make([]float64, n),
		Fl: make([]float64, n), Fr: make([]float64, n),
	}

	idx := 0
	for k, count := range g.built.ControlIntervalCounts {
		dtVal := g.dtVars[k](x).Value
		for s := 1; s <= count; s++ {
			sol.Dt[idx+s] = dtVal
		}
		idx += count
	}

	for i, v := range g.nodes {
		sol.X[i], sol.Y[i], sol.Heading[i] = x[v.x], x[v.y], x[v.theta]
		sol.Vl[i], sol.Vr[i] = x[v.vl], x[v.vr]
		sol.Fl[i], sol.Fr[i] = x[v.fl], x[v.fr]
		sol.Al[i], sol.Ar[i] = g.railAccelValues(x[v.fl], x[v.fr])
	}
	return sol
}
