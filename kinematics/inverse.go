package kinematics

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/utils"
)

// Solver computes closed-form inverse kinematics for a Model. It is
// immutable and safe to share across goroutines.
type Solver struct {
	model  *Model
	logger golog.Logger
}

// NewSolver returns a Solver for the given model. The logger receives the
// informational round-trip diagnostics for rejected branches.
func NewSolver(model *Model, logger golog.Logger) *Solver {
	return &Solver{model: model, logger: logger}
}

// Model returns the model being solved against.
func (s *Solver) Model() *Model {
	return s.model
}

// Solve computes the joint angles reaching the given pose, per the requested
// policy. Reachability failures are not errors: a branch that cannot reach
// the pose comes back with nil Joints and the sibling branch is still
// evaluated. An error is returned only for malformed input - a non-finite
// pose component or an unknown policy - before any solving happens.
func (s *Solver) Solve(pose arm.Pose, policy Policy) (Result, error) {
	if !pose.IsFinite() {
		return Result{}, errors.Errorf("invalid pose %+v: all components must be finite", pose)
	}

	switch policy {
	case ElbowUpOnly:
		up, _ := s.candidates(pose)
		return Result{Branches: []BranchSolution{s.validate(pose, ElbowUp, up)}}, nil
	case ElbowDownOnly:
		_, down := s.candidates(pose)
		return Result{Branches: []BranchSolution{s.validate(pose, ElbowDown, down)}}, nil
	case AllBranches:
		up, down := s.candidates(pose)
		return Result{Branches: []BranchSolution{
			s.validate(pose, ElbowUp, up),
			s.validate(pose, ElbowDown, down),
		}}, nil
	default:
		return Result{}, errors.Errorf("invalid solve policy %d", policy)
	}
}

// candidates runs the geometric decomposition and returns the raw elbow-up
// and elbow-down joint vectors, unvalidated.
//
// The base angle comes straight from the target's bearing. The wrist center
// is then projected into the arm's vertical plane by peeling off the base
// offsets (a1, d1) and the wrist offset (a4 + d5) laid along the requested
// pitch direction. What remains is a two-link triangle solved by the law of
// cosines; the two acos branches are the elbow-up and elbow-down
// configurations. Wrist pitch closes the planar chain so the approach
// direction lands on the requested pitch, and roll passes through.
//
// A reach-back base solution at theta1 + pi exists geometrically but is not
// computed; two branches is the contract.
func (s *Solver) candidates(pose arm.Pose) (up, down arm.JointPositions) {
	p := s.model.params

	theta1 := math.Atan2(pose.Y, pose.X)

	wrist := p[3].A + p[4].D
	xb := math.Hypot(pose.X, pose.Y) - p[0].A - wrist*math.Cos(pose.Pitch)
	yb := pose.Z - p[0].D - wrist*math.Sin(pose.Pitch)
	m := math.Hypot(xb, yb)

	a2, a3 := p[1].A, p[2].A
	beta := acosClamped((utils.Square(a2) + utils.Square(m) - utils.Square(a3)) / (2 * a2 * m))
	gamma := acosClamped((utils.Square(a2) + utils.Square(a3) - utils.Square(m)) / (2 * a2 * a3))
	alpha := math.Atan2(yb, xb)

	up = arm.JointPositions{
		Base:      theta1,
		Shoulder:  alpha + beta,
		Elbow:     gamma - math.Pi,
		WristRoll: pose.Roll,
	}
	up.WristPitch = pose.Pitch - up.Shoulder - up.Elbow

	down = arm.JointPositions{
		Base:      theta1,
		Shoulder:  alpha - beta,
		Elbow:     math.Pi - gamma,
		WristRoll: pose.Roll,
	}
	down.WristPitch = pose.Pitch - down.Shoulder - down.Elbow

	return up, down
}

// acosClamped is arccosine with its argument clamped to [-1, 1]. Rounding
// can push a geometrically valid cosine just past the domain edge; a target
// outside the workspace pushes it far past. Clamping keeps both real: the
// former lands on the correct boundary angle, the latter yields a wrong
// candidate that the round-trip validation then rejects, which is how
// unreachable targets surface.
func acosClamped(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x)
}
