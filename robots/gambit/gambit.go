// Package gambit implements the chessbot's 5-DOF gripper arm as a software
// model over the kinematics engine. It tracks joint state only; the serial
// driver for the physical servos and the chess application both talk to it
// through the arm.Arm interface.
package gambit

import (
	_ "embed" // for embedding the model file
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/kinematics"
)

/**
 * ------2
 *    150 \ 150
 *         \        ___
 *    1     3------4 | 5
 *    |100         30
 *  --0-- 100 left of 1
 * joint 0 is the base column, joints 1-3 swing the 150/150/30mm links in
 * the vertical plane, joint 4 rolls the gripper about the approach axis.
 */

//go:embed gambit.json
var modelJSON []byte

// Model parses the embedded kinematic description of the gambit arm.
func Model() (*kinematics.Model, error) {
	return kinematics.UnmarshalModelJSON(modelJSON, "")
}

// Arm tracks the gambit arm in joint space and answers task-space queries
// and commands through the kinematics engine.
type Arm struct {
	mu     sync.Mutex
	solver *kinematics.Solver
	joints arm.JointPositions
	logger golog.Logger
}

// NewArm returns a gambit arm at its zero (stretched out) configuration.
func NewArm(logger golog.Logger) (*Arm, error) {
	model, err := Model()
	if err != nil {
		return nil, err
	}
	return &Arm{solver: kinematics.NewSolver(model, logger), logger: logger}, nil
}

// CurrentJointPositions returns the BSEPR joint state.
func (a *Arm) CurrentJointPositions() (arm.JointPositions, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.joints, nil
}

// MoveToJointPositions sets every joint to the given angles.
func (a *Arm) MoveToJointPositions(j arm.JointPositions) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.joints = j
	return nil
}

// CurrentPosition returns the end effector pose for the current joints.
func (a *Arm) CurrentPosition() (arm.Pose, error) {
	a.mu.Lock()
	j := a.joints
	a.mu.Unlock()
	return a.solver.Model().Transform(j), nil
}

// MoveToPosition solves for the given pose and adopts the first reachable
// branch. Elbow-up is preferred; standing above the board it keeps the
// forearm clear of the pieces. Elbow-down is the fallback, and a pose
// neither branch reaches is an error.
func (a *Arm) MoveToPosition(p arm.Pose) error {
	res, err := a.solver.Solve(p, kinematics.AllBranches)
	if err != nil {
		return err
	}
	for _, b := range res.Branches {
		if b.Joints == nil {
			continue
		}
		a.logger.Debugw("adopting inverse solution", "branch", b.Branch.String())
		a.mu.Lock()
		a.joints = *b.Joints
		a.mu.Unlock()
		return nil
	}
	return errors.Errorf("pose (%.2f, %.2f, %.2f, %.3f, %.3f) is out of reach", p.X, p.Y, p.Z, p.Pitch, p.Roll)
}

// Close is a no-op; there is no hardware here to shut down.
func (a *Arm) Close() error {
	return nil
}

// interface check
var _ arm.Arm = (*Arm)(nil)
