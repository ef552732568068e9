// Package arm defines the joint-space and task-space value types for the
// chessbot's 5-DOF arm, and the interface implementations of the arm expose
// to the rest of the system.
package arm

import (
	"math"

	"github.com/FitzgeraldLab/chessbot/utils"
)

// NumJoints is the degree-of-freedom count of the arm. The kinematics in
// this repository are specific to this geometry.
const NumJoints = 5

// JointPositions is the BSEPR joint-space vector: base, shoulder, elbow,
// wrist pitch and wrist roll angles, all in radians. The wrist angles are
// body fixed, measured against the preceding link, unlike the base-relative
// pitch and roll of a Pose. The kinematics engine places no range limits on
// joint values; limit enforcement belongs to whatever drives the hardware.
type JointPositions struct {
	Base       float64
	Shoulder   float64
	Elbow      float64
	WristPitch float64
	WristRoll  float64
}

// Pose is the XYZPR task-space vector: end effector position in the model's
// length units, plus pitch and roll in radians measured relative to the base
// frame. Pitch is the elevation of the approach direction above the
// horizontal; roll is the wrist rotation about the approach axis.
type Pose struct {
	X     float64
	Y     float64
	Z     float64
	Pitch float64
	Roll  float64
}

// Slice returns the pose as an ordered 5-vector (x, y, z, pitch, roll).
func (p Pose) Slice() []float64 {
	return []float64{p.X, p.Y, p.Z, p.Pitch, p.Roll}
}

// IsFinite reports whether every component of the pose is a finite number.
func (p Pose) IsFinite() bool {
	for _, v := range p.Slice() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Slice returns the joint vector in BSEPR order.
func (j JointPositions) Slice() []float64 {
	return []float64{j.Base, j.Shoulder, j.Elbow, j.WristPitch, j.WristRoll}
}

// Degrees returns the joint vector converted to degrees, BSEPR order.
// Useful when talking to servo hardware addressed in degrees.
func (j JointPositions) Degrees() []float64 {
	out := make([]float64, 0, NumJoints)
	for _, v := range j.Slice() {
		out = append(out, utils.RadToDeg(v))
	}
	return out
}

// JointPositionsFromDegrees builds a radian joint vector from BSEPR angles
// given in degrees.
func JointPositionsFromDegrees(base, shoulder, elbow, wristPitch, wristRoll float64) JointPositions {
	return JointPositions{
		Base:       utils.DegToRad(base),
		Shoulder:   utils.DegToRad(shoulder),
		Elbow:      utils.DegToRad(elbow),
		WristPitch: utils.DegToRad(wristPitch),
		WristRoll:  utils.DegToRad(wristRoll),
	}
}

// An Arm is a 5-DOF manipulator addressable in either joint space or task
// space. Hardware drivers and higher-level planners (the chess application)
// see only this surface.
type Arm interface {
	// CurrentPosition returns the pose of the end effector.
	CurrentPosition() (Pose, error)

	// MoveToPosition commands the end effector to the given pose.
	MoveToPosition(p Pose) error

	// CurrentJointPositions returns the BSEPR joint state.
	CurrentJointPositions() (JointPositions, error)

	// MoveToJointPositions commands every joint to the given angles.
	MoveToJointPositions(j JointPositions) error

	// Close shuts the arm down.
	Close() error
}
