package kinematics

import (
	"math"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/spatialmath"
)

// Transform computes the end effector pose for the given joint angles: the
// forward kinematics of the arm. It is total; any finite joint vector
// produces a pose.
//
// The DH chain for this geometry collapses to a planar one once the base
// rotation is factored out: shoulder, elbow and wrist pitch all rotate about
// the normal of the arm's vertical plane, so the links a2, a3 and the wrist
// offset a4 + d5 lie in that plane at the cumulative joint angles, on top of
// the base offsets (a1, d1). Link offsets d2..d4 stack along the shared
// plane normal. Transform evaluates that collapsed form directly; it is
// algebraically identical to composing the five link transforms (the tests
// cross-check it against a dual-quaternion chain) while keeping the rounding
// error well inside the validator's ulp-scaled tolerance. Row 5's link
// length (the gripper's reach beyond the tool flange) does not move the
// pose reference point.
//
// Pitch is the elevation of the approach axis measured in the vertical
// plane, wrapped to (-pi, pi]. Roll is body fixed about the approach axis
// and passes through; only pitch is folded back to base-relative.
func (m *Model) Transform(j arm.JointPositions) arm.Pose {
	p := m.params

	phi := j.Shoulder + j.Elbow + j.WristPitch
	radial := p[0].A +
		p[1].A*math.Cos(j.Shoulder) +
		p[2].A*math.Cos(j.Shoulder+j.Elbow) +
		(p[3].A+p[4].D)*math.Cos(phi)
	height := p[0].D +
		p[1].A*math.Sin(j.Shoulder) +
		p[2].A*math.Sin(j.Shoulder+j.Elbow) +
		(p[3].A+p[4].D)*math.Sin(phi)
	lateral := p[1].D + p[2].D + p[3].D

	sb, cb := math.Sincos(j.Base)
	return arm.Pose{
		X:     radial*cb - lateral*sb,
		Y:     radial*sb + lateral*cb,
		Z:     height,
		Pitch: spatialmath.WrapToPi(phi),
		Roll:  j.WristRoll,
	}
}
