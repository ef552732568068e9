package gambit

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/kinematics"
)

func TestModel(t *testing.T) {
	m, err := Model()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Name(), test.ShouldEqual, "gambit")
	test.That(t, m.DH(), test.ShouldResemble, []kinematics.DHParam{
		{ID: "base", D: 100, A: 100},
		{ID: "shoulder", D: 0, A: 150},
		{ID: "elbow", D: 0, A: 150},
		{ID: "wrist_pitch", D: 0, A: 0},
		{ID: "wrist_roll", D: 30, A: 50},
	})
}

func TestArmJointSpace(t *testing.T) {
	a, err := NewArm(golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	defer func() {
		test.That(t, a.Close(), test.ShouldBeNil)
	}()

	j, err := a.CurrentJointPositions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j, test.ShouldResemble, arm.JointPositions{})

	p, err := a.CurrentPosition()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.X, test.ShouldAlmostEqual, 430)
	test.That(t, p.Z, test.ShouldAlmostEqual, 100)

	set := arm.JointPositions{Base: 0.5, Shoulder: 0.25, Elbow: -1, WristPitch: 0.75, WristRoll: -0.5}
	test.That(t, a.MoveToJointPositions(set), test.ShouldBeNil)
	j, err = a.CurrentJointPositions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j, test.ShouldResemble, set)
}

func TestArmTaskSpace(t *testing.T) {
	a, err := NewArm(golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	target := arm.Pose{X: 200, Y: 0, Z: 100, Pitch: 0, Roll: 0}
	test.That(t, a.MoveToPosition(target), test.ShouldBeNil)

	// the preferred branch is elbow-up
	j, err := a.CurrentJointPositions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j.Elbow, test.ShouldBeLessThan, 0)

	p, err := a.CurrentPosition()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.X, test.ShouldAlmostEqual, target.X, 1e-6)
	test.That(t, p.Y, test.ShouldAlmostEqual, target.Y, 1e-6)
	test.That(t, p.Z, test.ShouldAlmostEqual, target.Z, 1e-6)
	test.That(t, p.Pitch, test.ShouldAlmostEqual, target.Pitch, 1e-6)
	test.That(t, p.Roll, test.ShouldAlmostEqual, target.Roll, 1e-6)
}

func TestArmOutOfReach(t *testing.T) {
	a, err := NewArm(golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	before, err := a.CurrentJointPositions()
	test.That(t, err, test.ShouldBeNil)

	err = a.MoveToPosition(arm.Pose{X: 1000})
	test.That(t, err, test.ShouldNotBeNil)

	// a failed move leaves the joints where they were
	after, err := a.CurrentJointPositions()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, after, test.ShouldResemble, before)

	err = a.MoveToPosition(arm.Pose{X: math.NaN()})
	test.That(t, err, test.ShouldNotBeNil)
}
