package kinematics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/spatialmath"
)

func TestTransformZero(t *testing.T) {
	p := testModel(t).Transform(arm.JointPositions{})
	// fully stretched along x: a1+a2+a3+a4+d5 out, d1 up
	test.That(t, p.X, test.ShouldAlmostEqual, 430)
	test.That(t, p.Y, test.ShouldAlmostEqual, 0)
	test.That(t, p.Z, test.ShouldAlmostEqual, 100)
	test.That(t, p.Pitch, test.ShouldAlmostEqual, 0)
	test.That(t, p.Roll, test.ShouldAlmostEqual, 0)
}

func TestTransformBaseQuarterTurn(t *testing.T) {
	p := testModel(t).Transform(arm.JointPositions{Base: math.Pi / 2})
	test.That(t, p.X, test.ShouldAlmostEqual, 0)
	test.That(t, p.Y, test.ShouldAlmostEqual, 430)
	test.That(t, p.Z, test.ShouldAlmostEqual, 100)
	test.That(t, p.Pitch, test.ShouldAlmostEqual, 0)
}

func TestTransformShoulderVertical(t *testing.T) {
	p := testModel(t).Transform(arm.JointPositions{Shoulder: math.Pi / 2})
	// everything past the base offset points straight up
	test.That(t, p.X, test.ShouldAlmostEqual, 100)
	test.That(t, p.Y, test.ShouldAlmostEqual, 0)
	test.That(t, p.Z, test.ShouldAlmostEqual, 430)
	test.That(t, p.Pitch, test.ShouldAlmostEqual, math.Pi/2)
}

func TestTransformElbowBend(t *testing.T) {
	// shoulder up, elbow back down a quarter turn: upper arm vertical,
	// forearm and wrist horizontal
	p := testModel(t).Transform(arm.JointPositions{Shoulder: math.Pi / 2, Elbow: -math.Pi / 2})
	test.That(t, p.X, test.ShouldAlmostEqual, 280)
	test.That(t, p.Y, test.ShouldAlmostEqual, 0)
	test.That(t, p.Z, test.ShouldAlmostEqual, 250)
	test.That(t, p.Pitch, test.ShouldAlmostEqual, 0)
}

func TestTransformRollPassthrough(t *testing.T) {
	m := testModel(t)
	flat := m.Transform(arm.JointPositions{})
	rolled := m.Transform(arm.JointPositions{WristRoll: 1.2})
	test.That(t, rolled.Roll, test.ShouldAlmostEqual, 1.2)
	test.That(t, rolled.X, test.ShouldAlmostEqual, flat.X)
	test.That(t, rolled.Y, test.ShouldAlmostEqual, flat.Y)
	test.That(t, rolled.Z, test.ShouldAlmostEqual, flat.Z)
	test.That(t, rolled.Pitch, test.ShouldAlmostEqual, flat.Pitch)
}

func TestTransformPitchWraps(t *testing.T) {
	// cumulative planar angle of 4 rad reports as its principal value
	p := testModel(t).Transform(arm.JointPositions{Shoulder: 2, Elbow: 2})
	test.That(t, p.Pitch, test.ShouldAlmostEqual, 4-2*math.Pi)
}

func TestTransformLateralOffsets(t *testing.T) {
	m, err := NewModel("offset", []DHParam{
		{ID: "base", D: 100, A: 100},
		{ID: "shoulder", D: 10, A: 150},
		{ID: "elbow", D: -5, A: 150},
		{ID: "wrist_pitch", D: 7, A: 0},
		{ID: "wrist_roll", D: 30, A: 50},
	})
	test.That(t, err, test.ShouldBeNil)

	p := m.Transform(arm.JointPositions{})
	test.That(t, p.X, test.ShouldAlmostEqual, 430)
	test.That(t, p.Y, test.ShouldAlmostEqual, 12)
	test.That(t, p.Z, test.ShouldAlmostEqual, 100)

	// a base quarter turn carries the lateral offset around with the arm
	p = m.Transform(arm.JointPositions{Base: math.Pi / 2})
	test.That(t, p.X, test.ShouldAlmostEqual, -12)
	test.That(t, p.Y, test.ShouldAlmostEqual, 430)
}

// chainTransform recomputes forward kinematics by composing the five link
// transforms as dual quaternions, extracting position from the composite
// translation and pitch from the rotated approach axis. It is an
// independent implementation used to cross-check Transform's collapsed
// planar evaluation.
func chainTransform(m *Model, j arm.JointPositions) arm.Pose {
	p := m.DH()

	q := spatialmath.NewQuatTransFromRotationZ(j.Base)
	q = q.Transformation(spatialmath.NewQuatTransFromTranslation(p[0].A, 0, p[0].D))
	q = q.Transformation(spatialmath.NewQuatTransFromRotationY(-j.Shoulder))
	q = q.Transformation(spatialmath.NewQuatTransFromTranslation(p[1].A, p[1].D, 0))
	q = q.Transformation(spatialmath.NewQuatTransFromRotationY(-j.Elbow))
	q = q.Transformation(spatialmath.NewQuatTransFromTranslation(p[2].A, p[2].D, 0))
	q = q.Transformation(spatialmath.NewQuatTransFromRotationY(-j.WristPitch))
	q = q.Transformation(spatialmath.NewQuatTransFromTranslation(p[3].A+p[4].D, p[3].D, 0))
	q = q.Transformation(spatialmath.NewQuatTransFromRotationX(j.WristRoll))

	pos := q.Translation()
	approach := q.RotateVector(r3.Vector{X: 1})
	radialDir := approach.X*math.Cos(j.Base) + approach.Y*math.Sin(j.Base)
	return arm.Pose{
		X:     pos.X,
		Y:     pos.Y,
		Z:     pos.Z,
		Pitch: math.Atan2(approach.Z, radialDir),
		Roll:  j.WristRoll,
	}
}

func TestTransformMatchesQuatChain(t *testing.T) {
	offset, err := NewModel("offset", []DHParam{
		{ID: "base", D: 100, A: 100},
		{ID: "shoulder", D: 10, A: 150},
		{ID: "elbow", D: -5, A: 150},
		{ID: "wrist_pitch", D: 7, A: 0},
		{ID: "wrist_roll", D: 30, A: 50},
	})
	test.That(t, err, test.ShouldBeNil)

	joints := []arm.JointPositions{
		{},
		{Base: 1.1},
		{Shoulder: 0.7},
		{Shoulder: 0.9, Elbow: -1.4},
		{Base: -2.0, Shoulder: 0.5, Elbow: 1.1, WristPitch: -0.6},
		{Base: 0.4, Shoulder: -0.3, Elbow: 0.8, WristPitch: 0.2, WristRoll: 2.1},
		{Base: 2.8, Shoulder: 1.2, Elbow: -2.1, WristPitch: 0.9, WristRoll: -0.7},
	}
	for _, m := range []*Model{testModel(t), offset} {
		for _, j := range joints {
			want := m.Transform(j)
			got := chainTransform(m, j)
			test.That(t, got.X, test.ShouldAlmostEqual, want.X, 1e-8)
			test.That(t, got.Y, test.ShouldAlmostEqual, want.Y, 1e-8)
			test.That(t, got.Z, test.ShouldAlmostEqual, want.Z, 1e-8)
			test.That(t, got.Pitch, test.ShouldAlmostEqual, want.Pitch, 1e-8)
			test.That(t, got.Roll, test.ShouldAlmostEqual, want.Roll, 1e-8)
		}
	}
}
