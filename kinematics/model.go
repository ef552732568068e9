// Package kinematics implements forward and inverse kinematics for the
// chessbot's fixed 5-DOF arm geometry.
//
// The arm is described by five Denavit-Hartenberg rows of (d, a) constants:
// link offset and link length per joint, in consistent length units. A Model
// is immutable once constructed, so forward and inverse solves are pure
// functions and safe for concurrent use.
package kinematics

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/FitzgeraldLab/chessbot/arm"
)

// DHParam is one Denavit-Hartenberg table row: the link offset d along the
// joint axis and the link length a perpendicular to it.
type DHParam struct {
	ID string
	D  float64
	A  float64
}

// Model is the immutable kinematic description of the arm.
type Model struct {
	name   string
	params [arm.NumJoints]DHParam
}

// NewModel builds a Model from exactly five DH rows. Every constant must be
// finite.
func NewModel(name string, params []DHParam) (*Model, error) {
	if len(params) != arm.NumJoints {
		return nil, errors.Errorf("need exactly %d DH rows, got %d", arm.NumJoints, len(params))
	}
	var err error
	for i, p := range params {
		if math.IsNaN(p.D) || math.IsInf(p.D, 0) {
			err = multierr.Append(err, errors.Errorf("row %d (%s): d must be finite, got %f", i, p.ID, p.D))
		}
		if math.IsNaN(p.A) || math.IsInf(p.A, 0) {
			err = multierr.Append(err, errors.Errorf("row %d (%s): a must be finite, got %f", i, p.ID, p.A))
		}
	}
	if err != nil {
		return nil, err
	}
	m := &Model{name: name}
	copy(m.params[:], params)
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// DH returns a copy of the model's DH table.
func (m *Model) DH() []DHParam {
	out := make([]DHParam, arm.NumJoints)
	copy(out, m.params[:])
	return out
}
