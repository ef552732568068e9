// Package spatialmath defines the rigid transform and angle math used by the
// kinematics engine.
//
// Rigid transforms are represented as unit dual quaternions. A transform is
// the pair (r, d) where r is the rotation quaternion and d encodes the
// translation t as d = 0.5 * t * r. Composition is dual quaternion
// multiplication, which keeps chained link transforms cheap and free of
// gimbal ambiguity.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// QuatTrans performs rigid transformations in 3D.
type QuatTrans struct {
	Quat dualquat.Number
}

// NewQuatTrans returns a new QuatTrans whose quaternion is the identity,
// representing a zero rotation and zero translation.
func NewQuatTrans() *QuatTrans {
	return &QuatTrans{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// NewQuatTransFromRotationX returns the transform rotating by theta radians
// about the x axis.
func NewQuatTransFromRotationX(theta float64) *QuatTrans {
	return &QuatTrans{dualquat.Number{
		Real: quat.Number{Real: math.Cos(theta / 2), Imag: math.Sin(theta / 2)},
	}}
}

// NewQuatTransFromRotationY returns the transform rotating by theta radians
// about the y axis.
func NewQuatTransFromRotationY(theta float64) *QuatTrans {
	return &QuatTrans{dualquat.Number{
		Real: quat.Number{Real: math.Cos(theta / 2), Jmag: math.Sin(theta / 2)},
	}}
}

// NewQuatTransFromRotationZ returns the transform rotating by theta radians
// about the z axis.
func NewQuatTransFromRotationZ(theta float64) *QuatTrans {
	return &QuatTrans{dualquat.Number{
		Real: quat.Number{Real: math.Cos(theta / 2), Kmag: math.Sin(theta / 2)},
	}}
}

// NewQuatTransFromTranslation returns the pure translation by (x, y, z).
func NewQuatTransFromTranslation(x, y, z float64) *QuatTrans {
	return &QuatTrans{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{Imag: x / 2, Jmag: y / 2, Kmag: z / 2},
	}}
}

// Clone returns a QuatTrans identical to this one.
func (m *QuatTrans) Clone() *QuatTrans {
	// No need for deep copies here, dualquats are primitives all the way down.
	return &QuatTrans{m.Quat}
}

// Rotation returns the rotation quaternion.
func (m *QuatTrans) Rotation() quat.Number {
	return m.Quat.Real
}

// Translation returns the translation component as a 3-vector. For a unit
// dual quaternion (r, d) the translation quaternion is 2 * d * conj(r).
func (m *QuatTrans) Translation() r3.Vector {
	t := quat.Scale(2, quat.Mul(m.Quat.Dual, quat.Conj(m.Quat.Real)))
	return r3.Vector{X: t.Imag, Y: t.Jmag, Z: t.Kmag}
}

// Transformation composes this transform with another, returning the
// transform that applies m first in the fixed frame (equivalently, `by`
// expressed in m's moving frame). The rotation part is renormalized to keep
// long chains at unit magnitude.
func (m *QuatTrans) Transformation(by *QuatTrans) *QuatTrans {
	q := dualquat.Mul(m.Quat, by.Quat)
	if mag := quat.Abs(q.Real); mag != 1 {
		q.Real = quat.Scale(1/mag, q.Real)
	}
	return &QuatTrans{q}
}

// RotateVector applies only the rotation part of the transform to the given
// vector.
func (m *QuatTrans) RotateVector(v r3.Vector) r3.Vector {
	vq := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(m.Quat.Real, vq), quat.Conj(m.Quat.Real))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
