// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "math"

// SQ2 is the square root of two; the scale factor of off-diagonal
// components in the Mandel representation of symmetric tensors
const SQ2 = math.Sqrt2

// Vector holds a 3-component vector. When obtained from a history
// container the slice aliases the container's storage.
type Vector []float64

// RankTwo holds a general second-order tensor with 9 components in
// row-major order: [00 01 02 10 11 12 20 21 22]
type RankTwo []float64

// Symmetric holds a symmetric second-order tensor with 6 components in
// the Mandel representation: [00 11 22 √2·01 √2·12 √2·02]
type Symmetric []float64

// Skew holds a skew second-order tensor with its 3 independent (axial)
// components: [01 12 02]
type Skew []float64

// Orientation holds an orientation as a unit quaternion: [q0 q1 q2 q3]
type Orientation []float64

// StorageKind returns the storage kind of vectors
func (o Vector) StorageKind() Kind { return KindVector }

// StorageKind returns the storage kind of general second-order tensors
func (o RankTwo) StorageKind() Kind { return KindRankTwo }

// StorageKind returns the storage kind of symmetric tensors
func (o Symmetric) StorageKind() Kind { return KindSymmetric }

// StorageKind returns the storage kind of skew tensors
func (o Skew) StorageKind() Kind { return KindSkew }

// StorageKind returns the storage kind of orientations
func (o Orientation) StorageKind() Kind { return KindOrientation }

// NewVector returns a new zeroed vector (owning its own storage)
func NewVector() Vector { return make(Vector, 3) }

// NewRankTwo returns a new zeroed general tensor (owning its own storage)
func NewRankTwo() RankTwo { return make(RankTwo, 9) }

// NewSymmetric returns a new zeroed symmetric tensor (owning its own storage)
func NewSymmetric() Symmetric { return make(Symmetric, 6) }

// NewSkew returns a new zeroed skew tensor (owning its own storage)
func NewSkew() Skew { return make(Skew, 3) }

// NewOrientation returns the identity orientation (owning its own storage)
func NewOrientation() Orientation { return Orientation{1, 0, 0, 0} }

// Ident returns the second-order identity tensor in Mandel representation
func Ident() Symmetric { return Symmetric{1, 1, 1, 0, 0, 0} }

// Dot returns the scalar product of two vectors
func (o Vector) Dot(b Vector) float64 {
	return o[0]*b[0] + o[1]*b[1] + o[2]*b[2]
}

// Norm returns the Euclidean norm of this vector
func (o Vector) Norm() float64 {
	return math.Sqrt(o.Dot(o))
}

// Trace returns the trace of this tensor
func (o Symmetric) Trace() float64 {
	return o[0] + o[1] + o[2]
}

// Dot returns the double contraction of two symmetric tensors. The Mandel
// representation makes this the plain scalar product of the components.
func (o Symmetric) Dot(b Symmetric) (res float64) {
	for i := 0; i < 6; i++ {
		res += o[i] * b[i]
	}
	return
}

// Norm returns the Euclidean (Frobenius) norm of this tensor
func (o Symmetric) Norm() float64 {
	return math.Sqrt(o.Dot(o))
}

// Dev returns the deviator of this tensor (newly allocated)
func (o Symmetric) Dev() Symmetric {
	p := o.Trace() / 3.0
	return Symmetric{o[0] - p, o[1] - p, o[2] - p, o[3], o[4], o[5]}
}

// Split decomposes this general tensor into its symmetric (Mandel) and
// skew (axial) parts, both newly allocated
func (o RankTwo) Split() (s Symmetric, w Skew) {
	s = Symmetric{
		o[0], o[4], o[8],
		(o[1] + o[3]) / 2.0 * SQ2,
		(o[5] + o[7]) / 2.0 * SQ2,
		(o[2] + o[6]) / 2.0 * SQ2,
	}
	w = Skew{
		(o[1] - o[3]) / 2.0,
		(o[5] - o[7]) / 2.0,
		(o[2] - o[6]) / 2.0,
	}
	return
}

// Join recomposes a general tensor from its symmetric and skew parts
func Join(s Symmetric, w Skew) (t RankTwo) {
	t = NewRankTwo()
	t[0], t[4], t[8] = s[0], s[1], s[2]
	t[1], t[3] = s[3]/SQ2+w[0], s[3]/SQ2-w[0]
	t[5], t[7] = s[4]/SQ2+w[1], s[4]/SQ2-w[1]
	t[2], t[6] = s[5]/SQ2+w[2], s[5]/SQ2-w[2]
	return
}

// Norm returns the quaternion norm of this orientation
func (o Orientation) Norm() float64 {
	return math.Sqrt(o[0]*o[0] + o[1]*o[1] + o[2]*o[2] + o[3]*o[3])
}

// Normalize scales this orientation, in place, to unit norm
func (o Orientation) Normalize() {
	n := o.Norm()
	for i := 0; i < 4; i++ {
		o[i] /= n
	}
}

// Compose returns the composition of this orientation with b
// (this applied after b), newly allocated
func (o Orientation) Compose(b Orientation) Orientation {
	return Orientation{
		o[0]*b[0] - o[1]*b[1] - o[2]*b[2] - o[3]*b[3],
		o[0]*b[1] + o[1]*b[0] + o[2]*b[3] - o[3]*b[2],
		o[0]*b[2] - o[1]*b[3] + o[2]*b[0] + o[3]*b[1],
		o[0]*b[3] + o[1]*b[2] - o[2]*b[1] + o[3]*b[0],
	}
}

// Matrix returns the rotation matrix of this (unit) orientation
func (o Orientation) Matrix() RankTwo {
	q0, q1, q2, q3 := o[0], o[1], o[2], o[3]
	return RankTwo{
		1 - 2*(q2*q2+q3*q3), 2 * (q1*q2 - q0*q3), 2 * (q1*q3 + q0*q2),
		2 * (q1*q2 + q0*q3), 1 - 2*(q1*q1+q3*q3), 2 * (q2*q3 - q0*q1),
		2 * (q1*q3 - q0*q2), 2 * (q2*q3 + q0*q1), 1 - 2*(q1*q1+q2*q2),
	}
}
