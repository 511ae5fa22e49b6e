// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "github.com/cpmech/gosl/utl"

// SymSym holds a rank-four tensor mapping symmetric tensors to symmetric
// tensors, stored as a 6×6 matrix over the Mandel components. It shows up
// as the derivative of a symmetric quantity with respect to another
// symmetric quantity and is not storable in a history container.
type SymSym [][]float64

// NewSymSym returns a new zeroed rank-four block
func NewSymSym() SymSym {
	return utl.Alloc(6, 6)
}

// SymSymIdent returns the rank-four identity block
func SymSymIdent() SymSym {
	A := NewSymSym()
	for i := 0; i < 6; i++ {
		A[i][i] = 1
	}
	return A
}

// Apply returns A:b, the contraction of this block with a symmetric
// tensor, newly allocated
func (o SymSym) Apply(b Symmetric) Symmetric {
	res := NewSymmetric()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			res[i] += o[i][j] * b[j]
		}
	}
	return res
}

// Scale multiplies all components of this block by s, in place
func (o SymSym) Scale(s float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o[i][j] *= s
		}
	}
}
