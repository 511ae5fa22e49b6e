// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements the storage kinds and small tensor objects used
// by material models to hold internal (secondary) variables
package tsr

import "github.com/cpmech/gosl/chk"

// Kind labels the storage shape of a named variable in a history container.
// The set is closed: new kinds are added here and nowhere else.
type Kind int

const (
	KindScalar      Kind = iota // single value
	KindVector                  // 3-component vector
	KindRankTwo                 // general second-order tensor, 9 components
	KindSymmetric               // symmetric second-order tensor, 6 components (Mandel)
	KindSkew                    // skew second-order tensor, 3 components (axial)
	KindOrientation             // orientation, 4 components (unit quaternion)
)

// Size returns the number of storage components of kind
func Size(kind Kind) int {
	switch kind {
	case KindScalar:
		return 1
	case KindVector:
		return 3
	case KindRankTwo:
		return 9
	case KindSymmetric:
		return 6
	case KindSkew:
		return 3
	case KindOrientation:
		return 4
	}
	chk.Panic("tsr: storage kind %d is invalid", kind)
	return 0
}

// String returns the name of kind
func (o Kind) String() string {
	switch o {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindRankTwo:
		return "ranktwo"
	case KindSymmetric:
		return "symmetric"
	case KindSkew:
		return "skew"
	case KindOrientation:
		return "orientation"
	}
	chk.Panic("tsr: storage kind %d is invalid", int(o))
	return ""
}
