// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Transformation maps a damage variable (plus ancillary information)
// into the range [0,1]
type Transformation interface {
	Init(prms dbf.Params) error
	Map(damage, normalStress float64) float64
	DMapDDamage(damage, normalStress float64) float64
	DMapDNormal(damage, normalStress float64) float64
}

// NewTransformation returns a new transformation function
func NewTransformation(name string) (Transformation, error) {
	allocator, ok := transformationAllocators[name]
	if !ok {
		return nil, chk.Err("function %q is not available in 'damage' transformation database", name)
	}
	return allocator(), nil
}

// transformationAllocators holds all available transformation functions
var transformationAllocators = map[string]func() Transformation{}

// Sigmoid maps damage to [0,1] with d=0 → 0 and d=c → 1; β controls the
// smoothing:
//
//   map(d) = 1 / (1 + (d/(c−d))^(−β))    0 < d < c
//
// clamped to 0 below and 1 above the interval
type Sigmoid struct {
	C    float64 // damage value mapped to 1
	Beta float64 // smoothing exponent β
}

// add function to factory
func init() {
	transformationAllocators["sigmoid"] = func() Transformation { return new(Sigmoid) }
}

// Init initialises this function
func (o *Sigmoid) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "c":
			o.C = p.V
		case "beta":
			o.Beta = p.V
		default:
			return chk.Err("sigmoid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.C <= 0 || o.Beta <= 0 {
		return chk.Err("sigmoid: 'c' and 'beta' must be both positive\n")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Sigmoid) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "c", V: 1},
		&dbf.P{N: "beta", V: 2},
	}
}

// Map returns the transformed damage in [0,1]
func (o *Sigmoid) Map(damage, normalStress float64) float64 {
	if damage <= 0 {
		return 0
	}
	if damage >= o.C {
		return 1
	}
	u := damage / (o.C - damage)
	ub := math.Pow(u, o.Beta)
	return ub / (1.0 + ub)
}

// DMapDDamage returns the derivative of Map with respect to damage
func (o *Sigmoid) DMapDDamage(damage, normalStress float64) float64 {
	if damage <= 0 || damage >= o.C {
		return 0
	}
	u := damage / (o.C - damage)
	ub := math.Pow(u, o.Beta)
	dudd := o.C / ((o.C - damage) * (o.C - damage))
	return o.Beta * math.Pow(u, o.Beta-1.0) / ((1.0 + ub) * (1.0 + ub)) * dudd
}

// DMapDNormal returns the derivative of Map with respect to the normal
// stress (this function does not depend on it)
func (o *Sigmoid) DMapDNormal(damage, normalStress float64) float64 {
	return 0
}
