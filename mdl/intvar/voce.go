// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intvar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/MDARIFULHASAN/neml/tsr"
)

// Voce implements the saturating isotropic hardening law
//
//   ḣ = δ (R − h) ȧ
//
// h grows towards the saturated value R at a speed controlled by δ
type Voce struct {
	Named
	ZeroRateScalar
	R  float64 // saturated value of h
	D  float64 // saturation speed δ
	H0 float64 // initial value of h
}

// add law to factory
func init() {
	scalarAllocators["voce"] = func() ScalarVariable { return new(Voce) }
}

// Init initialises this law
func (o *Voce) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "R":
			o.R = p.V
		case "d":
			o.D = p.V
		case "h0":
			o.H0 = p.V
		default:
			return chk.Err("voce: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Voce) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "R", V: 100},
		&dbf.P{N: "d", V: 10},
		&dbf.P{N: "h0", V: 0},
	}
}

// InitialValue returns h at time zero
func (o *Voce) InitialValue() float64 { return o.H0 }

// RateP returns the rate of h per unit plastic slip
func (o *Voce) RateP(s *ScalarState) float64 {
	return o.D * (o.R - s.H) * s.Adot
}

func (o *Voce) DRatePDH(s *ScalarState) float64 {
	return -o.D * s.Adot
}

func (o *Voce) DRatePDA(s *ScalarState) float64 {
	return 0
}

func (o *Voce) DRatePDAdot(s *ScalarState) float64 {
	return o.D * (o.R - s.H)
}

func (o *Voce) DRatePDS(s *ScalarState) tsr.Symmetric {
	return tsr.NewSymmetric()
}

func (o *Voce) DRatePDG(s *ScalarState) tsr.Symmetric {
	return tsr.NewSymmetric()
}
