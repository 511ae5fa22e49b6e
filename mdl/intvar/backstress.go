// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intvar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/MDARIFULHASAN/neml/tsr"
)

// Backstress implements the Armstrong-Frederick kinematic hardening law
//
//   ḣ = (2C/3) g − γ h ȧ
//
// the backstress builds up along the flow direction g and relaxes
// through the dynamic recovery term γ h ȧ
type Backstress struct {
	Named
	ZeroRateSymmetric
	C   float64 // direct hardening modulus
	Gam float64 // dynamic recovery coefficient γ
}

// add law to factory
func init() {
	symmetricAllocators["backstress"] = func() SymmetricVariable { return new(Backstress) }
}

// Init initialises this law
func (o *Backstress) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "C":
			o.C = p.V
		case "gam":
			o.Gam = p.V
		default:
			return chk.Err("backstress: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Backstress) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "C", V: 1000},
		&dbf.P{N: "gam", V: 10},
	}
}

// InitialValue returns h at time zero
func (o *Backstress) InitialValue() tsr.Symmetric { return tsr.NewSymmetric() }

// RateP returns the rate of h per unit plastic slip
func (o *Backstress) RateP(s *SymmetricState) tsr.Symmetric {
	res := tsr.NewSymmetric()
	for i := 0; i < 6; i++ {
		res[i] = 2.0*o.C/3.0*s.G[i] - o.Gam*s.H[i]*s.Adot
	}
	return res
}

func (o *Backstress) DRatePDH(s *SymmetricState) tsr.SymSym {
	A := tsr.NewSymSym()
	for i := 0; i < 6; i++ {
		A[i][i] = -o.Gam * s.Adot
	}
	return A
}

func (o *Backstress) DRatePDA(s *SymmetricState) tsr.Symmetric {
	return tsr.NewSymmetric()
}

func (o *Backstress) DRatePDAdot(s *SymmetricState) tsr.Symmetric {
	res := tsr.NewSymmetric()
	for i := 0; i < 6; i++ {
		res[i] = -o.Gam * s.H[i]
	}
	return res
}

func (o *Backstress) DRatePDS(s *SymmetricState) tsr.SymSym {
	return tsr.NewSymSym()
}

func (o *Backstress) DRatePDG(s *SymmetricState) tsr.SymSym {
	A := tsr.NewSymSym()
	for i := 0; i < 6; i++ {
		A[i][i] = 2.0 * o.C / 3.0
	}
	return A
}
