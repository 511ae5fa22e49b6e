// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intvar

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/MDARIFULHASAN/neml/tsr"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_voce01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voce01. rate and derivatives")

	law, err := NewScalar("voce", "alpha")
	if err != nil {
		tst.Errorf("NewScalar failed: %v\n", err)
		return
	}
	chk.String(tst, law.Name(), "alpha")

	prms := dbf.Params{
		&dbf.P{N: "R", V: 120},
		&dbf.P{N: "d", V: 9.5},
		&dbf.P{N: "h0", V: 1.5},
	}
	err = law.Init(prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h0", 1e-15, law.InitialValue(), 1.5)

	s := &ScalarState{
		H:    40,
		A:    0.1,
		Adot: 0.01,
		S:    tsr.NewSymmetric(),
		G:    tsr.NewSymmetric(),
		T:    300,
	}
	chk.Float64(tst, "ratep", 1e-14, law.RateP(s), 9.5*(120-40)*0.01)

	// analytic derivatives against central differences
	dh := law.DRatePDH(s)
	chk.DerivScaSca(tst, "dratep/dh", 1e-8, dh, s.H, 1e-3, chk.Verbose, func(x float64) (float64, error) {
		sx := *s
		sx.H = x
		return law.RateP(&sx), nil
	})
	da := law.DRatePDAdot(s)
	chk.DerivScaSca(tst, "dratep/dadot", 1e-8, da, s.Adot, 1e-6, chk.Verbose, func(x float64) (float64, error) {
		sx := *s
		sx.Adot = x
		return law.RateP(&sx), nil
	})
	chk.Float64(tst, "dratep/da", 1e-17, law.DRatePDA(s), 0)
	chk.Array(tst, "dratep/ds", 1e-17, law.DRatePDS(s), tsr.NewSymmetric())

	// wall-time and temperature rates default to zero
	chk.Float64(tst, "ratet", 1e-17, law.RateTime(s), 0)
	chk.Float64(tst, "rateT", 1e-17, law.RateTemp(s), 0)
	chk.Array(tst, "dratet/dg", 1e-17, law.DRateTimeDG(s), tsr.NewSymmetric())
}

func Test_voce02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voce02. factory and parameter errors")

	_, err := NewScalar("nonexistent", "alpha")
	if err == nil {
		tst.Errorf("NewScalar with unknown law must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	law, err := NewScalar("voce", "alpha")
	if err != nil {
		tst.Errorf("NewScalar failed: %v\n", err)
		return
	}
	err = law.Init(dbf.Params{&dbf.P{N: "wrong", V: 1}})
	if err == nil {
		tst.Errorf("Init with wrong parameter must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// example parameters initialise cleanly
	err = law.Init(law.(*Voce).GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
	}
}
