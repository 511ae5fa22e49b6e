// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/MDARIFULHASAN/neml/state"
)

func Test_nil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nil01. inert damage model")

	mdl, err := New("nil")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err := mdl.Init(3, nil, nil, nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "nvars", mdl.NumVars(), 1)
	chk.Strings(tst, "names", mdl.VarNames(), []string{"whatever"})

	his := state.NewHistory(true)
	if err := mdl.PopulateHistory(his); err != nil {
		tst.Errorf("PopulateHistory failed: %v\n", err)
		return
	}
	if err := mdl.InitHistory(his); err != nil {
		tst.Errorf("InitHistory failed: %v\n", err)
		return
	}
	chk.Int(tst, "size", his.Size(), 1)

	normal := []float64{10, 20, 30}
	rates, err := mdl.DamageRate(his, nil, nil, normal)
	if err != nil {
		tst.Errorf("DamageRate failed: %v\n", err)
		return
	}
	if !his.Compatible(rates) {
		tst.Errorf("rates history must be layout-compatible\n")
		return
	}
	chk.Array(tst, "rates", 1e-17, rates.Access(), []float64{0})

	mapped, err := mdl.MappedDamage(his, normal)
	if err != nil {
		tst.Errorf("MappedDamage failed: %v\n", err)
		return
	}
	chk.Array(tst, "mapped", 1e-17, mapped, []float64{0, 0, 0})
}

func Test_planes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("planes01. work damage on three planes")

	dmg, err := NewPlaneDamage("work")
	if err != nil {
		tst.Errorf("NewPlaneDamage failed: %v\n", err)
		return
	}
	trans, err := NewTransformation("sigmoid")
	if err != nil {
		tst.Errorf("NewTransformation failed: %v\n", err)
		return
	}
	err = trans.Init(dbf.Params{
		&dbf.P{N: "c", V: 2},
		&dbf.P{N: "beta", V: 3},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	mdl, err := New("planes")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err := mdl.Init(3, dmg, trans, nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "nvars", mdl.NumVars(), 3)
	chk.Strings(tst, "names", mdl.VarNames(), []string{"damage_0", "damage_1", "damage_2"})

	// sub-models are required
	bad := new(Planes)
	if err := bad.Init(3, nil, trans, nil); err == nil {
		tst.Errorf("Init without dmg law must fail\n")
		return
	}

	// schema + initial values
	his := state.NewHistory(true)
	if err := mdl.PopulateHistory(his); err != nil {
		tst.Errorf("PopulateHistory failed: %v\n", err)
		return
	}
	if err := mdl.InitHistory(his); err != nil {
		tst.Errorf("InitHistory failed: %v\n", err)
		return
	}
	chk.Int(tst, "size", his.Size(), 3)
	chk.Array(tst, "his", 1e-17, his.Access(), []float64{0, 0, 0})

	// set current damage directly through the accessors
	for i, d := range []float64{0.5, 1.0, 1.5} {
		p, err := state.GetScalar(his, io.Sf("damage_%d", i))
		if err != nil {
			tst.Errorf("GetScalar failed: %v\n", err)
			return
		}
		*p = d
	}

	// rates
	shears := [][]float64{{10, 5}, {20, -5}, {1, 1}}
	sliprates := [][]float64{{0.1, 0.2}, {0.05, 0.1}, {1, -1}}
	normal := []float64{100, 50, 10}
	rates, err := mdl.DamageRate(his, shears, sliprates, normal)
	if err != nil {
		tst.Errorf("DamageRate failed: %v\n", err)
		return
	}
	if !his.Compatible(rates) {
		tst.Errorf("rates history must be layout-compatible\n")
		return
	}
	chk.Array(tst, "rates", 1e-14, rates.Access(), []float64{10*0.1 + 5*0.2, 20*0.05 - 5*0.1, 0})

	// work damage does not depend on its own value or the normal stress
	dd, err := mdl.DDamageDHistory(his, shears, sliprates, normal)
	if err != nil {
		tst.Errorf("DDamageDHistory failed: %v\n", err)
		return
	}
	chk.Array(tst, "ddamage/dhistory", 1e-17, dd.Access(), []float64{0, 0, 0})
	dn, err := mdl.DDamageDNormal(his, shears, sliprates, normal)
	if err != nil {
		tst.Errorf("DDamageDNormal failed: %v\n", err)
		return
	}
	chk.Array(tst, "ddamage/dnormal", 1e-17, dn.Access(), []float64{0, 0, 0})

	// mapped damage per plane: d=1 maps to 0.5 for c=2 (any β)
	mapped, err := mdl.MappedDamage(his, normal)
	if err != nil {
		tst.Errorf("MappedDamage failed: %v\n", err)
		return
	}
	chk.Float64(tst, "mapped[1]", 1e-15, mapped[1], 0.5)
	if mapped[0] >= mapped[1] || mapped[1] >= mapped[2] {
		tst.Errorf("mapped damage must increase with the raw damage\n")
		return
	}

	// whole-name-set migration: rename, repopulate, old schema incompatible
	if err := mdl.SetVarNames([]string{"a", "b"}); err == nil {
		tst.Errorf("SetVarNames with wrong count must fail\n")
		return
	}
	if err := mdl.SetVarNames([]string{"basal", "prismatic", "pyramidal"}); err != nil {
		tst.Errorf("SetVarNames failed: %v\n", err)
		return
	}
	fresh := state.NewHistory(true)
	if err := mdl.PopulateHistory(fresh); err != nil {
		tst.Errorf("PopulateHistory failed: %v\n", err)
		return
	}
	chk.Strings(tst, "names", fresh.Names(), []string{"basal", "prismatic", "pyramidal"})
	if fresh.Compatible(his) {
		tst.Errorf("renamed schema must not be compatible with the old one\n")
		return
	}

	// unknown models are rejected by the factory
	_, err = New("nonexistent")
	if err == nil {
		tst.Errorf("New with unknown model must fail\n")
	}
}
