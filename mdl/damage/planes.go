// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/MDARIFULHASAN/neml/state"
	"github.com/MDARIFULHASAN/neml/tsr"
)

// Planes tracks one scalar damage variable per slip plane. The variable
// evolves with the plane damage law and is mapped to [0,1] by the
// transformation function.
type Planes struct {
	names []string       // one damage variable per plane
	dmg   PlaneDamage    // accumulation law
	trans Transformation // map into [0,1]
}

// add model to factory
func init() {
	allocators["planes"] = func() Model { return new(Planes) }
}

// Init initialises this model with nplanes variables named damage_0,
// damage_1, ... The sub-models must be non-nil and already initialised.
func (o *Planes) Init(nplanes int, dmg PlaneDamage, trans Transformation, prms dbf.Params) (err error) {
	if nplanes < 1 {
		return chk.Err("planes: at least one slip plane is required\n")
	}
	if dmg == nil || trans == nil {
		return chk.Err("planes: dmg and trans models must be both non-nil\n")
	}
	for _, p := range prms {
		return chk.Err("planes: parameter named %q is incorrect\n", p.N)
	}
	o.names = make([]string, nplanes)
	for i := range o.names {
		o.names[i] = io.Sf("damage_%d", i)
	}
	o.dmg = dmg
	o.trans = trans
	return
}

// NumVars returns the number of damage variables
func (o *Planes) NumVars() int { return len(o.names) }

// VarNames returns the names of the damage variables
func (o *Planes) VarNames() []string { return o.names }

// SetVarNames replaces the whole name set; consumers must re-run
// PopulateHistory into a fresh history afterwards
func (o *Planes) SetVarNames(names []string) error {
	if len(names) != len(o.names) {
		return chk.Err("planes: got %d names to rename %d variables", len(names), len(o.names))
	}
	o.names = names
	return nil
}

// PopulateHistory registers the damage variables
func (o *Planes) PopulateHistory(his *state.History) error {
	for _, name := range o.names {
		if err := his.Add(name, tsr.KindScalar); err != nil {
			return err
		}
	}
	return nil
}

// InitHistory writes the initial damage values
func (o *Planes) InitHistory(his *state.History) error {
	for _, name := range o.names {
		p, err := state.GetScalar(his, name)
		if err != nil {
			return err
		}
		*p = o.dmg.Setup()
	}
	return nil
}

// DamageRate returns ḋ for every plane
func (o *Planes) DamageRate(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error) {
	chk.IntAssert(len(shears), len(o.names))
	chk.IntAssert(len(sliprates), len(o.names))
	chk.IntAssert(len(normal), len(o.names))
	rates := his.GetCopy()
	rates.Zero()
	for k, name := range o.names {
		d, err := state.GetScalar(his, name)
		if err != nil {
			return nil, err
		}
		r, err := state.GetScalar(rates, name)
		if err != nil {
			return nil, err
		}
		*r = o.dmg.DamageRate(shears[k], sliprates[k], normal[k], *d)
	}
	return rates, nil
}

// DDamageDHistory returns ∂ḋ/∂d for every plane (each variable depends
// on its own plane only)
func (o *Planes) DDamageDHistory(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error) {
	return o.derivative(his, shears, sliprates, normal, o.dmg.DDamageRateDDamage)
}

// DDamageDNormal returns ∂ḋ/∂σn for every plane
func (o *Planes) DDamageDNormal(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error) {
	return o.derivative(his, shears, sliprates, normal, o.dmg.DDamageRateDNormal)
}

func (o *Planes) derivative(his *state.History, shears, sliprates [][]float64, normal []float64, fcn func(shears, sliprates []float64, normalStress, damage float64) float64) (*state.History, error) {
	chk.IntAssert(len(shears), len(o.names))
	chk.IntAssert(len(sliprates), len(o.names))
	chk.IntAssert(len(normal), len(o.names))
	res := his.GetCopy()
	res.Zero()
	for k, name := range o.names {
		d, err := state.GetScalar(his, name)
		if err != nil {
			return nil, err
		}
		r, err := state.GetScalar(res, name)
		if err != nil {
			return nil, err
		}
		*r = fcn(shears[k], sliprates[k], normal[k], *d)
	}
	return res, nil
}

// MappedDamage returns the [0,1] damage of every plane
func (o *Planes) MappedDamage(his *state.History, normal []float64) ([]float64, error) {
	chk.IntAssert(len(normal), len(o.names))
	res := make([]float64, len(o.names))
	for k, name := range o.names {
		d, err := state.GetScalar(his, name)
		if err != nil {
			return nil, err
		}
		res[k] = o.trans.Map(*d, normal[k])
	}
	return res, nil
}
