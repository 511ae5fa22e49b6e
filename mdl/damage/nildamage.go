// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/MDARIFULHASAN/neml/state"
	"github.com/MDARIFULHASAN/neml/tsr"
)

// NilDamage is the inert damage model: a single variable that never
// evolves and a mapped damage of zero on every plane. Useful to run an
// undamaged crystal through the damaged machinery.
type NilDamage struct {
	names []string
}

// add model to factory
func init() {
	allocators["nil"] = func() Model { return new(NilDamage) }
}

// Init initialises this model; the sub-models are ignored
func (o *NilDamage) Init(nplanes int, dmg PlaneDamage, trans Transformation, prms dbf.Params) (err error) {
	for _, p := range prms {
		return chk.Err("nil: parameter named %q is incorrect\n", p.N)
	}
	o.names = []string{"whatever"}
	return
}

// NumVars returns the number of damage variables
func (o *NilDamage) NumVars() int { return len(o.names) }

// VarNames returns the names of the damage variables
func (o *NilDamage) VarNames() []string { return o.names }

// SetVarNames replaces the whole name set
func (o *NilDamage) SetVarNames(names []string) error {
	if len(names) != len(o.names) {
		return chk.Err("nil: got %d names to rename %d variables", len(names), len(o.names))
	}
	o.names = names
	return nil
}

// PopulateHistory registers the damage variables
func (o *NilDamage) PopulateHistory(his *state.History) error {
	for _, name := range o.names {
		if err := his.Add(name, tsr.KindScalar); err != nil {
			return err
		}
	}
	return nil
}

// InitHistory writes the initial damage values
func (o *NilDamage) InitHistory(his *state.History) error {
	for _, name := range o.names {
		p, err := state.GetScalar(his, name)
		if err != nil {
			return err
		}
		*p = 0
	}
	return nil
}

// DamageRate returns zero rates
func (o *NilDamage) DamageRate(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error) {
	rates := his.GetCopy()
	rates.Zero()
	return rates, nil
}

// DDamageDHistory returns zero derivatives
func (o *NilDamage) DDamageDHistory(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error) {
	res := his.GetCopy()
	res.Zero()
	return res, nil
}

// DDamageDNormal returns zero derivatives
func (o *NilDamage) DDamageDNormal(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error) {
	res := his.GetCopy()
	res.Zero()
	return res, nil
}

// MappedDamage returns zero damage on every plane
func (o *NilDamage) MappedDamage(his *state.History, normal []float64) ([]float64, error) {
	return make([]float64, len(normal)), nil
}
