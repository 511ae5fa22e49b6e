// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/MDARIFULHASAN/neml/state"
)

// Model defines slip-plane damage models. A model owns a set of named
// damage variables which it registers into a caller-supplied history
// (PopulateHistory) and initialises (InitHistory); per-step evaluation
// reads current values out of that history and produces rates in a
// layout-compatible one.
//
// The per-plane inputs are the resolved shears and slip rates of the
// systems on each plane ([nplanes][nsystems]) and the plane-normal
// stresses ([nplanes]).
type Model interface {
	Init(nplanes int, dmg PlaneDamage, trans Transformation, prms dbf.Params) error

	NumVars() int
	VarNames() []string
	SetVarNames(names []string) error

	PopulateHistory(his *state.History) error
	InitHistory(his *state.History) error

	// DamageRate returns ḋ for every damage variable
	DamageRate(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error)

	// DDamageDHistory returns the derivative of each variable's rate
	// with respect to the variable itself
	DDamageDHistory(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error)

	// DDamageDNormal returns the derivative of each variable's rate
	// with respect to its plane-normal stress
	DDamageDNormal(his *state.History, shears, sliprates [][]float64, normal []float64) (*state.History, error)

	// MappedDamage returns the [0,1] damage of each plane, the input to
	// projection operators
	MappedDamage(his *state.History, normal []float64) ([]float64, error)
}

// New returns a new damage model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'damage' database", name)
	}
	return allocator(), nil
}

// allocators holds all available damage models; modelname => allocator
var allocators = map[string]func() Model{}
