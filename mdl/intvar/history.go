// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intvar

import (
	"github.com/MDARIFULHASAN/neml/state"
	"github.com/MDARIFULHASAN/neml/tsr"
)

// PopulateHistory registers the variables of all given laws into a
// caller-supplied history (schema construction; no values yet)
func PopulateHistory(his *state.History, scalars []ScalarVariable, symmetrics []SymmetricVariable) error {
	for _, law := range scalars {
		if err := his.Add(law.Name(), tsr.KindScalar); err != nil {
			return err
		}
	}
	for _, law := range symmetrics {
		if err := his.Add(law.Name(), tsr.KindSymmetric); err != nil {
			return err
		}
	}
	return nil
}

// InitHistory writes the initial value of every law into its previously
// registered slot
func InitHistory(his *state.History, scalars []ScalarVariable, symmetrics []SymmetricVariable) error {
	for _, law := range scalars {
		p, err := state.GetScalar(his, law.Name())
		if err != nil {
			return err
		}
		*p = law.InitialValue()
	}
	for _, law := range symmetrics {
		v, err := state.Get[tsr.Symmetric](his, law.Name())
		if err != nil {
			return err
		}
		copy(v, law.InitialValue())
	}
	return nil
}

// RateHistory computes the total rate ḣ of every law at the states sca
// and sym (one state per law, in order) and returns the rates in a new
// history layout-compatible with his. Tdot weighs the temperature rates.
//
//   ḣ = RateP + RateTime + Ṫ RateTemp
func RateHistory(his *state.History, Tdot float64, scalars []ScalarVariable, sca []*ScalarState, symmetrics []SymmetricVariable, sym []*SymmetricState) (*state.History, error) {
	rates := his.GetCopy()
	rates.Zero()
	for i, law := range scalars {
		p, err := state.GetScalar(rates, law.Name())
		if err != nil {
			return nil, err
		}
		*p = law.RateP(sca[i]) + law.RateTime(sca[i]) + Tdot*law.RateTemp(sca[i])
	}
	for i, law := range symmetrics {
		v, err := state.Get[tsr.Symmetric](rates, law.Name())
		if err != nil {
			return nil, err
		}
		rp := law.RateP(sym[i])
		rt := law.RateTime(sym[i])
		rT := law.RateTemp(sym[i])
		for j := 0; j < 6; j++ {
			v[j] = rp[j] + rt[j] + Tdot*rT[j]
		}
	}
	return rates, nil
}
