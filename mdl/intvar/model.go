// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package intvar implements evolution laws for internal variables of
// rate type. Laws register their variables into a history container
// (PopulateHistory / InitHistory) and compute rates and derivatives
// from values fetched out of it.
package intvar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/MDARIFULHASAN/neml/tsr"
)

// ScalarState gathers the quantities a scalar evolution law sees at one
// material point
type ScalarState struct {
	H    float64       // current value of the variable
	A    float64       // equivalent plastic strain
	Adot float64       // rate of the equivalent plastic strain
	S    tsr.Symmetric // stress
	G    tsr.Symmetric // plastic flow direction
	T    float64       // temperature
}

// SymmetricState gathers the quantities a symmetric-tensor evolution law
// sees at one material point
type SymmetricState struct {
	H    tsr.Symmetric // current value of the variable
	A    float64       // equivalent plastic strain
	Adot float64       // rate of the equivalent plastic strain
	S    tsr.Symmetric // stress
	G    tsr.Symmetric // plastic flow direction
	T    float64       // temperature
}

// ScalarVariable defines evolution laws for scalar internal variables.
// Each law contributes three rates: RateP per unit plastic slip,
// RateTime per unit wall time and RateTemp per unit temperature, with
// the full derivative surface for implicit integration. Derivative
// kinds follow the promotion rule over the closed kind set:
// scalar/scalar stays scalar and scalar/symmetric becomes symmetric.
type ScalarVariable interface {
	Init(prms dbf.Params) error
	Name() string
	SetName(name string)
	InitialValue() float64

	RateP(s *ScalarState) float64
	DRatePDH(s *ScalarState) float64
	DRatePDA(s *ScalarState) float64
	DRatePDAdot(s *ScalarState) float64
	DRatePDS(s *ScalarState) tsr.Symmetric
	DRatePDG(s *ScalarState) tsr.Symmetric

	RateTime(s *ScalarState) float64
	DRateTimeDH(s *ScalarState) float64
	DRateTimeDA(s *ScalarState) float64
	DRateTimeDAdot(s *ScalarState) float64
	DRateTimeDS(s *ScalarState) tsr.Symmetric
	DRateTimeDG(s *ScalarState) tsr.Symmetric

	RateTemp(s *ScalarState) float64
	DRateTempDH(s *ScalarState) float64
	DRateTempDA(s *ScalarState) float64
	DRateTempDAdot(s *ScalarState) float64
	DRateTempDS(s *ScalarState) tsr.Symmetric
	DRateTempDG(s *ScalarState) tsr.Symmetric
}

// SymmetricVariable defines evolution laws for symmetric-tensor internal
// variables. Derivatives with respect to scalars stay symmetric;
// derivatives with respect to symmetric quantities promote to rank-four
// blocks (tsr.SymSym).
type SymmetricVariable interface {
	Init(prms dbf.Params) error
	Name() string
	SetName(name string)
	InitialValue() tsr.Symmetric

	RateP(s *SymmetricState) tsr.Symmetric
	DRatePDH(s *SymmetricState) tsr.SymSym
	DRatePDA(s *SymmetricState) tsr.Symmetric
	DRatePDAdot(s *SymmetricState) tsr.Symmetric
	DRatePDS(s *SymmetricState) tsr.SymSym
	DRatePDG(s *SymmetricState) tsr.SymSym

	RateTime(s *SymmetricState) tsr.Symmetric
	DRateTimeDH(s *SymmetricState) tsr.SymSym
	DRateTimeDA(s *SymmetricState) tsr.Symmetric
	DRateTimeDAdot(s *SymmetricState) tsr.Symmetric
	DRateTimeDS(s *SymmetricState) tsr.SymSym
	DRateTimeDG(s *SymmetricState) tsr.SymSym

	RateTemp(s *SymmetricState) tsr.Symmetric
	DRateTempDH(s *SymmetricState) tsr.SymSym
	DRateTempDA(s *SymmetricState) tsr.Symmetric
	DRateTempDAdot(s *SymmetricState) tsr.Symmetric
	DRateTempDS(s *SymmetricState) tsr.SymSym
	DRateTempDG(s *SymmetricState) tsr.SymSym
}

// NewScalar returns a new scalar evolution law
func NewScalar(model, variable string) (ScalarVariable, error) {
	allocator, ok := scalarAllocators[model]
	if !ok {
		return nil, chk.Err("law %q is not available in 'intvar' scalar database", model)
	}
	law := allocator()
	law.SetName(variable)
	return law, nil
}

// NewSymmetric returns a new symmetric-tensor evolution law
func NewSymmetric(model, variable string) (SymmetricVariable, error) {
	allocator, ok := symmetricAllocators[model]
	if !ok {
		return nil, chk.Err("law %q is not available in 'intvar' symmetric database", model)
	}
	law := allocator()
	law.SetName(variable)
	return law, nil
}

// allocators hold all available laws; lawname => allocator
var (
	scalarAllocators    = map[string]func() ScalarVariable{}
	symmetricAllocators = map[string]func() SymmetricVariable{}
)

// Named implements the variable-name bookkeeping shared by all laws
type Named struct {
	name string
}

// Name returns the name of the variable this law evolves
func (o *Named) Name() string { return o.name }

// SetName renames the variable this law evolves
func (o *Named) SetName(name string) { o.name = name }
