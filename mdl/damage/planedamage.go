// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package damage implements slip-plane damage models: per-plane damage
// accumulation laws, transformation functions mapping damage into [0,1]
// and models wiring both to the history container
package damage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PlaneDamage defines the accumulation of damage on one slip plane from
// the resolved shears and slip rates of the systems on that plane
type PlaneDamage interface {
	Init(prms dbf.Params) error
	Setup() float64 // initial value of the damage variable

	// DamageRate returns ḋ for the current shears, slip rates,
	// plane-normal stress and damage value
	DamageRate(shears, sliprates []float64, normalStress, damage float64) float64

	// derivatives of DamageRate
	DDamageRateDShear(shears, sliprates []float64, normalStress, damage float64) []float64
	DDamageRateDSlip(shears, sliprates []float64, normalStress, damage float64) []float64
	DDamageRateDNormal(shears, sliprates []float64, normalStress, damage float64) float64
	DDamageRateDDamage(shears, sliprates []float64, normalStress, damage float64) float64
}

// NewPlaneDamage returns a new plane damage law
func NewPlaneDamage(name string) (PlaneDamage, error) {
	allocator, ok := planeDamageAllocators[name]
	if !ok {
		return nil, chk.Err("law %q is not available in 'damage' plane-damage database", name)
	}
	return allocator(), nil
}

// planeDamageAllocators holds all available plane damage laws
var planeDamageAllocators = map[string]func() PlaneDamage{}

// Work accumulates the plastic work spent on the plane
//
//   ḋ = Σ τᵢ γ̇ᵢ
//
type Work struct{}

// add law to factory
func init() {
	planeDamageAllocators["work"] = func() PlaneDamage { return new(Work) }
}

// Init initialises this law (no parameters)
func (o *Work) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		return chk.Err("work: parameter named %q is incorrect\n", p.N)
	}
	return
}

// Setup returns the initial damage value
func (o *Work) Setup() float64 { return 0 }

// DamageRate returns the rate of work accumulation
func (o *Work) DamageRate(shears, sliprates []float64, normalStress, damage float64) (res float64) {
	chk.IntAssert(len(shears), len(sliprates))
	for i, τ := range shears {
		res += τ * sliprates[i]
	}
	return
}

func (o *Work) DDamageRateDShear(shears, sliprates []float64, normalStress, damage float64) []float64 {
	res := make([]float64, len(sliprates))
	copy(res, sliprates)
	return res
}

func (o *Work) DDamageRateDSlip(shears, sliprates []float64, normalStress, damage float64) []float64 {
	res := make([]float64, len(shears))
	copy(res, shears)
	return res
}

func (o *Work) DDamageRateDNormal(shears, sliprates []float64, normalStress, damage float64) float64 {
	return 0
}

func (o *Work) DDamageRateDDamage(shears, sliprates []float64, normalStress, damage float64) float64 {
	return 0
}
