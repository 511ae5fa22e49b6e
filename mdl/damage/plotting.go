// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotTransformation plots the damage→[0,1] map of a transformation
// function for damage in [0,dmax] at a fixed normal stress
func PlotTransformation(trans Transformation, dmax, normalStress float64, npts int, args *plt.A) {
	D := utl.LinSpace(0, dmax, npts)
	Y := make([]float64, npts)
	for i, d := range D {
		Y[i] = trans.Map(d, normalStress)
	}
	plt.Plot(D, Y, args)
	plt.Gll("$d$", "$\\mathrm{map}(d)$", nil)
}

// PlotEvolution integrates ḋ with forward Euler under constant shears,
// slip rates and normal stress and plots the raw and the mapped damage
// over time
func PlotEvolution(dmg PlaneDamage, trans Transformation, shears, sliprates []float64, normalStress, tf float64, npts int, argsRaw, argsMapped *plt.A) {
	T := utl.LinSpace(0, tf, npts)
	D := make([]float64, npts)
	M := make([]float64, npts)
	D[0] = dmg.Setup()
	M[0] = trans.Map(D[0], normalStress)
	for i := 1; i < npts; i++ {
		Δt := T[i] - T[i-1]
		D[i] = D[i-1] + Δt*dmg.DamageRate(shears, sliprates, normalStress, D[i-1])
		M[i] = trans.Map(D[i], normalStress)
	}
	plt.Plot(T, D, argsRaw)
	plt.Plot(T, M, argsMapped)
	plt.Gll("$t$", "$d$", nil)
}
