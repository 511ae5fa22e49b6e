// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_sigmoid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sigmoid01. endpoints and smoothing")

	fcn, err := NewTransformation("sigmoid")
	if err != nil {
		tst.Errorf("NewTransformation failed: %v\n", err)
		return
	}
	prm := fcn.(*Sigmoid).GetPrms()
	c := prm.Find("c")
	c.V = 2.0
	beta := prm.Find("beta")
	beta.V = 3.0
	if err := fcn.Init(prm); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// endpoints
	chk.Float64(tst, "map(0)", 1e-17, fcn.Map(0, 0), 0)
	chk.Float64(tst, "map(c)", 1e-17, fcn.Map(2, 0), 1)
	chk.Float64(tst, "map(-1)", 1e-17, fcn.Map(-1, 0), 0)
	chk.Float64(tst, "map(c+1)", 1e-17, fcn.Map(3, 0), 1)
	chk.Float64(tst, "map(c/2)", 1e-15, fcn.Map(1, 0), 0.5)

	// monotone increasing inside (0,c)
	D := utl.LinSpace(0.05, 1.95, 20)
	for i := 1; i < len(D); i++ {
		if fcn.Map(D[i], 0) <= fcn.Map(D[i-1], 0) {
			tst.Errorf("map must increase monotonically\n")
			return
		}
	}

	// analytic derivative against central differences
	for _, d := range []float64{0.2, 0.7, 1.0, 1.6} {
		dana := fcn.DMapDDamage(d, 0)
		chk.DerivScaSca(tst, io.Sf("dmap/dd @ %g", d), 1e-8, dana, d, 1e-4, chk.Verbose, func(x float64) (float64, error) {
			return fcn.Map(x, 0), nil
		})
	}
	chk.Float64(tst, "dmap/dnormal", 1e-17, fcn.DMapDNormal(1, 50), 0)

	// invalid parameters
	bad := new(Sigmoid)
	err = bad.Init(nil)
	if err == nil {
		tst.Errorf("Init without 'c' and 'beta' must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	if chk.Verbose {
		plt.Reset(true, nil)
		PlotTransformation(fcn, 2.5, 0, 101, &plt.A{C: "b", L: "sigmoid"})
		plt.Save("/tmp/neml", "dmg_sigmoid")
	}
}
