// Copyright 2026 The Neml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intvar

import "github.com/MDARIFULHASAN/neml/tsr"

// ZeroRateScalar supplies zero wall-time and temperature rates with zero
// derivatives. Scalar laws that evolve with plastic slip only embed it.
type ZeroRateScalar struct{}

func (o ZeroRateScalar) RateTime(s *ScalarState) float64            { return 0 }
func (o ZeroRateScalar) DRateTimeDH(s *ScalarState) float64         { return 0 }
func (o ZeroRateScalar) DRateTimeDA(s *ScalarState) float64         { return 0 }
func (o ZeroRateScalar) DRateTimeDAdot(s *ScalarState) float64      { return 0 }
func (o ZeroRateScalar) DRateTimeDS(s *ScalarState) tsr.Symmetric   { return tsr.NewSymmetric() }
func (o ZeroRateScalar) DRateTimeDG(s *ScalarState) tsr.Symmetric   { return tsr.NewSymmetric() }

func (o ZeroRateScalar) RateTemp(s *ScalarState) float64            { return 0 }
func (o ZeroRateScalar) DRateTempDH(s *ScalarState) float64         { return 0 }
func (o ZeroRateScalar) DRateTempDA(s *ScalarState) float64         { return 0 }
func (o ZeroRateScalar) DRateTempDAdot(s *ScalarState) float64      { return 0 }
func (o ZeroRateScalar) DRateTempDS(s *ScalarState) tsr.Symmetric   { return tsr.NewSymmetric() }
func (o ZeroRateScalar) DRateTempDG(s *ScalarState) tsr.Symmetric   { return tsr.NewSymmetric() }

// ZeroRateSymmetric supplies zero wall-time and temperature rates with
// zero derivatives. Symmetric laws that evolve with plastic slip only
// embed it.
type ZeroRateSymmetric struct{}

func (o ZeroRateSymmetric) RateTime(s *SymmetricState) tsr.Symmetric      { return tsr.NewSymmetric() }
func (o ZeroRateSymmetric) DRateTimeDH(s *SymmetricState) tsr.SymSym      { return tsr.NewSymSym() }
func (o ZeroRateSymmetric) DRateTimeDA(s *SymmetricState) tsr.Symmetric   { return tsr.NewSymmetric() }
func (o ZeroRateSymmetric) DRateTimeDAdot(s *SymmetricState) tsr.Symmetric { return tsr.NewSymmetric() }
func (o ZeroRateSymmetric) DRateTimeDS(s *SymmetricState) tsr.SymSym      { return tsr.NewSymSym() }
func (o ZeroRateSymmetric) DRateTimeDG(s *SymmetricState) tsr.SymSym      { return tsr.NewSymSym() }

func (o ZeroRateSymmetric) RateTemp(s *SymmetricState) tsr.Symmetric      { return tsr.NewSymmetric() }
func (o ZeroRateSymmetric) DRateTempDH(s *SymmetricState) tsr.SymSym      { return tsr.NewSymSym() }
func (o ZeroRateSymmetric) DRateTempDA(s *SymmetricState) tsr.Symmetric   { return tsr.NewSymmetric() }
func (o ZeroRateSymmetric) DRateTempDAdot(s *SymmetricState) tsr.Symmetric { return tsr.NewSymmetric() }
func (o ZeroRateSymmetric) DRateTempDS(s *SymmetricState) tsr.SymSym      { return tsr.NewSymSym() }
func (o ZeroRateSymmetric) DRateTempDG(s *SymmetricState) tsr.SymSym      { return tsr.NewSymSym() }
