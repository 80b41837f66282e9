// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// UniformExpansion computes the density evolution under a uniform volumetric
// stretch L = ε̇·I. The continuum solution of ρ̇ = -ρ·tr(d) is
//
//      ρ(t) = ρ0·exp(-3·ε̇·t)
//
// and the midpoint rule on the deformation gradient advances each step by
// the exact per-step ratio
//
//      ρ_(n+1) = ρ_n · ((1-½hε̇)/(1+½hε̇))³
type UniformExpansion struct {
	// input
	Rho0 float64 // reference density
	Edot float64 // volumetric stretch rate (positive = expansion)
}

// Init initialises this structure
func (o *UniformExpansion) Init(prms dbf.Params) {
	o.Rho0 = 1000
	o.Edot = 1e-3
	for _, p := range prms {
		switch p.N {
		case "rho0":
			o.Rho0 = p.V
		case "edot":
			o.Edot = p.V
		}
	}
}

// Rho returns the continuum density at time t
func (o UniformExpansion) Rho(t float64) float64 {
	return o.Rho0 * math.Exp(-3.0*o.Edot*t)
}

// RhoMidpoint returns the density after n midpoint steps of size h
func (o UniformExpansion) RhoMidpoint(h float64, n int) float64 {
	r := (1.0 - 0.5*h*o.Edot) / (1.0 + 0.5*h*o.Edot)
	return o.Rho0 * math.Pow(r, 3.0*float64(n))
}

// Eta returns the compression measure ρ/ρ0 - 1 for a density ρ
func (o UniformExpansion) Eta(ρ float64) float64 {
	return ρ/o.Rho0 - 1.0
}

// CheckRho compares a computed density against the n-step midpoint value
// and against the continuum limit
func (o UniformExpansion) CheckRho(tst *testing.T, msg string, ρ, h float64, n int, tolMid, tolExact float64) {
	chk.Float64(tst, msg+" (midpoint)", tolMid, ρ, o.RhoMidpoint(h, n))
	chk.Float64(tst, msg+" (continuum)", tolExact, ρ, o.Rho(h*float64(n)))
}
