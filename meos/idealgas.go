// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IdealGas implements the ideal-gas equation of state in terms of the
// specific internal energy:
//  p(η, e) = (γ - 1)·ρ·e = (γ - 1)·ρ0·(1 + η)·e
type IdealGas struct {
	γ    float64 // heat-capacity ratio
	rho0 float64 // reference density
}

// add model to factory
func init() {
	allocators["idealgas"] = func() Model { return new(IdealGas) }
}

// Init initialises model
func (o *IdealGas) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.γ = p.V
		case "rho0":
			o.rho0 = p.V
		default:
			return chk.Err("idealgas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.γ <= 1 {
		return chk.Err("idealgas: gamma=%g must be greater than 1", o.γ)
	}
	if o.rho0 <= 0 {
		return chk.Err("idealgas: rho0=%g must be positive", o.rho0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o IdealGas) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "gamma", V: 1.4},
		&dbf.P{N: "rho0", V: 1.225},
	}
}

// Pressure returns p = (γ-1)·ρ0·(1+η)·e
func (o IdealGas) Pressure(η, e float64) float64 {
	return (o.γ - 1.0) * o.rho0 * (1.0 + η) * e
}
