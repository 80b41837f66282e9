// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Bulk implements the linear (Grüneisen-coupled) equation of state
//  p(η, e) = K·η + Γ·ρ0·e
// With Γ = 0 it reduces to the standard bulk-modulus pressure-volume law
type Bulk struct {
	K    float64 // bulk modulus
	Γ    float64 // Grüneisen coefficient
	rho0 float64 // reference density
}

// add model to factory
func init() {
	allocators["bulk"] = func() Model { return new(Bulk) }
}

// Init initialises model
func (o *Bulk) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "gamma":
			o.Γ = p.V
		case "rho0":
			o.rho0 = p.V
		default:
			return chk.Err("bulk: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.K <= 0 {
		return chk.Err("bulk: K=%g must be positive", o.K)
	}
	if o.Γ != 0 && o.rho0 <= 0 {
		return chk.Err("bulk: rho0=%g must be positive when gamma is nonzero", o.rho0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Bulk) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 2.2e9},
		&dbf.P{N: "gamma", V: 0},
		&dbf.P{N: "rho0", V: 1000},
	}
}

// Pressure returns p = K·η + Γ·ρ0·e
func (o Bulk) Pressure(η, e float64) float64 {
	return o.K*η + o.Γ*o.rho0*e
}
