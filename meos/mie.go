// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MieGruneisen implements the Mie-Grüneisen equation of state with a linear
// shock-velocity/particle-velocity Hugoniot reference curve:
//  compression (η > 0):  p = ρ0·c0²·η·(1 + (1 - Γ0/2)·η) / (1 - s·η)² + Γ0·ρ0·e
//  tension     (η ≤ 0):  p = ρ0·c0²·η + Γ0·ρ0·e
// where c0 is the bulk sound speed and s the Hugoniot slope. The Hugoniot
// denominator vanishes at η = 1/s; compressions at or beyond that limit are
// outside the model's validity and panic
type MieGruneisen struct {
	c0   float64 // bulk sound speed
	s    float64 // linear Hugoniot slope
	Γ0   float64 // Grüneisen coefficient at reference density
	rho0 float64 // reference density
}

// add model to factory
func init() {
	allocators["mie"] = func() Model { return new(MieGruneisen) }
}

// Init initialises model
func (o *MieGruneisen) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "c0":
			o.c0 = p.V
		case "s":
			o.s = p.V
		case "gamma0":
			o.Γ0 = p.V
		case "rho0":
			o.rho0 = p.V
		default:
			return chk.Err("mie: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.c0 <= 0 || o.rho0 <= 0 {
		return chk.Err("mie: c0=%g and rho0=%g must be positive", o.c0, o.rho0)
	}
	if o.s < 1 || o.Γ0 < 0 {
		return chk.Err("mie: invalid parameters: s=%g must be ≥ 1 and gamma0=%g must be ≥ 0", o.s, o.Γ0)
	}
	return
}

// GetPrms gets (an example) of parameters (aluminium)
func (o MieGruneisen) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "c0", V: 5328},
		&dbf.P{N: "s", V: 1.338},
		&dbf.P{N: "gamma0", V: 2.0},
		&dbf.P{N: "rho0", V: 2700},
	}
}

// Pressure returns the Mie-Grüneisen pressure at compression η and energy e
func (o MieGruneisen) Pressure(η, e float64) float64 {
	if η <= 0 {
		return o.rho0*o.c0*o.c0*η + o.Γ0*o.rho0*e
	}
	den := 1.0 - o.s*η
	if den <= 0 {
		chk.Panic("mie: compression η=%g is at or beyond the Hugoniot limit 1/s=%g", η, 1.0/o.s)
	}
	pH := o.rho0 * o.c0 * o.c0 * η * (1.0 + (1.0-0.5*o.Γ0)*η) / (den * den)
	return pH + o.Γ0*o.rho0*e
}
