// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package myield

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VonMisesSat implements von Mises plasticity with saturation (Voce) hardening
// plus an optional linear term:
//  Y(λ, Δλ) = y0 + (y∞ - y0)·(1 - exp(-w·a)) + H·a,  a = λ + Δλ
// With y∞ ≥ y0, w ≥ 0 and H ≥ 0 the surface is monotone nondecreasing in both
// λ and the increment, as required by return-mapping solvers
type VonMisesSat struct {
	y0   float64 // initial yield stress
	yinf float64 // saturation yield stress
	w    float64 // saturation rate
	H    float64 // linear hardening modulus
}

// add model to factory
func init() {
	allocators["vm-sat"] = func() Model { return new(VonMisesSat) }
}

// Init initialises model
func (o *VonMisesSat) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "y0":
			o.y0 = p.V
		case "yinf":
			o.yinf = p.V
		case "w":
			o.w = p.V
		case "H":
			o.H = p.V
		default:
			return chk.Err("vm-sat: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.yinf == 0 {
		o.yinf = o.y0
	}
	if o.y0 <= 0 {
		return chk.Err("vm-sat: y0=%g must be positive", o.y0)
	}
	if o.yinf < o.y0 || o.w < 0 || o.H < 0 {
		return chk.Err("vm-sat: invalid parameters: yinf=%g must be ≥ y0=%g, w=%g and H=%g must be ≥ 0", o.yinf, o.y0, o.w, o.H)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VonMisesSat) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "y0", V: 1e6},
		&dbf.P{N: "yinf", V: 1.5e6},
		&dbf.P{N: "w", V: 100},
		&dbf.P{N: "H", V: 0},
	}
}

// Value returns the yield stress at accumulated λ and increment Δλ
func (o VonMisesSat) Value(λ float64, Δλ complex128, h float64) complex128 {
	a := complex(λ, 0) + Δλ
	return complex(o.y0, 0) + complex(o.yinf-o.y0, 0)*(1.0-cmplx.Exp(complex(-o.w, 0)*a)) + complex(o.H, 0)*a
}
