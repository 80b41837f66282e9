// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package myield

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VonMises implements perfect plasticity: the yield stress is the constant y0
// regardless of plastic history
type VonMises struct {
	y0 float64 // initial (and only) yield stress
}

// add model to factory
func init() {
	allocators["vm"] = func() Model { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "y0":
			o.y0 = p.V
		default:
			return chk.Err("vm: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.y0 <= 0 {
		return chk.Err("vm: y0=%g must be positive", o.y0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "y0", V: 1e6},
	}
}

// Value returns the yield stress: Y = y0
func (o VonMises) Value(λ float64, Δλ complex128, h float64) complex128 {
	return complex(o.y0, 0)
}
