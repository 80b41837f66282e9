// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meos implements equations of state relating pressure to compression
// and specific internal energy. Pressure is positive under compression and
// the compression measure is η = ρ/ρ0 - 1, with ρ0 the reference density.
package meos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines equations of state
type Model interface {
	Init(prms dbf.Params) error     // initialises model
	GetPrms() dbf.Params            // gets (an example) of parameters
	Pressure(η, e float64) float64  // pressure at compression η and specific energy e
}

// New returns new equation-of-state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
