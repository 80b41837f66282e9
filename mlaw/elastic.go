// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinearElastic implements Hooke's law σ = D·ε with constant stiffness.
// There is no internal state: Update and Resize are no-ops.
type LinearElastic struct {
	Elasticity
	d [][]float64 // stiffness for the active constraint
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinearElastic) }
}

// Name returns the name of this law
func (o *LinearElastic) Name() string {
	return "lin-elast"
}

// Init initialises model
func (o *LinearElastic) Init(c qty.Constraint, prms dbf.Params) (err error) {
	err = o.Elasticity.Init(c, prms)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "E", "nu", "G", "K":
		default:
			return chk.Err("lin-elast: parameter named %q is incorrect", p.N)
		}
	}
	o.d = o.StiffnessMatrix()
	return
}

// GetPrms gets (an example) of parameters
func (o *LinearElastic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2e11},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// InputSpecs returns the quantities read by Evaluate
func (o *LinearElastic) InputSpecs() []qty.Spec {
	return []qty.Spec{qty.Vector(qty.Eps, o.Nsig)}
}

// OutputSpecs returns the quantities written by Evaluate
func (o *LinearElastic) OutputSpecs() []qty.Spec {
	return []qty.Spec{
		qty.Vector(qty.Sigma, o.Nsig),
		qty.Matrix(qty.DSigmaDEps, o.Nsig, o.Nsig),
	}
}

// Evaluate computes the stress and the constant tangent of point i
func (o *LinearElastic) Evaluate(ins, outs []*qty.Values, i int) error {
	o.Stress(outs[qty.Sigma].Slice(i), ins[qty.Eps].Slice(i))
	outs[qty.DSigmaDEps].SetMat(i, o.d)
	return nil
}

// Update commits the trial state of point i (no internal state here)
func (o *LinearElastic) Update(ins, outs []*qty.Values, i int) {
}

// Resize resizes internal-state buffers (no internal state here)
func (o *LinearElastic) Resize(n int) {
}

// Stress computes σ = D·ε directly, without the loop plumbing
func (o *LinearElastic) Stress(σ, ε []float64) {
	for r := 0; r < o.Nsig; r++ {
		σ[r] = 0
		for c := 0; c < o.Nsig; c++ {
			σ[r] += o.d[r][c] * ε[c]
		}
	}
}
