// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// GradientDamage implements the gradient-enhanced variant of LocalDamage:
// the history κ is driven by a nonlocal equivalent strain computed by the
// host (screened-Poisson projection), which this law receives as an input.
// Besides stress and tangent, Evaluate returns the local equivalent strain
// and its derivative (the projection source term) and the coupling tangent
// ∂σ/∂ε̄ of the staggered host solve.
type GradientDamage struct {
	Elasticity
	eeq EeqMod
	dmg Damage
	κ   *Ivars
	d   [][]float64 // elastic stiffness
}

// add model to factory
func init() {
	allocators["gdm"] = func() Model { return new(GradientDamage) }
}

// Name returns the name of this law
func (o *GradientDamage) Name() string {
	return "gdm"
}

// Init initialises model
func (o *GradientDamage) Init(c qty.Constraint, prms dbf.Params) (err error) {
	err = o.Elasticity.Init(c, prms)
	if err != nil {
		return
	}
	k, ft, α, β := 1.0, 0.0, 0.0, 0.0
	for _, p := range prms {
		switch p.N {
		case "k":
			k = p.V
		case "ft":
			ft = p.V
		case "alpha":
			α = p.V
		case "beta":
			β = p.V
		case "E", "nu", "G", "K":
		default:
			return chk.Err("%s: parameter named %q is incorrect", o.Name(), p.N)
		}
	}
	if ft <= 0 {
		return chk.Err("%s: tensile strength ft must be positive; ft=%g is invalid", o.Name(), ft)
	}
	if α <= 0 || α > 1 {
		return chk.Err("%s: residual fraction alpha must be in (0, 1]; alpha=%g is invalid", o.Name(), α)
	}
	if β <= 0 {
		return chk.Err("%s: softening slope beta must be positive; beta=%g is invalid", o.Name(), β)
	}
	err = o.eeq.Init(k, o.Nu)
	if err != nil {
		return
	}
	o.dmg = Damage{ft / o.E, α, β}
	o.d = o.StiffnessMatrix()
	o.κ = NewIvars(qty.Scalar(qty.Kappa))
	return
}

// GetPrms gets (an example) of parameters
func (o *GradientDamage) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 20000},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "k", V: 10},
		&dbf.P{N: "ft", V: 2},
		&dbf.P{N: "alpha", V: 0.99},
		&dbf.P{N: "beta", V: 100},
	}
}

// InputSpecs returns the quantities read by Evaluate
func (o *GradientDamage) InputSpecs() []qty.Spec {
	return []qty.Spec{
		qty.Vector(qty.Eps, o.Nsig),
		qty.Scalar(qty.EeqNl),
	}
}

// OutputSpecs returns the quantities written by Evaluate
func (o *GradientDamage) OutputSpecs() []qty.Spec {
	return []qty.Spec{
		qty.Vector(qty.Sigma, o.Nsig),
		qty.Matrix(qty.DSigmaDEps, o.Nsig, o.Nsig),
		qty.Scalar(qty.Eeq),
		qty.Vector(qty.DEeq, o.Nsig),
		qty.Vector(qty.DSigmaDE, o.Nsig),
	}
}

// Evaluate computes the damaged stress, the tangents and the projection
// source term of point i
func (o *GradientDamage) Evaluate(ins, outs []*qty.Values, i int) error {
	ε := ins[qty.Eps].Slice(i)
	εnl := ins[qty.EeqNl].GetScalar(i)

	// local measure feeds the host projection
	εeq := o.eeq.Deriv(outs[qty.DEeq].Slice(i), ε)
	outs[qty.Eeq].SetScalar(i, εeq)

	// history driven by the nonlocal strain
	κ := o.κ.Com.GetScalar(i)
	loading := εnl > κ
	if loading {
		κ = εnl
	}
	o.κ.Tri.SetScalar(i, κ)

	// effective and damaged stress
	ω := o.dmg.Omega(κ)
	σe := make([]float64, o.Nsig)
	σ := outs[qty.Sigma].Slice(i)
	for r := 0; r < o.Nsig; r++ {
		σe[r] = 0
		for c := 0; c < o.Nsig; c++ {
			σe[r] += o.d[r][c] * ε[c]
		}
		σ[r] = (1.0 - ω) * σe[r]
	}

	// ∂σ/∂ε at fixed nonlocal strain is secant; softening enters via ∂σ/∂ε̄
	t := outs[qty.DSigmaDEps].Slice(i)
	for r := 0; r < o.Nsig; r++ {
		for c := 0; c < o.Nsig; c++ {
			t[r*o.Nsig+c] = (1.0 - ω) * o.d[r][c]
		}
	}
	dω := 0.0
	if loading {
		dω = o.dmg.DOmegaDKappa(κ)
	}
	dσdεnl := outs[qty.DSigmaDE].Slice(i)
	for r := 0; r < o.Nsig; r++ {
		dσdεnl[r] = -dω * σe[r]
	}
	return nil
}

// Update commits the trial state of point i
func (o *GradientDamage) Update(ins, outs []*qty.Values, i int) {
	o.κ.Commit(i)
}

// Resize resizes the internal-state buffers
func (o *GradientDamage) Resize(n int) {
	if o.κ == nil {
		chk.Panic("%s: Init must be called before Resize", o.Name())
	}
	o.κ.Resize(n)
}

// Kappa returns the committed history of point i
func (o *GradientDamage) Kappa(i int) float64 {
	return o.κ.Com.GetScalar(i)
}
