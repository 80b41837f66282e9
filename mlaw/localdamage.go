// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"math"

	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Damage holds the exponential softening law shared by the damage models
//  ω(κ) = 1 - κ0/κ·(1 - α + α·exp(β(κ0-κ)))   for κ > κ0, else 0
// where α sets the residual stress fraction and β the softening slope
type Damage struct {
	Kap0 float64 // damage threshold ft/E
	Alp  float64 // residual fraction
	Bet  float64 // softening slope
}

// Omega returns the damage variable for the history κ
func (o *Damage) Omega(κ float64) float64 {
	if κ <= o.Kap0 {
		return 0
	}
	return 1.0 - o.Kap0/κ*(1.0-o.Alp+o.Alp*math.Exp(o.Bet*(o.Kap0-κ)))
}

// DOmegaDKappa returns dω/dκ
func (o *Damage) DOmegaDKappa(κ float64) float64 {
	if κ <= o.Kap0 {
		return 0
	}
	ex := math.Exp(o.Bet * (o.Kap0 - κ))
	return o.Kap0/(κ*κ)*(1.0-o.Alp+o.Alp*ex) + o.Kap0/κ*o.Alp*o.Bet*ex
}

// LocalDamage implements isotropic damage driven by the local modified von
// Mises equivalent strain: σ = (1-ω(κ))·D·ε with κ the largest equivalent
// strain ever reached (monotone, double-buffered).
type LocalDamage struct {
	Elasticity
	eeq EeqMod
	dmg Damage
	κ   *Ivars
	d   [][]float64 // elastic stiffness
}

// add model to factory
func init() {
	allocators["dmg"] = func() Model { return new(LocalDamage) }
}

// Name returns the name of this law
func (o *LocalDamage) Name() string {
	return "dmg"
}

// Init initialises model
func (o *LocalDamage) Init(c qty.Constraint, prms dbf.Params) (err error) {
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
func (o *LocalDamage) GetPrms() dbf.Params {
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
func (o *LocalDamage) InputSpecs() []qty.Spec {
	return []qty.Spec{qty.Vector(qty.Eps, o.Nsig)}
}

// OutputSpecs returns the quantities written by Evaluate
func (o *LocalDamage) OutputSpecs() []qty.Spec {
	return []qty.Spec{
		qty.Vector(qty.Sigma, o.Nsig),
		qty.Matrix(qty.DSigmaDEps, o.Nsig, o.Nsig),
		qty.Scalar(qty.Kappa),
	}
}

// Evaluate computes the damaged stress, the consistent tangent and the
// trial history of point i
func (o *LocalDamage) Evaluate(ins, outs []*qty.Values, i int) error {
	ε := ins[qty.Eps].Slice(i)
	dεeq := make([]float64, o.Nsig)
	εeq := o.eeq.Deriv(dεeq, ε)

	// monotone history: load only beyond the committed level
	κ := o.κ.Com.GetScalar(i)
	loading := εeq > κ
	if loading {
		κ = εeq
	}
	o.κ.Tri.SetScalar(i, κ)
	outs[qty.Kappa].SetScalar(i, κ)

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

	// consistent tangent: secant part plus, under loading, the softening dyad
	dω := 0.0
	if loading {
		dω = o.dmg.DOmegaDKappa(κ)
	}
	t := outs[qty.DSigmaDEps].Slice(i)
	for r := 0; r < o.Nsig; r++ {
		for c := 0; c < o.Nsig; c++ {
			t[r*o.Nsig+c] = (1.0-ω)*o.d[r][c] - dω*σe[r]*dεeq[c]
		}
	}
	return nil
}

// EvaluateKappa returns the trial history for a given strain, without
// touching any buffer (direct style)
func (o *LocalDamage) EvaluateKappa(κn float64, ε []float64) float64 {
	εeq := o.eeq.Value(ε)
	if εeq > κn {
		return εeq
	}
	return κn
}

// Update commits the trial state of point i
func (o *LocalDamage) Update(ins, outs []*qty.Values, i int) {
	o.κ.Commit(i)
}

// Resize resizes the internal-state buffers
func (o *LocalDamage) Resize(n int) {
	if o.κ == nil {
		chk.Panic("%s: Init must be called before Resize", o.Name())
	}
	o.κ.Resize(n)
}

// Kappa returns the committed history of point i
func (o *LocalDamage) Kappa(i int) float64 {
	return o.κ.Com.GetScalar(i)
}
