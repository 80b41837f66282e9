// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"math"

	"github.com/cpmech/gomat/meos"
	"github.com/cpmech/gomat/myield"
	"github.com/cpmech/gomat/qty"
	"github.com/cpmech/gomat/tsr"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// local solver settings. Both tolerances are absolute, so stresses must
// stay within a few decades of the yield stress examples below for the
// residual to be resolvable in float64.
const (
	rmapTol   = 1e-10 // tolerance on the yield residual
	rmapMaxIt = 10    // iteration cap of the plastic return mapping
	enerTol   = 1e-10 // tolerance on the energy fixed point
	enerMaxIt = 50    // iteration cap of the energy fixed point
)

// MisesEOS implements rate-form von Mises plasticity for the deviatoric
// response coupled with an equation of state for the pressure, for explicit
// hydrocodes. The velocity gradient drives one increment per Evaluate:
//
//  1. split L into stretching d and spin w
//  2. rotate the committed stress by half a Jaumann step
//  3. deviatoric elastic predictor s_tr = s + 2Gh·dev(d)
//  4. radial return on f(Δλ) = q_tr - 3GΔλ - Y(λ, Δλ) by Newton iteration,
//     with ∂Y/∂Δλ obtained by complex-step differentiation
//  5. density by the midpoint rule ρ·det(I-½hL)/det(I+½hL)
//  6. specific energy from the midpoint stress power, with the implicit
//     pressure work resolved by a capped fixed point against the EOS
//  7. recombine σ = s - p·I and rotate by the second Jaumann half step
//
// Internal state per point: plastic multiplier λ, specific energy e and
// density ρ, all double-buffered.
type MisesEOS struct {
	μ     float64 // shear modulus
	ρ0    float64 // reference density
	eos   meos.Model
	yield myield.Model
	λ     *Ivars // plastic multiplier
	e     *Ivars // specific internal energy
	ρ     *Ivars // density
}

// add model to factory
func init() {
	allocators["mises-eos"] = func() Model { return new(MisesEOS) }
}

// Name returns the name of this law
func (o *MisesEOS) Name() string {
	return "mises-eos"
}

// SetModels wires the equation of state and the yield function. It must be
// called before Init.
func (o *MisesEOS) SetModels(eos meos.Model, yield myield.Model) {
	o.eos = eos
	o.yield = yield
}

// Init initialises model
func (o *MisesEOS) Init(c qty.Constraint, prms dbf.Params) (err error) {
	if c != qty.Full {
		return chk.Err("mises-eos: only the full 3D constraint is supported; %q is invalid", c)
	}
	if o.eos == nil || o.yield == nil {
		return chk.Err("mises-eos: SetModels must wire an equation of state and a yield function before Init")
	}
	for _, p := range prms {
		switch p.N {
		case "G":
			o.μ = p.V
		case "rho0":
			o.ρ0 = p.V
		default:
			return chk.Err("mises-eos: parameter named %q is incorrect", p.N)
		}
	}
	if o.μ <= 0 {
		return chk.Err("mises-eos: shear modulus G must be positive; G=%g is invalid", o.μ)
	}
	if o.ρ0 <= 0 {
		return chk.Err("mises-eos: reference density rho0 must be positive; rho0=%g is invalid", o.ρ0)
	}
	o.λ = NewIvars(qty.Scalar(qty.Lambda))
	o.e = NewIvars(qty.Scalar(qty.Energy))
	o.ρ = NewIvars(qty.Scalar(qty.Rho))
	return
}

// GetPrms gets (an example) of parameters
func (o *MisesEOS) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "G", V: 1e9},
		&dbf.P{N: "rho0", V: 1000},
	}
}

// InputSpecs returns the quantities read by Evaluate
func (o *MisesEOS) InputSpecs() []qty.Spec {
	return []qty.Spec{
		qty.Matrix(qty.L, 3, 3),
		qty.Vector(qty.Sigma, 6),
		qty.Scalar(qty.TimeStep),
	}
}

// OutputSpecs returns the quantities written by Evaluate
func (o *MisesEOS) OutputSpecs() []qty.Spec {
	return []qty.Spec{qty.Vector(qty.Sigma, 6)}
}

// Evaluate advances the stress and the trial state of point i by one
// increment of the velocity gradient
func (o *MisesEOS) Evaluate(ins, outs []*qty.Values, i int) error {

	// inputs and committed state
	l := utl.Alloc(3, 3)
	ins[qty.L].GetMat(l, i)
	h := ins[qty.TimeStep].GetScalar(i)
	λn := o.λ.Com.GetScalar(i)
	en := o.e.Com.GetScalar(i)
	ρn := o.ρ.Com.GetScalar(i)

	// stretching and spin; strain rate in Mandel form
	d := utl.Alloc(3, 3)
	w := utl.Alloc(3, 3)
	tsr.SymSkw3(d, w, l)
	dm := make([]float64, 6)
	tsr.Ten2Man(dm, d)
	ddev := make([]float64, 6)
	_, εv, _ := tsr.M_devε(ddev, dm)

	// committed pressure, then first Jaumann half step
	σ := make([]float64, 6)
	ins[qty.Sigma].Get(σ, i)
	pn := tsr.M_p(σ)
	jaumann(σ, w, h)

	// deviatoric elastic predictor
	s := make([]float64, 6)
	tsr.M_devσ(s, σ)
	str := make([]float64, 6)
	qtr := 0.0
	for j := 0; j < 6; j++ {
		str[j] = s[j] + 2.0*o.μ*h*ddev[j]
		qtr += str[j] * str[j]
	}
	qtr = math.Sqrt(1.5 * qtr)

	// radial return: f(Δλ) = q_tr - 3GΔλ - Y(λ, Δλ)
	Δλ := 0.0
	α := 1.0
	if f := qtr - real(o.yield.Value(λn, 0, h)); f >= 0 {
		ok := math.Abs(f) < rmapTol
		var nit int
		for nit = 0; nit < rmapMaxIt && !ok; nit++ {
			df := -3.0*o.μ - myield.Deriv(o.yield, λn, Δλ, h)
			Δλ -= f / df
			f = qtr - 3.0*o.μ*Δλ - real(o.yield.Value(λn, complex(Δλ, 0), h))
			ok = math.Abs(f) < rmapTol
		}
		if !ok {
			return &ErrConv{o.Name(), "plastic return mapping", i, nit, f}
		}
		α = 1.0 - 3.0*o.μ*Δλ/qtr
	}
	snew := make([]float64, 6)
	for j := 0; j < 6; j++ {
		snew[j] = α * str[j]
	}

	// density by the midpoint rule on the deformation gradient
	f1 := utl.Alloc(3, 3)
	f2 := utl.Alloc(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			f1[r][c] = -0.5 * h * l[r][c]
			f2[r][c] = 0.5 * h * l[r][c]
		}
		f1[r][r] += 1.0
		f2[r][r] += 1.0
	}
	ρnew := ρn * tsr.Det3(f1) / tsr.Det3(f2)

	// energy predictor: midpoint deviatoric work, trapezoidal pressure work
	ρmid := 0.5 * (ρn + ρnew)
	η := ρnew/o.ρ0 - 1.0
	work := 0.0
	for j := 0; j < 6; j++ {
		work += 0.5 * (s[j] + snew[j]) * ddev[j]
	}
	etil := en + h/ρmid*work - 0.5*h/ρmid*εv*pn

	// the new pressure acts on the new energy and vice versa: fixed point
	enew, δe := en, 0.0
	ok := false
	var nit int
	for nit = 0; nit < enerMaxIt && !ok; nit++ {
		e := etil - 0.5*h/ρmid*εv*o.eos.Pressure(η, enew)
		δe = e - enew
		enew = e
		ok = math.Abs(δe) < enerTol
	}
	if !ok {
		return &ErrConv{o.Name(), "energy fixed point", i, nit, δe}
	}
	p := o.eos.Pressure(η, enew)

	// recombine, then second Jaumann half step
	for j := 0; j < 6; j++ {
		σ[j] = snew[j] - p*tsr.Im[j]
	}
	jaumann(σ, w, h)

	// outputs and trial state
	outs[qty.Sigma].Set(i, σ)
	o.λ.Tri.SetScalar(i, λn+Δλ)
	o.e.Tri.SetScalar(i, enew)
	o.ρ.Tri.SetScalar(i, ρnew)
	return nil
}

// Update commits the trial state of point i
func (o *MisesEOS) Update(ins, outs []*qty.Values, i int) {
	o.λ.Commit(i)
	o.e.Commit(i)
	o.ρ.Commit(i)
}

// Resize resizes the internal-state buffers, seeding the density of new
// points with the reference value
func (o *MisesEOS) Resize(n int) {
	if o.ρ == nil {
		chk.Panic("mises-eos: Init must be called before Resize")
	}
	old := o.ρ.Com.N()
	o.λ.Resize(n)
	o.e.Resize(n)
	o.ρ.Resize(n)
	for i := old; i < n; i++ {
		o.ρ.Com.SetScalar(i, o.ρ0)
		o.ρ.Tri.SetScalar(i, o.ρ0)
	}
}

// Lambda returns the committed plastic multiplier of point i
func (o *MisesEOS) Lambda(i int) float64 {
	return o.λ.Com.GetScalar(i)
}

// Energy returns the committed specific internal energy of point i
func (o *MisesEOS) Energy(i int) float64 {
	return o.e.Com.GetScalar(i)
}

// Rho returns the committed density of point i
func (o *MisesEOS) Rho(i int) float64 {
	return o.ρ.Com.GetScalar(i)
}

// jaumann applies half a step of the corotational stress rotation
//  σ += (h/2)(w·σ - σ·w)
// to the Mandel vector σm; the increment of a symmetric tensor under a skew
// w is symmetric, so the Mandel form is preserved
func jaumann(σm []float64, w [][]float64, h float64) {
	σ := utl.Alloc(3, 3)
	tsr.Man2Ten(σ, σm)
	a := utl.Alloc(3, 3)
	b := utl.Alloc(3, 3)
	tsr.Mul3(a, w, σ)
	tsr.Mul3(b, σ, w)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			σ[r][c] += 0.5 * h * (a[r][c] - b[r][c])
		}
	}
	tsr.Ten2Man(σm, σ)
}
