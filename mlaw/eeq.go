// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"math"

	"github.com/cpmech/gomat/qty"
	"github.com/cpmech/gomat/tsr"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// EeqMod computes the modified von Mises equivalent strain
//  εeq = k1·I1 + √((k1·I1)² + k2·J2)
// with I1 the trace of ε, J2 the second invariant of its deviator,
//  k1 = (k-1)/(2k(1-2ν))   k2 = 3/(k(1+ν)²)
// and k the ratio of compressive to tensile strength. Reduced strain
// vectors are zero-padded to the full six Mandel components, so the measure
// is the same under every constraint.
type EeqMod struct {
	K  float64 // compressive to tensile strength ratio
	Nu float64 // Poisson's coefficient
	k1 float64
	k2 float64
}

// Init initialises the measure constants
func (o *EeqMod) Init(k, ν float64) error {
	if k < 1 {
		return chk.Err("eeq: strength ratio k must be at least 1; k=%g is invalid", k)
	}
	if ν < 0 || ν >= 0.5 {
		return chk.Err("eeq: Poisson's coefficient must be in [0, 0.5); nu=%g is invalid", ν)
	}
	o.K = k
	o.Nu = ν
	o.k1 = (k - 1.0) / (2.0 * k * (1.0 - 2.0*ν))
	o.k2 = 3.0 / (k * (1.0 + ν) * (1.0 + ν))
	return nil
}

// Value returns the equivalent strain of ε (Mandel, possibly reduced)
func (o *EeqMod) Value(ε []float64) float64 {
	f := make([]float64, 6)
	copy(f, ε)
	e := make([]float64, 6)
	eno, εv, _ := tsr.M_devε(e, f)
	a := o.k1 * εv
	return a + math.Sqrt(a*a+o.k2*eno*eno/2.0)
}

// Deriv fills d with ∂εeq/∂ε and returns the equivalent strain. d and ε
// have the same (possibly reduced) number of components. At the origin,
// where the measure has a kink, the volumetric branch is returned.
func (o *EeqMod) Deriv(d, ε []float64) float64 {
	chk.IntAssert(len(d), len(ε))
	f := make([]float64, 6)
	copy(f, ε)
	e := make([]float64, 6)
	eno, εv, _ := tsr.M_devε(e, f)
	a := o.k1 * εv
	sq := math.Sqrt(a*a + o.k2*eno*eno/2.0)
	for i := 0; i < len(d); i++ {
		d[i] = o.k1 * tsr.Im[i]
		if sq > 0 {
			d[i] += (a*o.k1*tsr.Im[i] + 0.5*o.k2*e[i]) / sq
		}
	}
	return a + sq
}

// ModMisesEeq exposes the modified von Mises measure through the law
// contract: strain in, equivalent strain and derivative out. There is no
// internal state.
type ModMisesEeq struct {
	eeq  EeqMod
	nsig int
}

// add model to factory
func init() {
	allocators["mod-mises"] = func() Model { return new(ModMisesEeq) }
}

// Name returns the name of this law
func (o *ModMisesEeq) Name() string {
	return "mod-mises"
}

// Init initialises model
func (o *ModMisesEeq) Init(c qty.Constraint, prms dbf.Params) (err error) {
	o.nsig = c.QDim()
	k, ν := 1.0, 0.0
	for _, p := range prms {
		switch p.N {
		case "k":
			k = p.V
		case "nu":
			ν = p.V
		default:
			return chk.Err("mod-mises: parameter named %q is incorrect", p.N)
		}
	}
	return o.eeq.Init(k, ν)
}

// GetPrms gets (an example) of parameters
func (o *ModMisesEeq) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "k", V: 10},
		&dbf.P{N: "nu", V: 0.2},
	}
}

// InputSpecs returns the quantities read by Evaluate
func (o *ModMisesEeq) InputSpecs() []qty.Spec {
	return []qty.Spec{qty.Vector(qty.Eps, o.nsig)}
}

// OutputSpecs returns the quantities written by Evaluate
func (o *ModMisesEeq) OutputSpecs() []qty.Spec {
	return []qty.Spec{
		qty.Scalar(qty.Eeq),
		qty.Vector(qty.DEeq, o.nsig),
	}
}

// Evaluate computes the equivalent strain of point i and its derivative
func (o *ModMisesEeq) Evaluate(ins, outs []*qty.Values, i int) error {
	εeq := o.eeq.Deriv(outs[qty.DEeq].Slice(i), ins[qty.Eps].Slice(i))
	outs[qty.Eeq].SetScalar(i, εeq)
	return nil
}

// Update commits the trial state of point i (no internal state here)
func (o *ModMisesEeq) Update(ins, outs []*qty.Values, i int) {
}

// Resize resizes internal-state buffers (no internal state here)
func (o *ModMisesEeq) Resize(n int) {
}
