// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SimpleShearElastic computes the hypoelastic response under simple shear
// with the corotational (Jaumann) stress rate
//
//      L = γ̇ e1⊗e2      γ = γ̇ t
//
//      σ12 = G·sin(γ)    σ11 = -σ22 = G·(1-cos(γ))    p = 0
//
// The normal stresses are the hallmark of the Jaumann rate: they appear at
// second order in γ even though the loading is pure shear.
type SimpleShearElastic struct {
	// input
	G  float64 // shear modulus
	Y0 float64 // initial yield stress (for the elastic-limit helpers)
}

// Init initialises this structure
func (o *SimpleShearElastic) Init(prms dbf.Params) {
	o.G = 1e9
	o.Y0 = 1e6
	for _, p := range prms {
		switch p.N {
		case "G":
			o.G = p.V
		case "y0":
			o.Y0 = p.V
		}
	}
}

// Stress computes the Mandel stress at shear strain γ
func (o SimpleShearElastic) Stress(γ float64) (σ []float64) {
	σ = make([]float64, 6)
	σ[0] = o.G * (1.0 - math.Cos(γ))
	σ[1] = -σ[0]
	σ[3] = o.G * math.Sin(γ) * math.Sqrt2
	return
}

// Q computes the von Mises equivalent stress at shear strain γ
//  q = 2·√3·G·|sin(γ/2)|
func (o SimpleShearElastic) Q(γ float64) float64 {
	return 2.0 * math.Sqrt(3.0) * o.G * math.Abs(math.Sin(γ/2.0))
}

// GammaY returns the shear strain at which q reaches the yield stress
func (o SimpleShearElastic) GammaY() float64 {
	return 2.0 * math.Asin(o.Y0/(2.0*math.Sqrt(3.0)*o.G))
}

// TauY returns the shear stress at yield under pure shear, y0/√3
func (o SimpleShearElastic) TauY() float64 {
	return o.Y0 / math.Sqrt(3.0)
}

// CheckStress compares a computed Mandel stress against the solution at γ
func (o SimpleShearElastic) CheckStress(tst *testing.T, msg string, γ float64, σ []float64, tol float64) {
	chk.Array(tst, msg, tol, σ, o.Stress(γ))
}
