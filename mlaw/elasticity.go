// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"github.com/cpmech/gomat/qty"
	"github.com/cpmech/gomat/tsr"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Elasticity holds the isotropic elastic moduli and computes stiffness
// matrices under the supported constraints. Laws needing an elastic trunk
// embed this structure and forward the "E", "nu", "G", "K" parameters.
type Elasticity struct {
	C    qty.Constraint // active constraint
	Nsig int            // number of stress components under C
	E    float64        // Young's modulus
	Nu   float64        // Poisson's coefficient
	G    float64        // shear modulus
	K    float64        // bulk modulus
}

// Init initialises the moduli from parameters. Either the pair (E, nu) or
// the pair (K, G) must be given; the missing pair is derived.
func (o *Elasticity) Init(c qty.Constraint, prms dbf.Params) (err error) {
	o.C = c
	o.Nsig = c.QDim()
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "G":
			o.G = p.V
		case "K":
			o.K = p.V
		}
	}
	switch {
	case o.E > 0:
		if o.Nu < 0 || o.Nu >= 0.5 {
			return chk.Err("elasticity: Poisson's coefficient must be in [0, 0.5); nu=%g is invalid", o.Nu)
		}
		o.G = o.E / (2.0 * (1.0 + o.Nu))
		o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	case o.K > 0 && o.G > 0:
		o.E = 9.0 * o.K * o.G / (3.0*o.K + o.G)
		o.Nu = (3.0*o.K - 2.0*o.G) / (2.0 * (3.0*o.K + o.G))
	default:
		return chk.Err("elasticity: either {E, nu} or {K, G} must be given (E=%g, nu=%g, K=%g, G=%g)", o.E, o.Nu, o.K, o.G)
	}
	return
}

// CalcD computes the elastic stiffness D for the active constraint.
// The matrix must be Nsig x Nsig (1x1 under uniaxial constraints).
func (o *Elasticity) CalcD(D [][]float64) {
	if len(D) != o.Nsig {
		chk.Panic("elasticity: D matrix with %d rows mismatches %d stress components", len(D), o.Nsig)
	}
	switch o.C {
	case qty.UniaxialStress:
		D[0][0] = o.E
	case qty.UniaxialStrain:
		D[0][0] = o.K + 4.0*o.G/3.0
	case qty.PlaneStress:
		c := o.E / (1.0 - o.Nu*o.Nu)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				D[i][j] = 0
			}
		}
		D[0][0] = c
		D[0][1] = c * o.Nu
		D[1][0] = c * o.Nu
		D[1][1] = c
		D[3][3] = c * (1.0 - o.Nu)
	default: // plane strain and full 3D share the Mandel form
		for i := 0; i < o.Nsig; i++ {
			for j := 0; j < o.Nsig; j++ {
				D[i][j] = o.K*tsr.Im[i]*tsr.Im[j] + 2.0*o.G*tsr.Psd[i][j]
			}
		}
	}
}

// StiffnessMatrix allocates and computes D for the active constraint
func (o *Elasticity) StiffnessMatrix() (D [][]float64) {
	D = utl.Alloc(o.Nsig, o.Nsig)
	o.CalcD(D)
	return
}
