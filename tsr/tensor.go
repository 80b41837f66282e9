// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements helpers for second order tensors represented in the
// Mandel basis, in which a symmetric 3x3 tensor is stored as the vector
//  {t00, t11, t22, t01*sqrt(2), t12*sqrt(2), t02*sqrt(2)}
// Under plane conditions, only the first four components are kept. Mean
// pressure is positive under compression.
package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	SQ2 = math.Sqrt2         // sqrt(2)
	SQ3 = 1.7320508075688772 // sqrt(3)
)

// Im is the Mandel representation of the second order identity tensor
var Im = []float64{1, 1, 1, 0, 0, 0}

// Psd is the Mandel representation of the fourth order symmetric-deviatoric
// projector: dev(t) = Psd * t
var Psd [][]float64

func init() {
	Psd = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Psd[i][j] = -1.0 / 3.0
		}
		Psd[i][i] = 2.0 / 3.0
		Psd[3+i][3+i] = 1.0
	}
}

// Ten2Man converts a symmetric 3x3 tensor to its Mandel vector
//  man -- [6] result
//  ten -- [3][3] symmetric tensor
func Ten2Man(man []float64, ten [][]float64) {
	chk.IntAssert(len(man), 6)
	man[0] = ten[0][0]
	man[1] = ten[1][1]
	man[2] = ten[2][2]
	man[3] = (ten[0][1] + ten[1][0]) * SQ2 / 2.0
	man[4] = (ten[1][2] + ten[2][1]) * SQ2 / 2.0
	man[5] = (ten[0][2] + ten[2][0]) * SQ2 / 2.0
}

// Man2Ten converts a Mandel vector to the full 3x3 tensor
//  ten -- [3][3] result
//  man -- [6] Mandel components
func Man2Ten(ten [][]float64, man []float64) {
	chk.IntAssert(len(man), 6)
	ten[0][0] = man[0]
	ten[1][1] = man[1]
	ten[2][2] = man[2]
	ten[0][1] = man[3] / SQ2
	ten[1][0] = man[3] / SQ2
	ten[1][2] = man[4] / SQ2
	ten[2][1] = man[4] / SQ2
	ten[0][2] = man[5] / SQ2
	ten[2][0] = man[5] / SQ2
}

// M_p returns the mean pressure of σ (Mandel), positive under compression
func M_p(σ []float64) float64 {
	return -(σ[0] + σ[1] + σ[2]) / 3.0
}

// M_q returns the von Mises equivalent (deviatoric) stress of σ (Mandel)
func M_q(σ []float64) float64 {
	p := M_p(σ)
	sum := 0.0
	for i := 0; i < len(σ); i++ {
		s := σ[i] + p*Im[i]
		sum += s * s
	}
	return math.Sqrt(1.5 * sum)
}

// M_devσ fills s with the deviator of σ (Mandel) and returns invariants
//  sno -- Euclidean norm of s
//  p   -- mean pressure, positive under compression
//  q   -- von Mises equivalent stress
func M_devσ(s, σ []float64) (sno, p, q float64) {
	p = M_p(σ)
	for i := 0; i < len(σ); i++ {
		s[i] = σ[i] + p*Im[i]
		sno += s[i] * s[i]
	}
	sno = math.Sqrt(sno)
	q = math.Sqrt(1.5) * sno
	return
}

// M_devε fills e with the deviator of ε (Mandel) and returns invariants
//  eno -- Euclidean norm of e
//  εv  -- volumetric strain (full trace)
//  εd  -- equivalent deviatoric strain
func M_devε(e, ε []float64) (eno, εv, εd float64) {
	εv = ε[0] + ε[1] + ε[2]
	for i := 0; i < len(ε); i++ {
		e[i] = ε[i] - εv*Im[i]/3.0
		eno += e[i] * e[i]
	}
	eno = math.Sqrt(eno)
	εd = math.Sqrt(2.0/3.0) * eno
	return
}

// SymSkw3 decomposes the 3x3 tensor l into symmetric and skew parts
//  d -- [3][3] symmetric part: (l + lᵀ)/2
//  w -- [3][3] skew part: (l - lᵀ)/2
func SymSkw3(d, w, l [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d[i][j] = (l[i][j] + l[j][i]) / 2.0
			w[i][j] = (l[i][j] - l[j][i]) / 2.0
		}
	}
}

// Mul3 computes the 3x3 product c = a*b; c must not alias a or b
func Mul3(c, a, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
}

// Det3 returns the determinant of the 3x3 tensor a
func Det3(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}
