// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package qty defines the identifiers of physical quantities exchanged
// between material laws and the evaluation loop, and the value arrays
// holding one such quantity for every integration point of a problem.
package qty

import "github.com/cpmech/gosl/io"

// Q identifies a physical quantity. The set is closed: laws declare which
// identifiers they read and write, and loops map identifiers to arrays.
type Q int

const (
	Sigma      Q = iota // stress (Mandel vector)
	DSigmaDEps          // stress-strain tangent
	Eeq                 // equivalent strain
	DEeq                // equivalent strain derivative w.r.t strain
	DSigmaDE            // stress derivative w.r.t nonlocal strain
	Eps                 // strain (Mandel vector)
	EeqNl               // nonlocal equivalent strain
	L                   // velocity gradient (3x3)
	TimeStep            // time increment
	Lambda              // plastic multiplier
	Energy              // specific internal energy
	Rho                 // density
	Kappa               // damage history variable
	NumQ                // sentinel: number of identifiers
)

var qnames = []string{"sig", "dsigdeps", "eeq", "deeq", "dsigde", "eps", "eeqnl", "l", "dt", "lam", "ene", "rho", "kappa"}

// String returns the short name of this quantity
func (q Q) String() string {
	if q < 0 || q >= NumQ {
		return io.Sf("Q(%d)", int(q))
	}
	return qnames[q]
}

// Spec pairs a quantity identifier with its per-point element shape.
// Scalars have shape 1x1, Mandel vectors nrow x 1 and matrices nrow x ncol.
type Spec struct {
	Id   Q
	Nrow int
	Ncol int
}

// Scalar returns the spec of a scalar quantity
func Scalar(id Q) Spec {
	return Spec{id, 1, 1}
}

// Vector returns the spec of a vector quantity with n components
func Vector(id Q, n int) Spec {
	return Spec{id, n, 1}
}

// Matrix returns the spec of a matrix quantity with m x n components
func Matrix(id Q, m, n int) Spec {
	return Spec{id, m, n}
}
