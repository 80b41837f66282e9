// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package myield implements yield-surface functions Y(λ, Δλ) for plastic
// return mappings. The increment argument is complex so that return-mapping
// solvers can obtain ∂Y/∂Δλ by complex-step differentiation: evaluating
// Y(λ, Δλ+iε) and reading Im(Y)/ε gives the derivative to machine precision,
// without the subtractive cancellation of a real finite difference.
// Implementations must therefore be analytic in the increment (built from
// cmplx functions), and monotone nondecreasing in both λ and Re(Δλ).
package myield

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CS is the complex-step size used to differentiate yield functions
const CS = 1e-10

// Model defines yield-surface functions
type Model interface {
	Init(prms dbf.Params) error                         // initialises model
	GetPrms() dbf.Params                                // gets (an example) of parameters
	Value(λ float64, Δλ complex128, h float64) complex128 // yield stress at accumulated λ, increment Δλ and time step h
}

// Deriv computes ∂Y/∂Δλ by complex-step differentiation
func Deriv(m Model, λ, Δλ, h float64) float64 {
	return imag(m.Value(λ, complex(Δλ, CS), h)) / CS
}

// New returns new yield model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'yield' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
