// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mlaw implements material (stress-strain) laws evaluated at the
// integration points of a finite element mesh.
/*
 *  Every law exchanges data with its host through qty.Values arrays shared
 *  with an evaluation loop (package iploop) or with a Driver. The arrays are
 *  indexed by the quantity identifiers declared in InputSpecs and OutputSpecs.
 *
 *  Internal (history) variables are double-buffered: Evaluate reads the
 *  committed buffer and the inputs of point i, and writes the outputs and the
 *  trial buffer of point i. It never modifies inputs or committed state, so
 *  calling it twice gives identical results. Update publishes the trial
 *  values into the committed buffer, completing the increment.
 *
 *  Evaluate must be safe to call concurrently for distinct point indices:
 *  laws keep per-call scratch only, never shared buffers.
 */
package mlaw

import (
	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the contract between material laws and evaluation loops
type Model interface {
	Name() string                                  // name of this law in the database
	Init(c qty.Constraint, prms dbf.Params) error  // initialises model under constraint c
	GetPrms() dbf.Params                           // gets (an example) of parameters
	InputSpecs() []qty.Spec                        // quantities read by Evaluate
	OutputSpecs() []qty.Spec                       // quantities written by Evaluate
	Evaluate(ins, outs []*qty.Values, i int) error // computes outputs and trial state of point i
	Update(ins, outs []*qty.Values, i int)         // commits the trial state of point i
	Resize(n int)                                  // resizes internal-state buffers to n points
}

// Ivars is one double-buffered internal variable: Com holds the committed
// values and Tri the trial values written by the latest Evaluate
type Ivars struct {
	Com *qty.Values // committed values
	Tri *qty.Values // trial values
}

// NewIvars creates an empty committed/trial pair for the given spec
func NewIvars(spec qty.Spec) *Ivars {
	return &Ivars{qty.NewValues(spec), qty.NewValues(spec)}
}

// Resize changes the point count of both buffers
func (o *Ivars) Resize(n int) {
	o.Com.Resize(n)
	o.Tri.Resize(n)
}

// Commit copies the trial values of point i into the committed buffer
func (o *Ivars) Commit(i int) {
	o.Com.Set(i, o.Tri.Slice(i))
}

// New returns new law
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'law' database", name)
	}
	return allocator(), nil
}

// allocators holds all available laws
var allocators = map[string]func() Model{}
