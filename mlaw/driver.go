// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"testing"

	"github.com/cpmech/gomat/qty"
	"github.com/cpmech/gomat/tsr"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Increment is one segment of a loading path: a constant velocity gradient
// applied over a number of equal sub-steps
type Increment struct {
	L      [][]float64 // velocity gradient (3x3)
	H      float64     // time step of every sub-step
	Nsteps int         // number of sub-steps
}

// Path holds a piecewise-constant velocity-gradient loading history
type Path struct {
	Incs []*Increment
}

// AddIncrement appends a segment with velocity gradient l
func (o *Path) AddIncrement(l [][]float64, h float64, nsteps int) {
	o.Incs = append(o.Incs, &Increment{l, h, nsteps})
}

// SetShear makes this path a single simple-shear segment: L01 = γ̇
func (o *Path) SetShear(γdot, h float64, nsteps int) {
	l := utl.Alloc(3, 3)
	l[0][1] = γdot
	o.Incs = []*Increment{{l, h, nsteps}}
}

// SetStretch makes this path a single stretch segment with the given
// principal rates on the diagonal of the velocity gradient
func (o *Path) SetStretch(εdotx, εdoty, εdotz, h float64, nsteps int) {
	l := utl.Alloc(3, 3)
	l[0][0] = εdotx
	l[1][1] = εdoty
	l[2][2] = εdotz
	o.Incs = []*Increment{{l, h, nsteps}}
}

// Driver runs one law at one point through a loading path, exchanging data
// through the law contract exactly as an evaluation loop would: write
// inputs, Evaluate, Update, publish outputs as the next inputs. Strain
// driven laws receive the accumulated integral of the stretching tensor.
type Driver struct {

	// input
	Law Model // law being driven

	// settings
	Silent bool       // do not print error messages
	TstE   *testing.T // if not nil, check that Evaluate is idempotent at every step
	VerE   bool       // show idempotence check messages

	// results
	Sig [][]float64 // committed stress after every step, including the initial state
	T   []float64   // time after every step

	// exchange arrays, one point
	ins  []*qty.Values
	outs []*qty.Values
	nsig int
}

// Init prepares the driver to run law, allocating the exchange arrays from
// the law's declared specs. The law must be initialised already, and every
// input it declares must be a quantity a loading path can drive: stress,
// velocity gradient, time step or strain. Laws reading anything else, such
// as a nonlocal field, need a full evaluation loop and are rejected here.
func (o *Driver) Init(law Model) (err error) {
	if law == nil {
		return chk.Err("driver: cannot drive a nil law")
	}
	for _, spec := range law.InputSpecs() {
		switch spec.Id {
		case qty.Sigma, qty.L, qty.TimeStep, qty.Eps:
		default:
			return chk.Err("driver: law %q needs input %q, which loading paths do not drive", law.Name(), spec.Id)
		}
	}
	o.Law = law
	o.ins = make([]*qty.Values, qty.NumQ)
	o.outs = make([]*qty.Values, qty.NumQ)
	for _, spec := range law.InputSpecs() {
		o.ins[spec.Id] = qty.NewValues(spec)
		o.ins[spec.Id].Resize(1)
	}
	for _, spec := range law.OutputSpecs() {
		o.outs[spec.Id] = qty.NewValues(spec)
		o.outs[spec.Id].Resize(1)
	}
	law.Resize(1)
	o.nsig = 0
	if o.outs[qty.Sigma] != nil {
		o.nsig, _ = o.outs[qty.Sigma].Shape()
	}
	o.Sig = [][]float64{make([]float64, o.nsig)}
	o.T = []float64{0}
	return
}

// Run drives the law through pth, committing after every sub-step. Errors
// returned by Evaluate abort the run and are handed back unwrapped, with
// the committed state left at the last successful step.
func (o *Driver) Run(pth *Path) (err error) {
	if o.Law == nil {
		return chk.Err("driver: Init must be called before Run")
	}
	t := o.T[len(o.T)-1]
	var ε []float64
	if o.ins[qty.Eps] != nil {
		n, _ := o.ins[qty.Eps].Shape()
		ε = make([]float64, n)
		o.ins[qty.Eps].Get(ε, 0)
	}
	dm := make([]float64, 6)
	for _, inc := range pth.Incs {
		d := utl.Alloc(3, 3)
		w := utl.Alloc(3, 3)
		tsr.SymSkw3(d, w, inc.L)
		tsr.Ten2Man(dm, d)
		for n := 0; n < inc.Nsteps; n++ {

			// write inputs
			if o.ins[qty.L] != nil {
				o.ins[qty.L].SetMat(0, inc.L)
			}
			if o.ins[qty.TimeStep] != nil {
				o.ins[qty.TimeStep].SetScalar(0, inc.H)
			}
			if ε != nil {
				for j := 0; j < len(ε); j++ {
					ε[j] += inc.H * dm[j]
				}
				o.ins[qty.Eps].Set(0, ε)
			}

			// evaluate
			err = o.Law.Evaluate(o.ins, o.outs, 0)
			if err != nil {
				if !o.Silent {
					io.Pfred("driver: %q failed after %d steps: %v\n", o.Law.Name(), len(o.T)-1, err)
				}
				return
			}
			if o.TstE != nil {
				o.checkIdempotence()
			}

			// commit and publish outputs as the next inputs
			o.Law.Update(o.ins, o.outs, 0)
			for q := 0; q < int(qty.NumQ); q++ {
				if o.ins[q] != nil && o.outs[q] != nil {
					o.ins[q].CopyFrom(o.outs[q])
				}
			}

			// record
			t += inc.H
			σ := make([]float64, o.nsig)
			if o.nsig > 0 {
				o.outs[qty.Sigma].Get(σ, 0)
			}
			o.Sig = append(o.Sig, σ)
			o.T = append(o.T, t)
		}
	}
	return
}

// checkIdempotence re-runs Evaluate with unchanged inputs and committed
// state and checks that every output repeats exactly
func (o *Driver) checkIdempotence() {
	first := make([][]float64, 0, len(o.Law.OutputSpecs()))
	for _, spec := range o.Law.OutputSpecs() {
		v := make([]float64, spec.Nrow*spec.Ncol)
		o.outs[spec.Id].Get(v, 0)
		first = append(first, v)
	}
	err := o.Law.Evaluate(o.ins, o.outs, 0)
	if err != nil {
		o.TstE.Errorf("driver: repeated Evaluate failed: %v\n", err)
		return
	}
	for k, spec := range o.Law.OutputSpecs() {
		chk.Array(o.TstE, io.Sf("repeat %s", spec.Id), 1e-17, o.outs[spec.Id].Slice(0), first[k])
		if o.VerE {
			io.Pf("step %d: output %s repeats\n", len(o.T)-1, spec.Id)
		}
	}
}
