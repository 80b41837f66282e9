// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package iploop implements the loop evaluating material laws over all
// integration points of a problem. A Loop owns one array per exchanged
// quantity, shared by every registered law; each registration covers a
// disjoint range of points. Evaluate is a full barrier: every point of
// every registration is attempted, in parallel for large ranges, and the
// failures are aggregated so that one diverging point never hides or
// corrupts the others.
package iploop

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/gomat/mlaw"
	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// serialLimit is the range size below which Evaluate stays serial
const serialLimit = 16

// reg is one law registration covering the point range [lo, hi)
type reg struct {
	law mlaw.Model
	lo  int
	hi  int // -1 = up to the current point count
}

// bounds clips the registered range to the current point count
func (o *reg) bounds(npts int) (lo, hi int) {
	lo, hi = o.lo, o.hi
	if hi == -1 || hi > npts {
		hi = npts
	}
	if lo > hi {
		lo = hi
	}
	return
}

// Loop evaluates a set of registered laws over their point ranges, holding
// the input and output arrays the laws exchange data through
type Loop struct {
	Nworkers int // number of parallel workers used by Evaluate

	regs []*reg
	ins  []*qty.Values // input arrays indexed by qty.Q (nil = not used)
	outs []*qty.Values // output arrays indexed by qty.Q (nil = not used)
	npts int
}

// New creates an empty loop with one worker per CPU
func New() (o *Loop) {
	o = new(Loop)
	o.Nworkers = runtime.NumCPU()
	o.ins = make([]*qty.Values, qty.NumQ)
	o.outs = make([]*qty.Values, qty.NumQ)
	return
}

// N returns the current number of points
func (o *Loop) N() int {
	return o.npts
}

// AddLaw registers law over the point range [lo, hi); hi = -1 covers all
// points, present and future. Ranges must not overlap and laws declaring
// the same quantity must agree on its shape. The law must be initialised
// already; its internal state is resized to the current point count.
func (o *Loop) AddLaw(law mlaw.Model, lo, hi int) (err error) {
	if lo < 0 || (hi != -1 && hi < lo) {
		return chk.Err("loop: point range [%d, %d) is invalid", lo, hi)
	}
	for _, r := range o.regs {
		if overlap(lo, hi, r.lo, r.hi) {
			return chk.Err("loop: range [%d, %d) of %q overlaps range [%d, %d) of %q", lo, hi, law.Name(), r.lo, r.hi, r.law.Name())
		}
	}
	err = o.checkSpecs(o.ins, law.InputSpecs(), law.Name())
	if err != nil {
		return
	}
	err = o.checkSpecs(o.outs, law.OutputSpecs(), law.Name())
	if err != nil {
		return
	}
	o.allocSpecs(o.ins, law.InputSpecs())
	o.allocSpecs(o.outs, law.OutputSpecs())
	law.Resize(o.npts)
	o.regs = append(o.regs, &reg{law, lo, hi})
	return
}

// Resize changes the point count of every array and every registered law
func (o *Loop) Resize(n int) {
	if n < 0 {
		chk.Panic("loop: cannot resize to %d points", n)
	}
	o.npts = n
	for q := 0; q < int(qty.NumQ); q++ {
		if o.ins[q] != nil {
			o.ins[q].Resize(n)
		}
		if o.outs[q] != nil {
			o.outs[q].Resize(n)
		}
	}
	for _, r := range o.regs {
		r.law.Resize(n)
	}
}

// Evaluate runs every registered law over its point range. All points are
// attempted regardless of failures elsewhere; a non-nil return is a
// *Failures listing one error per failed point.
func (o *Loop) Evaluate() error {
	var fails Failures
	for _, r := range o.regs {
		lo, hi := r.bounds(o.npts)
		n := hi - lo
		if n < serialLimit || o.Nworkers <= 1 {
			o.evalRange(r, lo, hi, &fails.Errs)
			continue
		}

		// chunked ranges over a fixed pool; failures stay worker-local
		// until everyone is done
		nw := o.Nworkers
		chunk := (n + nw - 1) / nw
		werrs := make([][]error, nw)
		var wg sync.WaitGroup
		for w := 0; w < nw; w++ {
			wlo := lo + w*chunk
			whi := min(wlo+chunk, hi)
			if wlo >= whi {
				continue
			}
			wg.Add(1)
			go func(w, wlo, whi int) {
				defer wg.Done()
				o.evalRange(r, wlo, whi, &werrs[w])
			}(w, wlo, whi)
		}
		wg.Wait()
		for _, es := range werrs {
			fails.Errs = append(fails.Errs, es...)
		}
	}
	if len(fails.Errs) > 0 {
		return &fails
	}
	return nil
}

// evalRange evaluates one registration over [lo, hi), appending failures
func (o *Loop) evalRange(r *reg, lo, hi int, errs *[]error) {
	for i := lo; i < hi; i++ {
		if err := r.law.Evaluate(o.ins, o.outs, i); err != nil {
			if _, ok := err.(*mlaw.ErrConv); ok {
				*errs = append(*errs, err)
				continue
			}
			*errs = append(*errs, chk.Err("%q at point %d: %v", r.law.Name(), i, err))
		}
	}
}

// Update commits the trial state of every registered law, then publishes
// the output arrays as the next inputs for quantities that are both
func (o *Loop) Update() {
	for _, r := range o.regs {
		lo, hi := r.bounds(o.npts)
		for i := lo; i < hi; i++ {
			r.law.Update(o.ins, o.outs, i)
		}
	}
	for q := 0; q < int(qty.NumQ); q++ {
		if o.ins[q] != nil && o.outs[q] != nil {
			o.ins[q].CopyFrom(o.outs[q])
		}
	}
}

// Get returns the array holding quantity q, preferring outputs when q is
// both read and written. An error is returned if no registered law
// declared q.
func (o *Loop) Get(q qty.Q) (*qty.Values, error) {
	if o.outs[q] != nil {
		return o.outs[q], nil
	}
	if o.ins[q] != nil {
		return o.ins[q], nil
	}
	return nil, chk.Err("loop: quantity %q is not supported by the registered laws", q)
}

// RequiredInputs returns the sorted identifiers of the quantities the host
// must fill before calling Evaluate
func (o *Loop) RequiredInputs() (qs []qty.Q) {
	for q := 0; q < int(qty.NumQ); q++ {
		if o.ins[q] != nil {
			qs = append(qs, qty.Q(q))
		}
	}
	return
}

// checkSpecs verifies that the declared specs agree with existing arrays
func (o *Loop) checkSpecs(arrs []*qty.Values, specs []qty.Spec, name string) error {
	for _, spec := range specs {
		if a := arrs[spec.Id]; a != nil {
			nrow, ncol := a.Shape()
			if nrow != spec.Nrow || ncol != spec.Ncol {
				return chk.Err("loop: %q declares %s with shape %dx%d but the loop holds %dx%d", name, spec.Id, spec.Nrow, spec.Ncol, nrow, ncol)
			}
		}
	}
	return nil
}

// allocSpecs creates the missing arrays for the declared specs
func (o *Loop) allocSpecs(arrs []*qty.Values, specs []qty.Spec) {
	for _, spec := range specs {
		if arrs[spec.Id] == nil {
			arrs[spec.Id] = qty.NewValues(spec)
			arrs[spec.Id].Resize(o.npts)
		}
	}
}

// overlap tells whether the point ranges [alo, ahi) and [blo, bhi)
// intersect; -1 bounds extend to infinity
func overlap(alo, ahi, blo, bhi int) bool {
	if ahi == -1 {
		ahi = math.MaxInt
	}
	if bhi == -1 {
		bhi = math.MaxInt
	}
	return alo < bhi && blo < ahi
}

// Failures aggregates the per-point errors of one Evaluate pass
type Failures struct {
	Errs []error
}

// Error lists the number of failed points followed by one line per failure
func (o *Failures) Error() string {
	l := io.Sf("%d point(s) failed:", len(o.Errs))
	for _, e := range o.Errs {
		l += "\n  " + e.Error()
	}
	return l
}
