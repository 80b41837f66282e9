// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qty

import "github.com/cpmech/gosl/chk"

// Values holds one quantity for every integration point. The element shape
// is fixed at construction; the point count changes via Resize. Elements
// are stored row-major in a single contiguous slice.
//
// Shape and index violations are programming errors and panic at once;
// they are never clamped or silently ignored.
type Values struct {
	id   Q
	nrow int
	ncol int
	npts int
	data []float64
}

// NewValues creates an empty array (zero points) for the given spec
func NewValues(spec Spec) (o *Values) {
	if spec.Nrow < 1 || spec.Ncol < 1 {
		chk.Panic("%s array: shape %dx%d is invalid", spec.Id, spec.Nrow, spec.Ncol)
	}
	o = new(Values)
	o.id = spec.Id
	o.nrow = spec.Nrow
	o.ncol = spec.Ncol
	return
}

// Id returns the quantity identifier of this array
func (o *Values) Id() Q {
	return o.id
}

// N returns the number of points currently held
func (o *Values) N() int {
	return o.npts
}

// Shape returns the per-point element shape
func (o *Values) Shape() (nrow, ncol int) {
	return o.nrow, o.ncol
}

// Resize changes the point count to npts. Values of surviving point indices
// are preserved; slots beyond the old bound are zero-initialised. Shrinking
// discards the tail, so growing back later yields zeros, never stale data.
func (o *Values) Resize(npts int) {
	if npts < 0 {
		chk.Panic("%s array: cannot resize to npts=%d", o.id, npts)
	}
	size := o.nrow * o.ncol
	data := make([]float64, npts*size)
	copy(data, o.data[:min(len(o.data), npts*size)])
	o.data = data
	o.npts = npts
}

func (o *Values) checkIdx(i int) {
	if i < 0 || i >= o.npts {
		chk.Panic("%s array: index %d is out of range (npts=%d)", o.id, i, o.npts)
	}
}

func (o *Values) checkLen(n int) {
	if n != o.nrow*o.ncol {
		chk.Panic("%s array: element with %d components mismatches shape %dx%d", o.id, n, o.nrow, o.ncol)
	}
}

// Slice returns a view into the element of point i (row-major). The view is
// valid until the next Resize. Callers reading input quantities must not
// modify the returned slice.
func (o *Values) Slice(i int) []float64 {
	o.checkIdx(i)
	size := o.nrow * o.ncol
	return o.data[i*size : (i+1)*size]
}

// Get copies the element of point i into v
func (o *Values) Get(v []float64, i int) {
	o.checkLen(len(v))
	copy(v, o.Slice(i))
}

// Set copies v into the element of point i
func (o *Values) Set(i int, v []float64) {
	o.checkLen(len(v))
	copy(o.Slice(i), v)
}

// GetMat copies the element of point i into the matrix m
func (o *Values) GetMat(m [][]float64, i int) {
	e := o.Slice(i)
	if len(m) != o.nrow {
		chk.Panic("%s array: matrix with %d rows mismatches shape %dx%d", o.id, len(m), o.nrow, o.ncol)
	}
	for r := 0; r < o.nrow; r++ {
		if len(m[r]) != o.ncol {
			chk.Panic("%s array: matrix with %d columns mismatches shape %dx%d", o.id, len(m[r]), o.nrow, o.ncol)
		}
		for c := 0; c < o.ncol; c++ {
			m[r][c] = e[r*o.ncol+c]
		}
	}
}

// SetMat copies the matrix m into the element of point i
func (o *Values) SetMat(i int, m [][]float64) {
	e := o.Slice(i)
	if len(m) != o.nrow {
		chk.Panic("%s array: matrix with %d rows mismatches shape %dx%d", o.id, len(m), o.nrow, o.ncol)
	}
	for r := 0; r < o.nrow; r++ {
		if len(m[r]) != o.ncol {
			chk.Panic("%s array: matrix with %d columns mismatches shape %dx%d", o.id, len(m[r]), o.nrow, o.ncol)
		}
		for c := 0; c < o.ncol; c++ {
			e[r*o.ncol+c] = m[r][c]
		}
	}
}

// GetScalar returns the value at point i; valid for 1x1 shapes only
func (o *Values) GetScalar(i int) float64 {
	if o.nrow != 1 || o.ncol != 1 {
		chk.Panic("%s array: GetScalar called on non-scalar shape %dx%d", o.id, o.nrow, o.ncol)
	}
	o.checkIdx(i)
	return o.data[i]
}

// SetScalar sets the value at point i; valid for 1x1 shapes only
func (o *Values) SetScalar(i int, v float64) {
	if o.nrow != 1 || o.ncol != 1 {
		chk.Panic("%s array: SetScalar called on non-scalar shape %dx%d", o.id, o.nrow, o.ncol)
	}
	o.checkIdx(i)
	o.data[i] = v
}

// Fill sets every component of every point to v
func (o *Values) Fill(v float64) {
	for k := range o.data {
		o.data[k] = v
	}
}

// CopyFrom copies all points from b; shapes and point counts must match
func (o *Values) CopyFrom(b *Values) {
	if o.nrow != b.nrow || o.ncol != b.ncol || o.npts != b.npts {
		chk.Panic("%s array: cannot copy from %s array with different shape or point count", o.id, b.id)
	}
	copy(o.data, b.data)
}
