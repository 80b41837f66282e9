// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qty

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// mustPanic runs fcn and flags a test error unless it panics
func mustPanic(tst *testing.T, msg string, fcn func()) {
	defer func() {
		if err := recover(); err != nil {
			io.Pforan("%s: %v\n", msg, err)
			return
		}
		tst.Errorf("%s should have panicked\n", msg)
	}()
	fcn()
}

func Test_values01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("values01. shapes and accessors")

	σ := NewValues(Vector(Sigma, 6))
	chk.IntAssert(σ.N(), 0)
	nr, nc := σ.Shape()
	chk.IntAssert(nr, 6)
	chk.IntAssert(nc, 1)

	σ.Resize(3)
	chk.IntAssert(σ.N(), 3)
	σ.Set(1, []float64{1, 2, 3, 4, 5, 6})
	v := make([]float64, 6)
	σ.Get(v, 1)
	chk.Array(tst, "σ @ 1", 1e-17, v, []float64{1, 2, 3, 4, 5, 6})
	σ.Get(v, 0)
	chk.Array(tst, "σ @ 0", 1e-17, v, []float64{0, 0, 0, 0, 0, 0})

	h := NewValues(Scalar(TimeStep))
	h.Resize(2)
	h.SetScalar(0, 0.5)
	h.SetScalar(1, 0.25)
	chk.Float64(tst, "h @ 0", 1e-17, h.GetScalar(0), 0.5)
	chk.Float64(tst, "h @ 1", 1e-17, h.GetScalar(1), 0.25)
	h.Fill(0.125)
	chk.Float64(tst, "h filled", 1e-17, h.GetScalar(1), 0.125)

	l := NewValues(Matrix(L, 3, 3))
	l.Resize(1)
	lmat := [][]float64{{0, 1, 0}, {0, 0, 0}, {0, 0, 2}}
	l.SetMat(0, lmat)
	bak := [][]float64{{9, 9, 9}, {9, 9, 9}, {9, 9, 9}}
	l.GetMat(bak, 0)
	chk.Deep2(tst, "l @ 0", 1e-17, bak, lmat)
	chk.Array(tst, "l slice", 1e-17, l.Slice(0), []float64{0, 1, 0, 0, 0, 0, 0, 0, 2})
}

func Test_values02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("values02. resize keeps no stale data")

	u := NewValues(Scalar(Kappa))
	u.Resize(5)
	for i := 0; i < 5; i++ {
		u.SetScalar(i, float64(i+1))
	}

	// shrink: surviving values preserved
	u.Resize(3)
	chk.IntAssert(u.N(), 3)
	chk.Float64(tst, "u @ 2 after shrink", 1e-17, u.GetScalar(2), 3)

	// grow back: removed range must be zero, not stale
	u.Resize(5)
	chk.Float64(tst, "u @ 2 after regrow", 1e-17, u.GetScalar(2), 3)
	chk.Float64(tst, "u @ 3 after regrow", 1e-17, u.GetScalar(3), 0)
	chk.Float64(tst, "u @ 4 after regrow", 1e-17, u.GetScalar(4), 0)

	// copy between arrays
	w := NewValues(Scalar(Kappa))
	w.Resize(5)
	w.CopyFrom(u)
	chk.Float64(tst, "w @ 2", 1e-17, w.GetScalar(2), 3)
	chk.Float64(tst, "w @ 4", 1e-17, w.GetScalar(4), 0)
}

func Test_values03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("values03. misuse panics at once")

	σ := NewValues(Vector(Sigma, 6))
	σ.Resize(2)
	l := NewValues(Matrix(L, 3, 3))
	l.Resize(1)
	h := NewValues(Scalar(TimeStep))
	h.Resize(2)
	w := NewValues(Scalar(TimeStep))
	w.Resize(3)

	mustPanic(tst, "invalid shape", func() { NewValues(Spec{Eps, 0, 1}) })
	mustPanic(tst, "negative resize", func() { σ.Resize(-1) })
	mustPanic(tst, "slice beyond npts", func() { σ.Slice(2) })
	mustPanic(tst, "slice at negative index", func() { σ.Slice(-1) })
	mustPanic(tst, "get with wrong length", func() { σ.Get(make([]float64, 4), 0) })
	mustPanic(tst, "set with wrong length", func() { σ.Set(0, make([]float64, 9)) })
	mustPanic(tst, "scalar read of vector", func() { σ.GetScalar(0) })
	mustPanic(tst, "scalar write of vector", func() { σ.SetScalar(0, 1) })
	mustPanic(tst, "matrix with wrong rows", func() { l.GetMat(make([][]float64, 2), 0) })
	mustPanic(tst, "matrix with wrong columns", func() { l.SetMat(0, [][]float64{{1, 2}, {3, 4}, {5, 6}}) })
	mustPanic(tst, "copy across shapes", func() { h.CopyFrom(σ) })
	mustPanic(tst, "copy across point counts", func() { h.CopyFrom(w) })

	// recovered panics must leave the arrays usable
	σ.Set(1, []float64{1, 2, 3, 4, 5, 6})
	v := make([]float64, 6)
	σ.Get(v, 1)
	chk.Array(tst, "σ @ 1 after recovery", 1e-17, v, []float64{1, 2, 3, 4, 5, 6})
}

func Test_ids01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ids01. identifiers and constraints")

	chk.String(tst, Sigma.String(), "sig")
	chk.String(tst, L.String(), "l")
	chk.String(tst, Kappa.String(), "kappa")

	chk.IntAssert(Full.GDim(), 3)
	chk.IntAssert(Full.QDim(), 6)
	chk.IntAssert(PlaneStrain.GDim(), 2)
	chk.IntAssert(PlaneStrain.QDim(), 4)
	chk.IntAssert(PlaneStress.QDim(), 4)
	chk.IntAssert(UniaxialStrain.QDim(), 1)
	chk.IntAssert(UniaxialStress.GDim(), 1)

	c, err := GetConstraint("pstrain")
	if err != nil {
		tst.Errorf("GetConstraint failed: %v\n", err)
		return
	}
	chk.IntAssert(int(c), int(PlaneStrain))

	c, err = GetConstraint("3d")
	if err != nil {
		tst.Errorf("GetConstraint failed: %v\n", err)
		return
	}
	chk.IntAssert(int(c), int(Full))

	_, err = GetConstraint("axisym")
	if err == nil {
		tst.Errorf("GetConstraint should have failed with unknown name\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
