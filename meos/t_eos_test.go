// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
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

func Test_bulk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bulk01. linear bulk EOS")

	mdl, err := New("bulk")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*dbf.P{
		&dbf.P{N: "K", V: 2.2e9},
		&dbf.P{N: "gamma", V: 0.5},
		&dbf.P{N: "rho0", V: 1000},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	chk.Float64(tst, "p(0,0)", 1e-17, mdl.Pressure(0, 0), 0)
	chk.Float64(tst, "p(1e-3,0)", 1e-7, mdl.Pressure(1e-3, 0), 2.2e6)
	chk.Float64(tst, "p(-1e-3,0)", 1e-7, mdl.Pressure(-1e-3, 0), -2.2e6)
	chk.Float64(tst, "p(0,100)", 1e-10, mdl.Pressure(0, 100), 0.5*1000*100)
	chk.Float64(tst, "p(1e-3,100)", 1e-7, mdl.Pressure(1e-3, 100), 2.2e6+5e4)

	// K must be positive
	b := new(Bulk)
	err = b.Init([]*dbf.P{
		&dbf.P{N: "K", V: 0},
	})
	if err == nil {
		tst.Errorf("Init should have failed with K = 0\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_idealgas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas01. ideal gas EOS")

	mdl, err := New("idealgas")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// air at ~room conditions: ρ = 1.225, e = 2.0719e5 J/kg ⇒ p ≈ 101.5 kPa
	p := mdl.Pressure(0, 2.0719e5)
	chk.Float64(tst, "p(0, e_room)", 1e0, p, 0.4*1.225*2.0719e5)
	io.Pforan("p = %v\n", p)

	// doubling the density doubles the pressure
	chk.Float64(tst, "p(1,e)/p(0,e)", 1e-14, mdl.Pressure(1, 1e5)/mdl.Pressure(0, 1e5), 2)

	// gamma must exceed one
	g := new(IdealGas)
	err = g.Init([]*dbf.P{
		&dbf.P{N: "gamma", V: 1},
		&dbf.P{N: "rho0", V: 1},
	})
	if err == nil {
		tst.Errorf("Init should have failed with gamma = 1\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_mie01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mie01. Mie-Grüneisen EOS")

	mdl, err := New("mie")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// reference state in equilibrium
	chk.Float64(tst, "p(0,0)", 1e-17, mdl.Pressure(0, 0), 0)

	// small compressions match the acoustic limit p ≈ ρ0·c0²·η
	K0 := 2700.0 * 5328.0 * 5328.0
	for _, η := range []float64{1e-6, 1e-5, 1e-4} {
		chk.AnaNum(tst, io.Sf("p(%g,0) acoustic", η), 1e-3*K0*η, mdl.Pressure(η, 0), K0*η, chk.Verbose)
	}

	// tension branch is exactly linear
	chk.Float64(tst, "p(-0.01,0)", 1e-6, mdl.Pressure(-0.01, 0), -K0*0.01)

	// Hugoniot stiffening: pressure grows faster than linear in compression
	H := utl.LinSpace(0.01, 0.2, 5)
	for _, η := range H {
		if mdl.Pressure(η, 0) <= K0*η {
			tst.Errorf("Hugoniot must stiffen above the acoustic line at η=%g\n", η)
			return
		}
	}

	// energy coupling: p is linear in e, so ∂p/∂e = Γ0·ρ0 exactly on both
	// branches; checked at unit scale where the difference quotient is clean
	u := new(MieGruneisen)
	err = u.Init([]*dbf.P{
		&dbf.P{N: "c0", V: 1.5},
		&dbf.P{N: "s", V: 1.338},
		&dbf.P{N: "gamma0", V: 2.0},
		&dbf.P{N: "rho0", V: 1},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	for _, η := range []float64{-0.05, 0.1} {
		chk.DerivScaSca(tst, io.Sf("∂p/∂e @ η=%g", η), 1e-8, 2.0, 0.5, 1e-3, chk.Verbose, func(e float64) (float64, error) {
			return u.Pressure(η, e), nil
		})
	}

	// compressions at or beyond the Hugoniot limit 1/s are outside the model
	mustPanic(tst, "beyond Hugoniot limit", func() { mdl.Pressure(0.8, 0) })
}
