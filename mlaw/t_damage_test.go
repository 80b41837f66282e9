// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlaw

import (
	"testing"

	"github.com/cpmech/gomat/qty"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_dmg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dmg01. exponential softening curve")

	κ0 := 1e-4
	dmg := Damage{κ0, 0.99, 100}

	// no damage up to the threshold, continuous just beyond it
	chk.Float64(tst, "ω(κ0/2)", 1e-17, dmg.Omega(κ0/2.0), 0)
	chk.Float64(tst, "ω(κ0)", 1e-17, dmg.Omega(κ0), 0)
	if ω := dmg.Omega(κ0 * (1.0 + 1e-6)); ω < 0 || ω > 1e-4 {
		tst.Errorf("ω is discontinuous at the threshold: ω(κ0+) = %g\n", ω)
		return
	}

	// monotone and bounded
	ωold := 0.0
	for _, κ := range utl.LinSpace(κ0, 100*κ0, 101) {
		ω := dmg.Omega(κ)
		if ω < ωold || ω >= 1 {
			tst.Errorf("ω is not monotone in [0,1): ω(%g) = %g after %g\n", κ, ω, ωold)
			return
		}
		ωold = ω
	}

	// residual: 1-ω approaches κ0(1-α)/κ from above
	if res := 1.0 - dmg.Omega(1000*κ0); res < κ0*0.01/0.1 || res > 2e-5 {
		tst.Errorf("residual stress fraction is off: 1-ω = %g\n", res)
		return
	}

	// derivative
	for _, κ := range []float64{3e-4, 1e-3, 1e-2} {
		dana := dmg.DOmegaDKappa(κ)
		chk.DerivScaSca(tst, io.Sf("dω/dκ @ %g", κ), 1e-5, dana, κ, 1e-6, chk.Verbose, func(x float64) (float64, error) {
			return dmg.Omega(x), nil
		})
	}
	chk.Float64(tst, "dω/dκ below threshold", 1e-17, dmg.DOmegaDKappa(κ0/2.0), 0)
}

func Test_dmg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dmg02. local damage: loading, unloading, reloading")

	mdl, err := New("dmg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(qty.UniaxialStrain, []*dbf.P{
		&dbf.P{N: "E", V: 20000},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "k", V: 10},
		&dbf.P{N: "ft", V: 2},
		&dbf.P{N: "alpha", V: 0.99},
		&dbf.P{N: "beta", V: 100},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	law := mdl.(*LocalDamage)
	ins, outs := allocArrays(mdl, 1)

	// constrained modulus
	D := 20000.0 * (1.0 - 0.2) / ((1.0 + 0.2) * (1.0 - 2.0*0.2))

	step := func(u float64) []float64 {
		ins[qty.Eps].Set(0, []float64{u})
		err := mdl.Evaluate(ins, outs, 0)
		if err != nil {
			tst.Fatalf("Evaluate failed: %v\n", err)
		}
		mdl.Update(ins, outs, 0)
		return outs[qty.Sigma].Slice(0)
	}

	// below the threshold the response is elastic and the history follows εeq
	σ := step(4e-5)
	chk.Float64(tst, "σ (elastic)", 1e-12, σ[0], D*4e-5)
	chk.Float64(tst, "tangent (elastic)", 1e-12, outs[qty.DSigmaDEps].GetScalar(0), D)
	κA := law.Kappa(0)
	if κA <= 0 || κA >= 1e-4 {
		tst.Errorf("history below threshold is off: κ = %g\n", κA)
		return
	}

	// beyond the threshold the stress drops below the elastic line
	σ = step(4e-4)
	σB := σ[0]
	κB := law.Kappa(0)
	if σB <= 0 || σB >= D*4e-4 {
		tst.Errorf("damaged stress is off: σ = %g (elastic %g)\n", σB, D*4e-4)
		return
	}
	if κB <= κA {
		tst.Errorf("history did not grow under loading: κ = %g after %g\n", κB, κA)
		return
	}

	// tangent against a finite difference, taken beyond the committed
	// history so that both sides of the difference are loading
	u1 := 4.5e-4
	ins[qty.Eps].Set(0, []float64{u1})
	mdl.Evaluate(ins, outs, 0)
	t1 := outs[qty.DSigmaDEps].GetScalar(0)
	δ := 1e-8
	ins[qty.Eps].Set(0, []float64{u1 + δ})
	mdl.Evaluate(ins, outs, 0)
	σp := outs[qty.Sigma].GetScalar(0)
	ins[qty.Eps].Set(0, []float64{u1 - δ})
	mdl.Evaluate(ins, outs, 0)
	σm := outs[qty.Sigma].GetScalar(0)
	chk.AnaNum(tst, "tangent (loading)", 1e-4, t1, (σp-σm)/(2.0*δ), chk.Verbose)

	// unloading is secant: half the strain gives half the stress, the
	// history freezes and the tangent closes the secant, t·ε = σ
	σ = step(2e-4)
	chk.Float64(tst, "σ (unloading)", 1e-15, σ[0], 0.5*σB)
	chk.Float64(tst, "κ (unloading)", 1e-17, law.Kappa(0), κB)
	tC := outs[qty.DSigmaDEps].GetScalar(0)
	chk.Float64(tst, "secant tangent", 1e-12, tC*2e-4, σ[0])

	// reloading to the previous peak changes nothing
	σ = step(4e-4)
	chk.Float64(tst, "σ (reloading)", 1e-15, σ[0], σB)
	chk.Float64(tst, "κ (reloading)", 1e-17, law.Kappa(0), κB)

	// direct style
	chk.Float64(tst, "EvaluateKappa (frozen)", 1e-17, law.EvaluateKappa(κB, []float64{2e-4}), κB)

	// bad parameters
	if err = new(LocalDamage).Init(qty.Full, []*dbf.P{
		&dbf.P{N: "E", V: 20000},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "alpha", V: 0.99},
		&dbf.P{N: "beta", V: 100},
	}); err == nil {
		tst.Errorf("Init should have failed without ft\n")
		return
	}
}

func Test_gdm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gdm01. gradient damage: history driven by the nonlocal strain")

	mdl, err := New("gdm")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(qty.Full, []*dbf.P{
		&dbf.P{N: "E", V: 20000},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "k", V: 10},
		&dbf.P{N: "ft", V: 2},
		&dbf.P{N: "alpha", V: 0.99},
		&dbf.P{N: "beta", V: 100},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	law := mdl.(*GradientDamage)
	ins, outs := allocArrays(mdl, 1)

	// references built from the exported pieces
	var el Elasticity
	err = el.Init(qty.Full, []*dbf.P{
		&dbf.P{N: "E", V: 20000},
		&dbf.P{N: "nu", V: 0.2},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	var eeq EeqMod
	err = eeq.Init(10, 0.2)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	dmg := Damage{2.0 / 20000.0, 0.99, 100}

	ε := []float64{2e-4, 5e-5, -1e-5, 1e-4, 0, 0}
	εnl := 3e-4
	ins[qty.Eps].Set(0, ε)
	ins[qty.EeqNl].SetScalar(0, εnl)
	err = mdl.Evaluate(ins, outs, 0)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}

	// the projection source term is the local measure, not the input
	dref := make([]float64, 6)
	εeqref := eeq.Deriv(dref, ε)
	chk.Float64(tst, "Eeq output", 1e-17, outs[qty.Eeq].GetScalar(0), εeqref)
	chk.Array(tst, "DEeq output", 1e-17, outs[qty.DEeq].Slice(0), dref)

	// stress follows the nonlocal history
	ω := dmg.Omega(εnl)
	Dref := el.StiffnessMatrix()
	σe := make([]float64, 6)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			σe[r] += Dref[r][c] * ε[c]
		}
	}
	for r := 0; r < 6; r++ {
		chk.Float64(tst, io.Sf("σ[%d]", r), 1e-12, outs[qty.Sigma].Slice(0)[r], (1.0-ω)*σe[r])
	}

	// ∂σ/∂ε at fixed nonlocal strain is secant
	t := make([]float64, 36)
	outs[qty.DSigmaDEps].Get(t, 0)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			chk.Float64(tst, io.Sf("t[%d][%d]", r, c), 1e-12, t[r*6+c], (1.0-ω)*Dref[r][c])
		}
	}

	// coupling tangent against a finite difference in the nonlocal strain
	dσdεnl := make([]float64, 6)
	outs[qty.DSigmaDE].Get(dσdεnl, 0)
	δ := 1e-8
	σp := make([]float64, 6)
	σm := make([]float64, 6)
	ins[qty.EeqNl].SetScalar(0, εnl+δ)
	mdl.Evaluate(ins, outs, 0)
	outs[qty.Sigma].Get(σp, 0)
	ins[qty.EeqNl].SetScalar(0, εnl-δ)
	mdl.Evaluate(ins, outs, 0)
	outs[qty.Sigma].Get(σm, 0)
	for r := 0; r < 6; r++ {
		chk.AnaNum(tst, io.Sf("∂σ[%d]/∂ε̄", r), 1e-3, dσdεnl[r], (σp[r]-σm[r])/(2.0*δ), chk.Verbose)
	}

	// commit, then unload the nonlocal strain: history freezes and the
	// coupling tangent vanishes
	ins[qty.EeqNl].SetScalar(0, εnl)
	mdl.Evaluate(ins, outs, 0)
	mdl.Update(ins, outs, 0)
	chk.Float64(tst, "κ committed", 1e-17, law.Kappa(0), εnl)

	ins[qty.EeqNl].SetScalar(0, 1e-4)
	err = mdl.Evaluate(ins, outs, 0)
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	outs[qty.DSigmaDE].Get(dσdεnl, 0)
	chk.Array(tst, "∂σ/∂ε̄ (unloading)", 1e-17, dσdεnl, make([]float64, 6))
	for r := 0; r < 6; r++ {
		chk.Float64(tst, io.Sf("σ[%d] (frozen ω)", r), 1e-12, outs[qty.Sigma].Slice(0)[r], (1.0-ω)*σe[r])
	}
}
