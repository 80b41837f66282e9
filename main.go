// Copyright 2017 The Gomat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gomat/iploop"
	"github.com/cpmech/gomat/mlaw"
	"github.com/cpmech/gomat/qty"
	"github.com/cpmech/gomat/tsr"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "examples/simpleshear/materials", ".mat", true)
	matname := io.ArgToString(1, "metal1")
	npts := io.ArgToInt(2, 8)
	nsteps := io.ArgToInt(3, 800)
	gdot := io.ArgToFloat(4, 0)
	dt := io.ArgToFloat(5, 1e-3)

	// message
	io.PfWhite("\nGomat -- constitutive laws for integration points\n")
	io.Pf("Copyright 2017 The Gomat Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"materials filename path", "fnamepath", fnamepath,
		"material (law) name", "matname", matname,
		"number of integration points", "npts", npts,
		"number of time steps", "nsteps", nsteps,
		"shear rate; 0 = function from file", "gdot", gdot,
		"time step", "dt", dt,
	))
	if npts < 1 || nsteps < 1 || dt <= 0 {
		chk.Panic("npts=%d, nsteps=%d and dt=%g must be positive", npts, nsteps, dt)
	}

	// materials database
	mdb, err := inp.ReadMat("", fnamepath, qty.Full)
	if err != nil {
		chk.Panic("cannot read materials file:\n%v", err)
	}
	law, err := mdb.GetLaw(matname)
	if err != nil {
		chk.Panic("%v", err)
	}

	// shear rate from the functions database, unless given
	if gdot == 0 {
		fcn, ferr := mdb.Functions.Get("gdot")
		if ferr != nil {
			chk.Panic("give a nonzero shear rate or define a \"gdot\" function:\n%v", ferr)
		}
		gdot = fcn.F(0, nil)
	}

	// evaluation loop with one law over all points
	loop := iploop.New()
	loop.Resize(npts)
	err = loop.AddLaw(law, 0, -1)
	if err != nil {
		chk.Panic("cannot register law %q:\n%v", matname, err)
	}
	σArr, err := loop.Get(qty.Sigma)
	if err != nil {
		chk.Panic("law %q does not write stress:\n%v", matname, err)
	}

	// simple shear, the first point at half the rate of the last one
	rate := make([]float64, npts)
	for i := 0; i < npts; i++ {
		rate[i] = gdot * 0.5 * (1.0 + float64(i+1)/float64(npts))
	}
	var lArr, dtArr, εArr *qty.Values
	for _, q := range loop.RequiredInputs() {
		switch q {
		case qty.Sigma: // committed stress, starts at zero
		case qty.L:
			lArr, _ = loop.Get(q)
			l := utl.Alloc(3, 3)
			for i := 0; i < npts; i++ {
				l[0][1] = rate[i]
				lArr.SetMat(i, l)
			}
		case qty.TimeStep:
			dtArr, _ = loop.Get(q)
			dtArr.Fill(dt)
		case qty.Eps:
			εArr, _ = loop.Get(q)
		default:
			chk.Panic("law %q needs input %q, which this demo does not drive", matname, q)
		}
	}

	// march, recording the equivalent stress of the slowest and the fastest
	// points after every commit
	qFirst := make([]float64, nsteps)
	qLast := make([]float64, nsteps)
	ε := make([]float64, 6)
	for n := 0; n < nsteps; n++ {
		if εArr != nil {
			for i := 0; i < npts; i++ {
				εArr.Get(ε, i)
				ε[3] += dt * rate[i] / 2.0 * math.Sqrt2
				εArr.Set(i, ε)
			}
		}
		err = loop.Evaluate()
		if err != nil {
			chk.Panic("evaluation failed at step %d:\n%v", n, err)
		}
		loop.Update()
		qFirst[n] = tsr.M_q(σArr.Slice(0))
		qLast[n] = tsr.M_q(σArr.Slice(npts - 1))
	}

	// stress history plots
	io.Pf("\n%s\n\n", asciigraph.Plot(qFirst,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(io.Sf("q of the slowest point [%s]", fnkey)),
	))
	io.Pf("\n%s\n", asciigraph.Plot(qLast,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(io.Sf("q of the fastest point [%s]", fnkey)),
	))

	// summary
	io.Pf("\nRESULTS: %q after %d steps (t = %g)\n\n", matname, nsteps, float64(nsteps)*dt)
	mises, isMises := law.(*mlaw.MisesEOS)
	if isMises {
		io.Pf("%4s%15s%15s%15s%15s%15s\n", "pt", "gam", "q", "lam", "rho", "ene")
	} else {
		io.Pf("%4s%15s%15s%15s\n", "pt", "gam", "q", "p")
	}
	σ := make([]float64, 6)
	for i := 0; i < npts; i++ {
		σArr.Get(σ, i)
		γ := rate[i] * float64(nsteps) * dt
		if isMises {
			io.Pf("%4d%15.6g%15.6g%15.6g%15.6g%15.6g\n", i, γ, tsr.M_q(σ), mises.Lambda(i), mises.Rho(i), mises.Energy(i))
			continue
		}
		io.Pf("%4d%15.6g%15.6g%15.6g\n", i, γ, tsr.M_q(σ), tsr.M_p(σ))
	}
}
