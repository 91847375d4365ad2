// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diagram assembles axial-moment interaction curves from either
// capacity engine and renders them as text tables or figures
package diagram

import (
	"math"

	"github.com/Esmaeelpour/gocap/fe"
	"github.com/Esmaeelpour/gocap/sec"
	"github.com/Esmaeelpour/gocap/sol"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Curve is an ordered sequence of capacity points, monotonically parametrized
// by the sweep variable, with compression positive. Immutable once returned
type Curve struct {
	P []float64 // axial capacities
	M []float64 // moment capacities
}

// Len returns the number of points
func (o *Curve) Len() int { return len(o.P) }

func (o *Curve) add(p, m float64) {
	o.P = append(o.P, p)
	o.M = append(o.M, m)
}

// FEPath assembles an interaction curve with the continuation engine: one
// proportional axial-only path establishes the axial capacity, then Npts−1
// non-proportional paths run at linearly spaced fractions of it. The solver
// holds process-wide model state, so NewSolver rebuilds the model before each
// path and the sweep runs strictly sequentially
type FEPath struct {
	NewSolver func() (sol.Solver, error) // fresh solver and model per path
	Gauge     fe.StrainGauge
	Opts      *fe.Options // template; kind and axial load are set per path
	Npts      int
}

// Compute runs the sweep. It fails fast when the axial-only path yields no
// finite positive capacity, since every subsequent path depends on it
func (o *FEPath) Compute() (c *Curve, err error) {
	npts := o.Npts
	if npts < 2 {
		npts = 10
	}

	s, err := o.NewSolver()
	if err != nil {
		return
	}
	opts := *o.Opts
	opts.Kind = fe.ProportionalLimitPoint
	opts.Ecc = 0
	ctl := fe.Controller{Sol: s, Gauge: o.Gauge, Opts: &opts}
	_, lp, err := ctl.Run()
	if err != nil {
		return nil, err
	}
	pmax := lp.P
	if math.IsNaN(pmax) || math.IsInf(pmax, 0) || pmax <= 0 {
		return nil, chk.Err("axial capacity is undetermined: Pmax = %g", pmax)
	}
	if o.Opts.Verbose {
		io.Pforan("axial capacity: Pmax = %g\n", pmax)
	}

	c = new(Curve)
	c.add(pmax, lp.M)

	fracs := utl.LinSpace(0, 1, npts)
	for i := npts - 2; i >= 0; i-- {
		if s, err = o.NewSolver(); err != nil {
			return nil, err
		}
		opts := *o.Opts
		opts.Kind = fe.NonProportionalLimitPoint
		opts.AxialLoad = pmax * fracs[i]
		ctl := fe.Controller{Sol: s, Gauge: o.Gauge, Opts: &opts}
		var lpi fe.LimitPoint
		if _, lpi, err = ctl.Run(); err != nil {
			return nil, err
		}
		c.add(lpi.P, lpi.M)
	}
	return
}

// ClosedForm assembles an interaction curve with the strain-compatibility
// engine: a neutral axis at a fixed angle sweeps across the section depth,
// bracketed by pure-compression and pure-tension caps. No solver is involved
type ClosedForm struct {
	Eng   *sec.Compat
	Angle float64 // neutral-axis angle [rad]
	Npts  int
}

// Compute runs the sweep from full compression to full tension
func (o *ClosedForm) Compute() (c *Curve, err error) {
	npts := o.Npts
	if npts < 2 {
		npts = 20
	}
	lo, hi, err := o.Eng.ConcreteExtent(o.Angle)
	if err != nil {
		return
	}
	sinθ, cosθ := math.Sin(o.Angle), math.Cos(o.Angle)

	c = new(Curve)

	// pure compression cap: every fiber at the crushing strain
	P, Mx, My, err := o.Eng.Uniform(o.Eng.EpsCU)
	if err != nil {
		return nil, err
	}
	c.add(-P, Mx*cosθ+My*sinθ)

	// the axis walks from the compression-most extent to the tension-most one
	for _, d := range utl.LinSpace(hi, lo, npts) {
		na := sec.NeutralAxis{Xpt: d * sinθ, Ypt: -d * cosθ, Angle: o.Angle}
		P, Mx, My, _, e := o.Eng.ComputePoint(na)
		if e != nil {
			return nil, e
		}
		c.add(-P, Mx*cosθ+My*sinθ)
	}

	// pure tension cap: every fiber at the default tensile strain
	if P, Mx, My, err = o.Eng.Uniform(o.Eng.EpsTdef); err != nil {
		return nil, err
	}
	c.add(-P, Mx*cosθ+My*sinθ)
	return
}
