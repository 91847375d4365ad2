// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fe

import (
	"math"

	"github.com/Esmaeelpour/gocap/sol"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// analysis kinds
const (
	ProportionalLimitPoint    = "proportional_limit_point"
	NonProportionalLimitPoint = "nonproportional_limit_point"
)

// StrainGauge maps section deformations (axial strain, curvature) to the
// extreme concrete compressive strain and the extreme steel tensile strain
type StrainGauge interface {
	Extremes(εa, κx float64) (εc, εs float64)
}

// Options holds the continuation path configuration. The four monitor
// thresholds are nullable: a nil threshold disables that monitor
type Options struct {
	Kind           string  // analysis kind
	Ecc            float64 // eccentricity of the proportional load pattern
	AxialLoad      float64 // target axial load of the non-proportional path
	NstepsVertical int     // number of equal increments of the vertical phase
	LoadIncr       float64 // load-control increment
	DispIncr       float64 // displacement-control increment

	DropLimit        *float64 // load drop fraction from the running maximum
	EigLimit         *float64 // lowest tangent eigenvalue threshold
	ConcStrainLimit  *float64 // extreme concrete compressive strain threshold (negative)
	SteelStrainLimit *float64 // extreme steel tensile strain threshold

	TrySmallerSteps bool    // enable the step-reduction rungs of the retry ladder
	Verbose         bool    // report retries, switches and the terminal outcome
	Tol             float64 // convergence test tolerance
	MaxIt           int     // convergence test maximum iterations
}

// Flt returns a pointer threshold for Options
func Flt(v float64) *float64 { return &v }

// DefaultOptions returns options with the usual thresholds and increments
func DefaultOptions() *Options {
	return &Options{
		Kind:             ProportionalLimitPoint,
		NstepsVertical:   20,
		LoadIncr:         1e-5,
		DispIncr:         1e-7,
		DropLimit:        Flt(0.05),
		EigLimit:         Flt(0),
		ConcStrainLimit:  Flt(-0.01),
		SteelStrainLimit: Flt(0.05),
		TrySmallerSteps:  true,
		Tol:              1e-3,
		MaxIt:            10,
	}
}

// stepDividers is the retry ladder policy: fractions of the current step size
// tried in order on non-convergence. A success on any rung after the first
// permanently narrows the baseline step size by 10
var stepDividers = []float64{10, 100, 1000, 10000}

// Controller drives an equilibrium solver along a load path, one increment at
// a time, retrying with smaller increments and more robust algorithms on
// non-convergence, until one of the exit conditions fires
type Controller struct {
	Sol   sol.Solver
	Gauge StrainGauge
	Opts  *Options
}

// Run executes the path and extracts the limit point. A path aborted during
// the preliminary vertical phase returns the history as recorded, with no
// limit-point search
func (o *Controller) Run() (h *History, lp LimitPoint, err error) {
	h = new(History)
	search := true
	switch o.Opts.Kind {
	case ProportionalLimitPoint:
		o.runProportional(h)
	case NonProportionalLimitPoint:
		search = o.runNonProportional(h)
	default:
		return nil, lp, chk.Err("analysis kind %q is not recognized", o.Opts.Kind)
	}
	if o.Opts.Verbose {
		io.Pf("%s\n", h.Exit)
	}
	if !search {
		return
	}
	lp, err = FindLimitPoint(h, o.Opts)
	if err != nil {
		return
	}
	if o.Opts.Verbose {
		io.Pfgreen("limit point: P=%g M=%g\n", lp.P, lp.M)
	}
	return
}

// runProportional scales the fixed load vector {−1, e} by the load factor
// until a limit is reached
func (o *Controller) runProportional(h *History) {
	s := o.Sol
	s.SetPattern([]float64{-1, o.Opts.Ecc})
	base := o.Opts.LoadIncr
	s.SetIntegrator(sol.LoadControl, base)
	s.SetAlgorithm(sol.AlgNewton)
	s.SetTest(o.Opts.Tol, o.Opts.MaxIt)
	s.Analyze(1) // priming increment

	record := func() {
		εc, εs := o.Gauge.Extremes(s.NodeDisp(0), s.NodeDisp(1))
		h.append(s.Time(), math.Abs(s.EleForce(1)), s.LowestEigenvalue(), εc, εs)
	}
	record()

	maxLoad := 0.0
	for {
		if o.advance(sol.LoadControl, &base) != 0 {
			h.Exit = AnalysisFailed
			return
		}
		record()
		if cond := o.monitors(h, h.AxialLoad[h.Len()-1], &maxLoad); cond != Running {
			h.Exit = cond
			return
		}
	}
}

// runNonProportional applies the fixed vertical load in equal increments and
// then grows the lateral response under displacement control. The vertical
// phase has no retry ladder and no monitors: a failure there aborts the whole
// path
func (o *Controller) runNonProportional(h *History) (searched bool) {
	s := o.Sol

	// vertical phase
	s.SetPattern([]float64{-1, 0})
	s.SetAlgorithm(sol.AlgNewton)
	s.SetTest(o.Opts.Tol, o.Opts.MaxIt)
	s.SetIntegrator(sol.LoadControl, o.Opts.AxialLoad/float64(o.Opts.NstepsVertical))

	recordVert := func() {
		εc, εs := o.Gauge.Extremes(s.NodeDisp(0), s.NodeDisp(1))
		h.append(s.Time(), 0, s.LowestEigenvalue(), εc, εs)
	}
	recordVert()
	for i := 0; i < o.Opts.NstepsVertical; i++ {
		if s.Analyze(1) != 0 {
			o.log("analysis failed in vertical loading")
			h.Exit = AnalysisFailed
			return false
		}
		recordVert()
	}

	// lateral phase
	s.LoadConst()
	s.SetPattern([]float64{0, 1})
	base := o.Opts.DispIncr
	s.SetIntegrator(sol.DispControl, base)

	record := func() {
		εc, εs := o.Gauge.Extremes(s.NodeDisp(0), s.NodeDisp(1))
		h.append(o.Opts.AxialLoad, math.Abs(s.EleForce(1)), s.LowestEigenvalue(), εc, εs)
	}
	record()

	maxTime := 0.0
	for {
		if o.advance(sol.DispControl, &base) != 0 {
			h.Exit = AnalysisFailed
			return true
		}
		record()
		if cond := o.monitors(h, s.Time(), &maxTime); cond != Running {
			h.Exit = cond
			return true
		}
	}
}

// advance attempts one increment, escalating through the retry ladder on
// non-convergence: smaller step sizes first, then the more robust algorithms,
// then a relaxed tolerance. On any success the algorithm, tolerance and
// nominal step size are restored, so escalations stay local to one increment
func (o *Controller) advance(kind string, base *float64) (status int) {
	s := o.Sol
	status = s.Analyze(1)

	if status != 0 && o.Opts.TrySmallerSteps {
		for i, div := range stepDividers {
			o.log("trying the step size of: %g", *base/div)
			s.SetIntegrator(kind, *base/div)
			status = s.Analyze(1)
			if status == 0 {
				if i > 0 {
					*base /= 10
					o.log("changed the step size to: %g", *base)
				}
				break
			}
		}
	}
	if status != 0 {
		o.log("trying modified-newton")
		s.SetAlgorithm(sol.AlgModifiedNewton)
		status = s.Analyze(1)
	}
	if status != 0 {
		o.log("trying newton-ls")
		s.SetAlgorithm(sol.AlgNewtonLS)
		status = s.Analyze(1)
	}
	if status != 0 {
		o.log("trying newton-ls and greater tolerance")
		s.SetAlgorithm(sol.AlgNewtonLS)
		s.SetTest(o.Opts.Tol*10, o.Opts.MaxIt)
		status = s.Analyze(1)
	}
	if status == 0 {
		s.SetAlgorithm(sol.AlgNewton)
		s.SetTest(o.Opts.Tol, o.Opts.MaxIt)
		s.SetIntegrator(kind, *base)
	}
	return
}

// monitors evaluates the four capacity monitors in their fixed order; the
// first one to fire wins. pathVar is the path response variable watched for
// the load drop: the applied load, or the lateral load factor
func (o *Controller) monitors(h *History, pathVar float64, runMax *float64) ExitCondition {
	if o.Opts.DropLimit != nil {
		if pathVar > *runMax {
			*runMax = pathVar
		}
		if pathVar < (1.0-*o.Opts.DropLimit)*(*runMax) {
			return LoadDropLimit
		}
	}
	n := h.Len() - 1
	if o.Opts.EigLimit != nil && h.LowestEig[n] < *o.Opts.EigLimit {
		return EigenvalueLimit
	}
	if o.Opts.ConcStrainLimit != nil && h.ConcStrain[n] < *o.Opts.ConcStrainLimit {
		return ConcreteStrainLimit
	}
	if o.Opts.SteelStrainLimit != nil && h.SteelStrain[n] > *o.Opts.SteelStrainLimit {
		return SteelStrainLimit
	}
	return Running
}

// log reports progress when verbose is on
func (o *Controller) log(msg string, prm ...interface{}) {
	if o.Opts.Verbose {
		io.Pfyel(". . . "+msg+" . . .\n", prm...)
	}
}
