// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

// Scripted is a solver double that replays canned convergence outcomes and
// response series, and records every configuration call. It exists so the
// continuation controller's retry ladder and monitors can be tested without
// a real model
type Scripted struct {

	// script: one status per Analyze call (exhausted entries read as 0) and
	// one response entry per committed step (exhausted entries repeat the
	// last value)
	Statuses []int
	Eigs     []float64 // lowest eigenvalue per committed step
	DispA    []float64 // axial displacement per committed step
	DispK    []float64 // curvature per committed step
	Forces   []float64 // moment force per committed step
	Times    []float64 // load factor per committed step; overrides the accumulated one

	// recorded configuration calls, in order
	Algs     []string
	Tols     []float64
	Incrs    []float64
	Kinds    []string
	Patterns [][]float64
	NconstCalls int

	// state
	ncalls int
	step   int
	t      float64
	incr   float64
}

// SetPattern records the pattern
func (o *Scripted) SetPattern(fref []float64) {
	p := make([]float64, len(fref))
	copy(p, fref)
	o.Patterns = append(o.Patterns, p)
}

// LoadConst resets the load factor
func (o *Scripted) LoadConst() {
	o.NconstCalls++
	o.t = 0
}

// SetIntegrator records the integrator selection
func (o *Scripted) SetIntegrator(kind string, incr float64) error {
	o.Kinds = append(o.Kinds, kind)
	o.Incrs = append(o.Incrs, incr)
	o.incr = incr
	return nil
}

// SetAlgorithm records the algorithm selection
func (o *Scripted) SetAlgorithm(name string) error {
	o.Algs = append(o.Algs, name)
	return nil
}

// SetTest records the convergence test selection
func (o *Scripted) SetTest(tol float64, maxIt int) {
	o.Tols = append(o.Tols, tol)
}

// Analyze consumes the next scripted status; on success the step counter and
// the load factor advance
func (o *Scripted) Analyze(nsteps int) (status int) {
	for i := 0; i < nsteps; i++ {
		if o.ncalls < len(o.Statuses) {
			status = o.Statuses[o.ncalls]
		} else {
			status = 0
		}
		o.ncalls++
		if status != 0 {
			return
		}
		o.step++
		o.t += o.incr
	}
	return
}

// Time returns the canned load factor if scripted, the accumulated one otherwise
func (o *Scripted) Time() float64 {
	if len(o.Times) > 0 {
		return at(o.Times, o.step)
	}
	return o.t
}

// NodeDisp returns the canned displacement for the current step
func (o *Scripted) NodeDisp(dof int) float64 {
	if dof == 0 {
		return at(o.DispA, o.step)
	}
	return at(o.DispK, o.step)
}

// EleForce returns the canned force for the current step
func (o *Scripted) EleForce(dof int) float64 { return at(o.Forces, o.step) }

// LowestEigenvalue returns the canned eigenvalue for the current step
func (o *Scripted) LowestEigenvalue() float64 { return at(o.Eigs, o.step) }

// at reads the entry for committed step n (1-based), repeating the last one
func at(series []float64, n int) float64 {
	if len(series) == 0 {
		return 0
	}
	i := n - 1
	if i < 0 {
		i = 0
	}
	if i >= len(series) {
		i = len(series) - 1
	}
	return series[i]
}
