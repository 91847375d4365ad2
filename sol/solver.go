// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sol defines the equilibrium-solver capability interface used by the
// continuation controller, and provides a reference zero-length fiber-section
// implementation plus a scripted double for tests
package sol

// integrator kinds
const (
	LoadControl = "load-control"
	DispControl = "displacement-control"
)

// iterative algorithms, from cheapest to most robust
const (
	AlgNewton         = "newton"          // standard Newton-Raphson
	AlgModifiedNewton = "modified-newton" // initial tangent held through the iterations
	AlgNewtonLS       = "newton-ls"       // Newton with backtracking line search
)

// Solver abstracts a stateful nonlinear equilibrium solver. One solver holds
// one model instance; two continuation paths must not run concurrently
// against the same solver.
//
// DOF 0 is the axial component and DOF 1 the rotational (curvature/moment)
// component, mirroring a zero-length section element between two nodes
type Solver interface {
	SetPattern(fref []float64)                    // sets the reference load vector scaled by the load factor
	LoadConst()                                   // freezes the current loads and resets the load factor to zero
	SetIntegrator(kind string, incr float64) error // selects load or displacement control with the given increment
	SetAlgorithm(name string) error               // selects the iterative algorithm
	SetTest(tol float64, maxIt int)               // sets the norm-unbalance convergence test
	Analyze(nsteps int) (status int)              // advances increments; 0 means converged
	Time() float64                                // current load factor of the active pattern
	NodeDisp(dof int) float64                     // nodal displacement component
	EleForce(dof int) float64                     // element force component
	LowestEigenvalue() float64                    // lowest eigenvalue of the current tangent system
}
