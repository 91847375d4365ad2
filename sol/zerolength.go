// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"

	"github.com/Esmaeelpour/gocap/mdl/uniaxial"
	"github.com/Esmaeelpour/gocap/sec"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ZeroLength is the reference equilibrium solver: a single zero-length
// fiber-section element with two DOFs, the axial strain and the curvature
// about the x-axis. Internal forces are integrated from the fiber uniaxial
// models; the tangent is assembled from the model tangents
type ZeroLength struct {

	// fiber data
	area []float64
	y    []float64
	mats []uniaxial.Model

	// committed state
	u []float64 // {εa, κ}
	t float64   // load factor of the active pattern

	// loads
	fconst []float64 // frozen loads
	fref   []float64 // reference load vector scaled by the load factor

	// integrator
	integ string
	incr  float64
	cdof  int // controlled DOF under displacement control

	// algorithm and convergence test
	alg   string
	tol   float64
	maxIt int
}

// NewZeroLength builds a solver from a fiber provider and a material registry.
// Unknown material ids fail
func NewZeroLength(p sec.Provider, mats map[string]uniaxial.Model) (o *ZeroLength, err error) {
	o = new(ZeroLength)
	var mids []string
	o.area, _, o.y, mids = p.FiberData()
	o.mats = make([]uniaxial.Model, len(mids))
	for i, id := range mids {
		m, ok := mats[id]
		if !ok {
			return nil, chk.Err("material %q is not available in the solver registry", id)
		}
		o.mats[i] = m
	}
	o.u = make([]float64, 2)
	o.fconst = make([]float64, 2)
	o.fref = make([]float64, 2)
	o.alg = AlgNewton
	o.tol = 1e-3
	o.maxIt = 10
	o.integ = LoadControl
	o.cdof = 1
	return
}

// SetPattern sets the reference load vector {N, M} scaled by the load factor
func (o *ZeroLength) SetPattern(fref []float64) {
	copy(o.fref, fref)
	o.t = 0
}

// LoadConst freezes the currently applied loads and resets the load factor,
// as before switching from the vertical to the lateral pattern
func (o *ZeroLength) LoadConst() {
	for i := 0; i < 2; i++ {
		o.fconst[i] += o.t * o.fref[i]
		o.fref[i] = 0
	}
	o.t = 0
}

// SetIntegrator selects load control or displacement control (on the
// curvature DOF) with the given increment
func (o *ZeroLength) SetIntegrator(kind string, incr float64) error {
	if kind != LoadControl && kind != DispControl {
		return chk.Err("integrator kind %q is not available", kind)
	}
	o.integ = kind
	o.incr = incr
	return nil
}

// SetAlgorithm selects the iterative algorithm
func (o *ZeroLength) SetAlgorithm(name string) error {
	switch name {
	case AlgNewton, AlgModifiedNewton, AlgNewtonLS:
		o.alg = name
		return nil
	}
	return chk.Err("algorithm %q is not available", name)
}

// SetTest sets the norm-unbalance convergence test
func (o *ZeroLength) SetTest(tol float64, maxIt int) {
	o.tol = tol
	o.maxIt = maxIt
}

// Time returns the current load factor
func (o *ZeroLength) Time() float64 { return o.t }

// NodeDisp returns a displacement component of the free node
func (o *ZeroLength) NodeDisp(dof int) float64 { return o.u[dof] }

// EleForce returns an internal force component of the section element
func (o *ZeroLength) EleForce(dof int) float64 {
	f := o.fint(o.u)
	return f[dof]
}

// LowestEigenvalue returns the lowest eigenvalue of the committed tangent
func (o *ZeroLength) LowestEigenvalue() float64 {
	K := o.tangent(o.u)
	// closed form for the symmetric 2 × 2 system
	h := (K[0][0] + K[1][1]) / 2.0
	d := (K[0][0] - K[1][1]) / 2.0
	return h - math.Sqrt(d*d+K[0][1]*K[0][1])
}

// Analyze advances nsteps increments, returning 0 on convergence of all of
// them and 1 as soon as one increment fails (state restored to the last
// converged increment)
func (o *ZeroLength) Analyze(nsteps int) (status int) {
	for i := 0; i < nsteps; i++ {
		if !o.step() {
			return 1
		}
	}
	return 0
}

// fint integrates the internal forces {N, M} for the given deformations
func (o *ZeroLength) fint(u []float64) (f []float64) {
	f = make([]float64, 2)
	for i, a := range o.area {
		σ := o.mats[i].Stress(u[0] - o.y[i]*u[1])
		f[0] += σ * a
		f[1] += σ * a * (-o.y[i])
	}
	return
}

// tangent assembles the 2 × 2 section tangent for the given deformations
func (o *ZeroLength) tangent(u []float64) (K [][]float64) {
	K = la.MatAlloc(2, 2)
	for i, a := range o.area {
		Et := o.mats[i].Tangent(u[0] - o.y[i]*u[1])
		K[0][0] += Et * a
		K[0][1] += Et * a * (-o.y[i])
		K[1][1] += Et * a * o.y[i] * o.y[i]
	}
	K[1][0] = K[0][1]
	return
}

// step runs the iterations for one increment
func (o *ZeroLength) step() (converged bool) {

	// backup for restore on failure
	u0, u1, t0 := o.u[0], o.u[1], o.t

	if o.integ == LoadControl {
		converged = o.stepLoad()
	} else {
		converged = o.stepDisp()
	}
	if !converged {
		o.u[0], o.u[1], o.t = u0, u1, t0
	}
	return
}

// stepLoad advances one load-control increment: the load factor grows by the
// increment and the two deformations are the unknowns
func (o *ZeroLength) stepLoad() (converged bool) {
	λ := o.t + o.incr
	fext := []float64{o.fconst[0] + λ*o.fref[0], o.fconst[1] + λ*o.fref[1]}

	var K [][]float64
	R := make([]float64, 2)
	for it := 0; it < o.maxIt; it++ {

		// residual
		f := o.fint(o.u)
		R[0], R[1] = fext[0]-f[0], fext[1]-f[1]
		if la.VecNorm(R) < o.tol {
			o.t = λ
			return true
		}

		// tangent (held at the first iteration for modified Newton)
		if K == nil || o.alg != AlgModifiedNewton {
			K = o.tangent(o.u)
		}
		δ0, δ1, ok := solve2(K, R)
		if !ok {
			return false
		}

		// update, with backtracking when the line-search algorithm is on
		s := 1.0
		if o.alg == AlgNewtonLS {
			s = o.backtrack(R, δ0, δ1, fext)
		}
		o.u[0] += s * δ0
		o.u[1] += s * δ1
	}
	return false
}

// stepDisp advances one displacement-control increment: the controlled DOF
// grows by the increment and the remaining DOF and the load factor are the
// unknowns
func (o *ZeroLength) stepDisp() (converged bool) {
	j := o.cdof
	k := 1 - j
	o.u[j] += o.incr
	λ := o.t

	var K [][]float64
	R := make([]float64, 2)
	for it := 0; it < o.maxIt; it++ {

		// residual
		f := o.fint(o.u)
		R[0] = o.fconst[0] + λ*o.fref[0] - f[0]
		R[1] = o.fconst[1] + λ*o.fref[1] - f[1]
		if la.VecNorm(R) < o.tol {
			o.t = λ
			return true
		}

		// Jacobian wrt (u[k], λ): first column −K[:,k] moved to the
		// left-hand side, second column the reference load vector
		if K == nil || o.alg != AlgModifiedNewton {
			K = o.tangent(o.u)
		}
		J := [][]float64{
			{K[0][k], -o.fref[0]},
			{K[1][k], -o.fref[1]},
		}
		δu, δλ, ok := solve2(J, R)
		if !ok {
			return false
		}
		o.u[k] += δu
		λ += δλ
	}
	return false
}

// backtrack halves the step until the residual norm decreases, up to 8 times
func (o *ZeroLength) backtrack(R []float64, δ0, δ1 float64, fext []float64) (s float64) {
	norm0 := la.VecNorm(R)
	s = 1.0
	Rs := make([]float64, 2)
	for i := 0; i < 8; i++ {
		f := o.fint([]float64{o.u[0] + s*δ0, o.u[1] + s*δ1})
		Rs[0], Rs[1] = fext[0]-f[0], fext[1]-f[1]
		if la.VecNorm(Rs) < norm0 {
			return
		}
		s /= 2.0
	}
	return
}

// solve2 solves a 2 × 2 linear system
func solve2(A [][]float64, b []float64) (x0, x1 float64, ok bool) {
	det := A[0][0]*A[1][1] - A[0][1]*A[1][0]
	if math.Abs(det) < 1e-20 {
		return 0, 0, false
	}
	x0 = (b[0]*A[1][1] - b[1]*A[0][1]) / det
	x1 = (A[0][0]*b[1] - A[1][0]*b[0]) / det
	return x0, x1, true
}
