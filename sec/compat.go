// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/Esmaeelpour/gocap/mdl/uniaxial"
	"github.com/cpmech/gosl/chk"
)

// NeutralAxis defines the neutral-axis line by one point (Xpt, Ypt) on it and
// its angle from the positive x-axis, in radians. In the direction of the
// angle, compression is to the left and tension is to the right; e.g.
// Angle = 0 is bending about the x-axis with compression above the line
type NeutralAxis struct {
	Xpt   float64 // x-coordinate of a point on the line
	Ypt   float64 // y-coordinate of a point on the line
	Angle float64 // angle from the positive x-axis [rad]
}

// coefs returns the line coefficients such that the signed perpendicular
// distance of (x, y) is a x + b y + c (negative on the compression side)
func (o NeutralAxis) coefs() (a, b, c float64) {
	a = math.Sin(o.Angle)
	b = -math.Cos(o.Angle)
	c = -math.Sin(o.Angle)*o.Xpt + math.Cos(o.Angle)*o.Ypt
	return
}

// BndPoint is a point on the true edge of a material, distinct from fiber
// centroids: the concrete outer boundary or a reinforcing bar boundary.
// R offsets the perpendicular distance to reach the material edge
type BndPoint struct {
	X float64 // x-coordinate
	Y float64 // y-coordinate
	R float64 // radius to the material edge
}

// Compat computes cross-section capacity points by strain compatibility:
// a linear strain field anchored at the extreme concrete compression fiber is
// integrated analytically over the fibers, with no iterative solver.
// Boundary point sets and the material registry are owned by the instance
type Compat struct {

	// configuration
	EpsCU   float64 // extreme concrete compression strain (negative)
	EpsTdef float64 // default tensile strain when no concrete is in compression

	// per-instance registries (append-only)
	concBnd  []BndPoint
	steelBnd []BndPoint
	mats     map[string]uniaxial.Model

	// cached fiber data (set by BuildData)
	prov Provider
	uniq []string
	area []float64
	x    []float64
	y    []float64
	grp  map[string][]int // material id => fiber indices
	done bool
}

// NewCompat returns an engine for the given fiber provider with the usual
// defaults εcu = −0.003 and default tensile strain 0.005
func NewCompat(p Provider) (o *Compat) {
	o = new(Compat)
	o.EpsCU = uniaxial.EpsCU
	o.EpsTdef = 0.005
	o.mats = map[string]uniaxial.Model{}
	o.prov = p
	return
}

// AddConcreteBoundary appends one point of the concrete outer boundary
func (o *Compat) AddConcreteBoundary(x, y, r float64) {
	o.concBnd = append(o.concBnd, BndPoint{x, y, r})
}

// AddSteelBoundary appends one point of a reinforcing bar boundary
func (o *Compat) AddSteelBoundary(x, y, r float64) {
	o.steelBnd = append(o.steelBnd, BndPoint{x, y, r})
}

// AddMaterial registers a pre-built model under the given id, overwriting any
// prior entry
func (o *Compat) AddMaterial(id string, m uniaxial.Model) {
	o.mats[id] = m
}

// AddSteel registers an elastic perfectly-plastic steel model
func (o *Compat) AddSteel(id string, fy, es float64) {
	o.mats[id] = uniaxial.NewElastPlastic(fy, es)
}

// AddConcrete registers a rectangular stress block concrete model
func (o *Compat) AddConcrete(id string, fc float64, units string) (err error) {
	m, err := uniaxial.NewStressBlock(fc, units)
	if err != nil {
		return
	}
	o.mats[id] = m
	return
}

// BuildData caches the fiber data from the provider and groups fibers by
// material id. Must be called once before ComputePoint
func (o *Compat) BuildData() {
	o.uniq = o.prov.UniqueMatIds()
	var mids []string
	o.area, o.x, o.y, mids = o.prov.FiberData()
	o.grp = map[string][]int{}
	for i, m := range mids {
		o.grp[m] = append(o.grp[m], i)
	}
	o.done = true
}

// ExtremeConcreteFiber returns the signed distance from the neutral axis to
// the extreme concrete compression fiber: the algebraic minimum over the
// concrete boundary points, offset by each point's radius. It is based on the
// true edge of material, not on fiber centroids
func (o *Compat) ExtremeConcreteFiber(na NeutralAxis) (yc float64, err error) {
	if len(o.concBnd) < 1 {
		return 0, chk.Err("concrete boundary has no points")
	}
	a, b, c := na.coefs()
	yc = math.Inf(1)
	for _, p := range o.concBnd {
		d := a*p.X + b*p.Y + c - p.R
		if d < yc {
			yc = d
		}
	}
	return
}

// ExtremeSteelFiber returns the signed distance from the neutral axis to the
// extreme steel tension fiber: the algebraic maximum over the steel boundary
// points, offset by each point's radius towards tension
func (o *Compat) ExtremeSteelFiber(na NeutralAxis) (yt float64, err error) {
	if len(o.steelBnd) < 1 {
		return 0, chk.Err("steel boundary has no points")
	}
	a, b, c := na.coefs()
	yt = math.Inf(-1)
	for _, p := range o.steelBnd {
		d := a*p.X + b*p.Y + c + p.R
		if d > yt {
			yt = d
		}
	}
	return
}

// ExtremeSteelStrain returns the strain in the extreme steel tension fiber
// when the extreme concrete compression strain equals EpsCU. If the neutral
// axis leaves no concrete in compression, the default tensile strain is
// returned instead
func (o *Compat) ExtremeSteelStrain(na NeutralAxis) (εt float64, err error) {
	yc, err := o.ExtremeConcreteFiber(na)
	if err != nil {
		return
	}
	yt, err := o.ExtremeSteelFiber(na)
	if err != nil {
		return
	}
	if yc < 0 {
		return yt * o.EpsCU / yc, nil
	}
	return o.EpsTdef, nil
}

// ComputePoint integrates the fiber stresses for the given neutral axis and
// returns the axial force, the moments about both axes and the extreme steel
// tensile strain. Compression is negative
func (o *Compat) ComputePoint(na NeutralAxis) (P, Mx, My, εt float64, err error) {
	if !o.done {
		o.BuildData()
	}
	yc, err := o.ExtremeConcreteFiber(na)
	if err != nil {
		return
	}

	// strain field: linear when concrete is in compression, otherwise the
	// whole section takes the default tensile strain
	a, b, c := na.coefs()
	n := len(o.area)
	ε := make([]float64, n)
	if yc < 0 {
		for i := 0; i < n; i++ {
			ε[i] = o.EpsCU / yc * (a*o.x[i] + b*o.y[i] + c)
		}
	} else {
		for i := 0; i < n; i++ {
			ε[i] = o.EpsTdef
		}
	}

	// stresses, grouped by material id
	σ := make([]float64, n)
	for _, id := range o.uniq {
		m, ok := o.mats[id]
		if !ok {
			return 0, 0, 0, 0, chk.Err("material %q is not available in the engine registry", id)
		}
		for _, i := range o.grp[id] {
			σ[i] = m.Stress(ε[i])
		}
	}

	// integration
	for i := 0; i < n; i++ {
		P += σ[i] * o.area[i]
		Mx += σ[i] * o.area[i] * (-o.y[i])
		My += σ[i] * o.area[i] * o.x[i]
	}
	if len(o.steelBnd) > 0 {
		εt, err = o.ExtremeSteelStrain(na)
	} else if yc >= 0 {
		εt = o.EpsTdef
	}
	return
}

// Uniform integrates the fiber stresses under a uniform strain field. It
// serves the pure-compression and pure-tension caps of the interaction sweep,
// which no neutral-axis position can represent exactly
func (o *Compat) Uniform(ε float64) (P, Mx, My float64, err error) {
	if !o.done {
		o.BuildData()
	}
	for _, id := range o.uniq {
		m, ok := o.mats[id]
		if !ok {
			return 0, 0, 0, chk.Err("material %q is not available in the engine registry", id)
		}
		σ := m.Stress(ε)
		for _, i := range o.grp[id] {
			P += σ * o.area[i]
			Mx += σ * o.area[i] * (-o.y[i])
			My += σ * o.area[i] * o.x[i]
		}
	}
	return
}

// ConcreteExtent returns the range of signed perpendicular distances, radii
// included, of the concrete boundary from a neutral axis with the given angle
// through the origin. It brackets the axis positions worth sweeping
func (o *Compat) ConcreteExtent(angle float64) (lo, hi float64, err error) {
	if len(o.concBnd) < 1 {
		return 0, 0, chk.Err("concrete boundary has no points")
	}
	a, b, _ := NeutralAxis{Angle: angle}.coefs()
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range o.concBnd {
		d := a*p.X + b*p.Y
		if d-p.R < lo {
			lo = d - p.R
		}
		if d+p.R > hi {
			hi = d + p.R
		}
	}
	return
}

// Extremes maps section deformations (axial strain and curvature about the
// x-axis) to the extreme concrete compressive strain and the extreme steel
// tensile strain, evaluated at the material edges. It serves the continuation
// controller's strain monitors on the finite-element path
func (o *Compat) Extremes(εa, κx float64) (εc, εs float64) {
	εc = math.Inf(1)
	for _, p := range o.concBnd {
		for _, y := range []float64{p.Y - p.R, p.Y + p.R} {
			if e := εa - κx*y; e < εc {
				εc = e
			}
		}
	}
	εs = math.Inf(-1)
	for _, p := range o.steelBnd {
		for _, y := range []float64{p.Y - p.R, p.Y + p.R} {
			if e := εa - κx*y; e > εs {
				εs = e
			}
		}
	}
	if len(o.concBnd) < 1 {
		εc = 0
	}
	if len(o.steelBnd) < 1 {
		εs = 0
	}
	return
}
