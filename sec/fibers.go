// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec implements fiber-discretised cross-sections and the closed-form
// strain-compatibility capacity engine
package sec

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Provider supplies the fiber discretisation of a cross-section:
// parallel arrays of area, coordinates and material id
type Provider interface {
	UniqueMatIds() []string                                  // unique material ids, in order of first appearance
	FiberData() (A, x, y []float64, mids []string)           // parallel fiber arrays
}

// FiberSet is an in-memory Provider. Fibers are append-only
type FiberSet struct {
	A    []float64 // fiber areas
	X    []float64 // fiber x-coordinates (centroids)
	Y    []float64 // fiber y-coordinates (centroids)
	Mids []string  // fiber material ids
}

// AddFiber appends one fiber
func (o *FiberSet) AddFiber(a, x, y float64, mid string) {
	o.A = append(o.A, a)
	o.X = append(o.X, x)
	o.Y = append(o.Y, y)
	o.Mids = append(o.Mids, mid)
}

// UniqueMatIds returns the unique material ids, in order of first appearance
func (o *FiberSet) UniqueMatIds() (ids []string) {
	seen := map[string]bool{}
	for _, m := range o.Mids {
		if !seen[m] {
			seen[m] = true
			ids = append(ids, m)
		}
	}
	return
}

// FiberData returns the parallel fiber arrays
func (o *FiberSet) FiberData() (A, x, y []float64, mids []string) {
	return o.A, o.X, o.Y, o.Mids
}

// RectRC describes a rectangular reinforced-concrete section with a
// perimeter bar arrangement. x spans the width, y the height, with the
// origin at the centroid
type RectRC struct {
	B     float64 // width
	H     float64 // height
	Cover float64 // cover to bar centre
	Db    float64 // bar diameter
	Nbx   int     // number of bars along each of top and bottom faces
	Nby   int     // number of bars along each of left and right faces (including corners)
}

// Bars returns the bar centre coordinates and the area of one bar
func (o *RectRC) Bars() (xb, yb []float64, ab float64) {
	ab = math.Pi * o.Db * o.Db / 4.0
	xtop := o.B/2.0 - o.Cover
	ytop := o.H/2.0 - o.Cover
	// top and bottom rows
	for i := 0; i < o.Nbx; i++ {
		x := -xtop + 2*xtop*float64(i)/float64(o.Nbx-1)
		xb = append(xb, x, x)
		yb = append(yb, ytop, -ytop)
	}
	// intermediate side bars
	for j := 1; j < o.Nby-1; j++ {
		y := -ytop + 2*ytop*float64(j)/float64(o.Nby-1)
		xb = append(xb, -xtop, xtop)
		yb = append(yb, y, y)
	}
	return
}

// Build discretises the section into nfx × nfy concrete fibers plus one fiber
// per bar, and registers the material edges in the given engine. Concrete
// fiber areas are gross (bar areas are not deducted)
func (o *RectRC) Build(nfx, nfy int, concID, steelID string, eng *Compat) (fs *FiberSet, err error) {
	if o.B <= 0 || o.H <= 0 || nfx < 1 || nfy < 1 {
		return nil, chk.Err("rectrc: geometry b=%g h=%g nfx=%d nfy=%d is incorrect", o.B, o.H, nfx, nfy)
	}
	if o.Nbx < 2 || o.Nby < 2 {
		return nil, chk.Err("rectrc: bar layout nbx=%d nby=%d is incorrect (needs corner bars)", o.Nbx, o.Nby)
	}
	fs = new(FiberSet)

	// concrete fibers
	dx, dy := o.B/float64(nfx), o.H/float64(nfy)
	for i := 0; i < nfx; i++ {
		for j := 0; j < nfy; j++ {
			x := -o.B/2.0 + dx*(float64(i)+0.5)
			y := -o.H/2.0 + dy*(float64(j)+0.5)
			fs.AddFiber(dx*dy, x, y, concID)
		}
	}

	// steel fibers
	xb, yb, ab := o.Bars()
	for i := range xb {
		fs.AddFiber(ab, xb[i], yb[i], steelID)
	}

	// material edges
	if eng != nil {
		eng.AddConcreteBoundary(-o.B/2.0, -o.H/2.0, 0)
		eng.AddConcreteBoundary(o.B/2.0, -o.H/2.0, 0)
		eng.AddConcreteBoundary(o.B/2.0, o.H/2.0, 0)
		eng.AddConcreteBoundary(-o.B/2.0, o.H/2.0, 0)
		for i := range xb {
			eng.AddSteelBoundary(xb[i], yb[i], o.Db/2.0)
		}
	}
	return
}
