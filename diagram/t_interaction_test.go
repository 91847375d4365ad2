// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"math"
	"strings"
	"testing"

	"github.com/Esmaeelpour/gocap/fe"
	"github.com/Esmaeelpour/gocap/sec"
	"github.com/Esmaeelpour/gocap/sol"
	"github.com/cpmech/gosl/chk"
)

func Test_closedform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closedform01. strain-compatibility sweep of a RC section")

	rc := &sec.RectRC{B: 12, H: 20, Cover: 2, Db: 1, Nbx: 2, Nby: 3}
	fs := new(sec.FiberSet)
	eng := sec.NewCompat(fs)
	fsb, err := rc.Build(12, 20, "conc", "steel", eng)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	*fs = *fsb
	if err = eng.AddConcrete("conc", 4, "us"); err != nil {
		tst.Errorf("AddConcrete failed: %v\n", err)
		return
	}
	eng.AddSteel("steel", 60, 29000)

	cf := &ClosedForm{Eng: eng, Npts: 21}
	c, err := cf.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}
	chk.IntAssert(c.Len(), 23)

	// caps: squash load with all bars at −Fy, and bare-bars tension
	ab := math.Pi / 4.0
	chk.Scalar(tst, "P squash", 1e-8, c.P[0], 0.85*4*240+60*6*ab)
	chk.Scalar(tst, "M squash", 1e-8, c.M[0], 0)
	chk.Scalar(tst, "P tension", 1e-8, c.P[c.Len()-1], -60*6*ab)
	chk.Scalar(tst, "M tension", 1e-8, c.M[c.Len()-1], 0)

	// the sweep runs from full compression to full tension: P non-increasing,
	// moments non-negative for bending about x with compression on top
	for i := 1; i < c.Len(); i++ {
		if c.P[i] > c.P[i-1]+1e-9 {
			tst.Errorf("P must be non-increasing along the sweep: P[%d]=%g > P[%d]=%g\n", i, c.P[i], i-1, c.P[i-1])
			return
		}
	}
	for i, m := range c.M {
		if m < -1e-9 {
			tst.Errorf("M must be non-negative: M[%d]=%g\n", i, m)
			return
		}
	}

	// the last sweep position leaves no concrete in compression, matching the
	// tension cap
	chk.Scalar(tst, "sweep end equals cap", 1e-10, c.P[c.Len()-2], c.P[c.Len()-1])

	// somewhere between the caps the section carries real moment
	mmax := 0.0
	for _, m := range c.M {
		if m > mmax {
			mmax = m
		}
	}
	if mmax <= 0 {
		tst.Errorf("sweep produced no bending capacity\n")
	}
}

func Test_fepath01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fepath01. continuation sweep over axial fractions")

	// one scripted solver per path: the axial path loses stability on the
	// third record, each lateral path on its second lateral increment
	queue := []*sol.Scripted{
		{Eigs: []float64{3, 1, -1}, Forces: []float64{2, 4, 6}},
		{Eigs: []float64{1, 1, 1, -1}, Forces: []float64{0, 0, 10, 30}},
		{Eigs: []float64{1, 1, 1, -1}, Forces: []float64{0, 0, 10, 30}},
	}
	k := 0
	newSolver := func() (sol.Solver, error) {
		s := queue[k]
		k++
		return s, nil
	}

	opts := fe.DefaultOptions()
	opts.LoadIncr = 1
	opts.DispIncr = 1
	opts.NstepsVertical = 2

	fp := &FEPath{NewSolver: newSolver, Gauge: flatGauge{}, Opts: opts, Npts: 3}
	c, err := fp.Compute()
	if err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}
	chk.IntAssert(c.Len(), 3)
	chk.IntAssert(k, 3)

	// axial capacity from the eigenvalue crossing, then the held loads
	chk.Vector(tst, "P", 1e-13, c.P, []float64{2.5, 1.25, 0})
	chk.Vector(tst, "M", 1e-13, c.M, []float64{5, 20, 20})
}

func Test_fepath02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fepath02. undetermined axial capacity fails fast")

	// the axial path exhausts the whole retry ladder before any progress
	newSolver := func() (sol.Solver, error) {
		return &sol.Scripted{Statuses: []int{1, 1, 1, 1, 1, 1, 1, 1, 1}}, nil
	}
	opts := fe.DefaultOptions()
	opts.LoadIncr = 1

	fp := &FEPath{NewSolver: newSolver, Gauge: flatGauge{}, Opts: opts, Npts: 3}
	c, err := fp.Compute()
	if err == nil {
		tst.Errorf("Compute should have failed with undetermined axial capacity\n")
		return
	}
	if c != nil {
		tst.Errorf("no curve must be returned on failure\n")
	}
}

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. text table rendering")

	c := &Curve{P: []float64{100, 50, 0}, M: []float64{0, 80, 60}}
	s := c.Table("closed form")
	if !strings.Contains(s, "closed form") {
		tst.Errorf("table is missing the title\n")
	}
	if !strings.Contains(s, "80.0000") {
		tst.Errorf("table is missing the moment values\n")
	}
	if n := strings.Count(s, "\n"); n != 5 {
		tst.Errorf("table must have one line per point plus header: got %d lines\n", n)
	}
}

// flatGauge reports safe constant extreme strains
type flatGauge struct{}

func (o flatGauge) Extremes(εa, κx float64) (εc, εs float64) { return -0.001, 0.001 }
