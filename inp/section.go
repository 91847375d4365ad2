// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sec) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/Esmaeelpour/gocap/diagram"
	"github.com/Esmaeelpour/gocap/fe"
	"github.com/Esmaeelpour/gocap/mdl/uniaxial"
	"github.com/Esmaeelpour/gocap/sec"
	"github.com/Esmaeelpour/gocap/sol"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SectionData holds the rectangular RC section definition
type SectionData struct {
	B     float64 `json:"b"`     // width
	H     float64 `json:"h"`     // height
	Cover float64 `json:"cover"` // cover to bar centre
	Db    float64 `json:"db"`    // bar diameter
	Nbx   int     `json:"nbx"`   // bars along each of top and bottom faces
	Nby   int     `json:"nby"`   // bars along each side face, corners included
	Nfx   int     `json:"nfx"`   // concrete fibers across the width
	Nfy   int     `json:"nfy"`   // concrete fibers across the height
}

// MatData holds material parameters
type MatData struct {
	Fc    float64 `json:"fc"`    // concrete compressive strength
	Fy    float64 `json:"fy"`    // steel yield stress
	Es    float64 `json:"es"`    // steel elastic modulus
	Units string  `json:"units"` // unit system: "us" or "si"
}

// AnalysisData holds the continuation path options. The four limit thresholds
// default to the usual values when absent; an explicit JSON null disables the
// corresponding monitor
type AnalysisData struct {
	Kind       string   `json:"kind"`       // analysis kind
	Ecc        float64  `json:"ecc"`        // eccentricity (proportional path)
	AxialLoad  float64  `json:"axialload"`  // target axial load (non-proportional path)
	NstepsVert int      `json:"nstepsvert"` // vertical phase increments
	LoadIncr   float64  `json:"loadincr"`   // load-control increment
	DispIncr   float64  `json:"dispincr"`   // displacement-control increment
	DropLimit  *float64 `json:"droplimit"`  // load drop fraction
	EigLimit   *float64 `json:"eiglimit"`   // lowest eigenvalue threshold
	ConcLimit  *float64 `json:"conclimit"`  // concrete compressive strain threshold
	SteelLimit *float64 `json:"steellimit"` // steel tensile strain threshold
	NoRetry    bool     `json:"noretry"`    // disable the step-reduction rungs
	Verbose    bool     `json:"verbose"`    // report retries and outcomes
}

// SweepData holds the interaction sweep settings
type SweepData struct {
	Engine string  `json:"engine"` // "closed-form", "fe" or "both"
	Npts   int     `json:"npts"`   // number of sweep points
	Angle  float64 `json:"angle"`  // neutral-axis angle [rad] (closed form)
}

// File holds all input data read from a .sec JSON file
type File struct {

	// input data
	Desc     string       `json:"desc"`      // description of the section
	Section  SectionData  `json:"section"`   // geometry and discretisation
	Material MatData      `json:"materials"` // material parameters
	Analysis AnalysisData `json:"analysis"`  // continuation options
	Sweep    SweepData    `json:"sweep"`     // interaction sweep settings

	// derived
	Key string // file name key; e.g. col01.sec => col01
}

// SetDefaults fills the default values overridable by the file content
func (o *File) SetDefaults() {
	d := fe.DefaultOptions()
	o.Section.Nfx = 10
	o.Section.Nfy = 20
	o.Material.Units = "us"
	o.Analysis.Kind = d.Kind
	o.Analysis.NstepsVert = d.NstepsVertical
	o.Analysis.LoadIncr = d.LoadIncr
	o.Analysis.DispIncr = d.DispIncr
	o.Analysis.DropLimit = d.DropLimit
	o.Analysis.EigLimit = d.EigLimit
	o.Analysis.ConcLimit = d.ConcStrainLimit
	o.Analysis.SteelLimit = d.SteelStrainLimit
	o.Sweep.Engine = "closed-form"
	o.Sweep.Npts = 20
}

// Read reads all section data from a .sec JSON file
func Read(path string) (o *File, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read section file %q", path)
	}
	o = new(File)
	o.SetDefaults()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal section file %q: %v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))
	return
}

// rect returns the section geometry helper
func (o *File) rect() *sec.RectRC {
	return &sec.RectRC{
		B:     o.Section.B,
		H:     o.Section.H,
		Cover: o.Section.Cover,
		Db:    o.Section.Db,
		Nbx:   o.Section.Nbx,
		Nby:   o.Section.Nby,
	}
}

// Engine builds the strain-compatibility engine with the stress-block
// concrete law and EPP steel
func (o *File) Engine() (eng *sec.Compat, err error) {
	fs := new(sec.FiberSet)
	eng = sec.NewCompat(fs)
	fsb, err := o.rect().Build(o.Section.Nfx, o.Section.Nfy, "concrete", "steel", eng)
	if err != nil {
		return nil, err
	}
	*fs = *fsb
	if err = eng.AddConcrete("concrete", o.Material.Fc, o.Material.Units); err != nil {
		return nil, err
	}
	eng.AddSteel("steel", o.Material.Fy, o.Material.Es)
	return
}

// Options builds the continuation options
func (o *File) Options() *fe.Options {
	opts := fe.DefaultOptions()
	opts.Kind = o.Analysis.Kind
	opts.Ecc = o.Analysis.Ecc
	opts.AxialLoad = o.Analysis.AxialLoad
	opts.NstepsVertical = o.Analysis.NstepsVert
	opts.LoadIncr = o.Analysis.LoadIncr
	opts.DispIncr = o.Analysis.DispIncr
	opts.DropLimit = o.Analysis.DropLimit
	opts.EigLimit = o.Analysis.EigLimit
	opts.ConcStrainLimit = o.Analysis.ConcLimit
	opts.SteelStrainLimit = o.Analysis.SteelLimit
	opts.TrySmallerSteps = !o.Analysis.NoRetry
	opts.Verbose = o.Analysis.Verbose
	return opts
}

// ClosedForm builds the closed-form interaction sweep
func (o *File) ClosedForm() (cf *diagram.ClosedForm, err error) {
	eng, err := o.Engine()
	if err != nil {
		return
	}
	return &diagram.ClosedForm{Eng: eng, Angle: o.Sweep.Angle, Npts: o.Sweep.Npts}, nil
}

// FEPath builds the continuation interaction sweep. Each path gets a fresh
// zero-length fiber solver with the parabolic concrete law, so the response
// exhibits real limit points; the stress-block engine serves as the strain
// gauge for the monitors
func (o *File) FEPath() (fp *diagram.FEPath, err error) {
	gauge, err := o.Engine()
	if err != nil {
		return
	}
	newSolver := func() (sol.Solver, error) {
		fs, err := o.rect().Build(o.Section.Nfx, o.Section.Nfy, "concrete", "steel", nil)
		if err != nil {
			return nil, err
		}
		mats := map[string]uniaxial.Model{
			"concrete": uniaxial.NewHognestad(o.Material.Fc),
			"steel":    uniaxial.NewElastPlastic(o.Material.Fy, o.Material.Es),
		}
		return sol.NewZeroLength(fs, mats)
	}
	return &diagram.FEPath{NewSolver: newSolver, Gauge: gauge, Opts: o.Options(), Npts: o.Sweep.Npts}, nil
}
