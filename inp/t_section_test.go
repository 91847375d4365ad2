// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. section file, defaults and null threshold")

	f, err := Read("data/col01.sec")
	if err != nil {
		tst.Errorf("Read failed: %v\n", err)
		return
	}
	if f.Key != "col01" {
		tst.Errorf("file key: got %q, want %q\n", f.Key, "col01")
	}
	chk.Scalar(tst, "b", 1e-15, f.Section.B, 12)
	chk.Scalar(tst, "h", 1e-15, f.Section.H, 20)
	chk.IntAssert(f.Section.Nbx, 2)
	chk.IntAssert(f.Section.Nfy, 10)
	chk.Scalar(tst, "fc", 1e-15, f.Material.Fc, 4)
	if f.Sweep.Engine != "both" {
		tst.Errorf("sweep engine: got %q\n", f.Sweep.Engine)
	}
	chk.IntAssert(f.Sweep.Npts, 11)

	// absent thresholds keep the defaults; an explicit null disables
	if f.Analysis.DropLimit == nil {
		tst.Errorf("drop limit must default on\n")
		return
	}
	chk.Scalar(tst, "drop limit", 1e-15, *f.Analysis.DropLimit, 0.05)
	if f.Analysis.ConcLimit == nil {
		tst.Errorf("concrete strain limit must default on\n")
		return
	}
	chk.Scalar(tst, "conc limit", 1e-15, *f.Analysis.ConcLimit, -0.01)
	if f.Analysis.EigLimit != nil {
		tst.Errorf("null eigenvalue limit must disable the monitor\n")
	}

	// options mapping
	opts := f.Options()
	if opts.Kind != "nonproportional_limit_point" {
		tst.Errorf("kind: got %q\n", opts.Kind)
	}
	chk.IntAssert(opts.NstepsVertical, 10)
	chk.Scalar(tst, "load incr", 1e-15, opts.LoadIncr, 0.001)
	chk.Scalar(tst, "disp incr", 1e-20, opts.DispIncr, 1e-6)
	if !opts.TrySmallerSteps {
		tst.Errorf("retry ladder must default on\n")
	}
	if opts.EigLimit != nil {
		tst.Errorf("null eigenvalue limit must carry through to the options\n")
	}

	// builders
	eng, err := f.Engine()
	if err != nil {
		tst.Errorf("Engine failed: %v\n", err)
		return
	}
	lo, hi, err := eng.ConcreteExtent(0)
	if err != nil {
		tst.Errorf("ConcreteExtent failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "lo", 1e-15, lo, -10)
	chk.Scalar(tst, "hi", 1e-15, hi, 10)

	cf, err := f.ClosedForm()
	if err != nil {
		tst.Errorf("ClosedForm failed: %v\n", err)
		return
	}
	chk.IntAssert(cf.Npts, 11)

	fp, err := f.FEPath()
	if err != nil {
		tst.Errorf("FEPath failed: %v\n", err)
		return
	}
	if _, err = fp.NewSolver(); err != nil {
		tst.Errorf("NewSolver failed: %v\n", err)
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. missing and malformed files")

	if _, err := Read("data/none.sec"); err == nil {
		tst.Errorf("Read should have failed with missing file\n")
	}
	if _, err := Read("data/bad.sec"); err == nil {
		tst.Errorf("Read should have failed with malformed file\n")
	}
}
