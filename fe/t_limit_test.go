// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fe

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_limit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("limit01. moment maximum series selection")

	// rising then falling moment path
	h := new(History)
	h.append(0, 0, 9, 0, 0)
	h.append(10, 5, 7, 0, 0)
	h.append(20, 9, 5, 0, 0)
	h.append(30, 8, 3, 0, 0)
	h.append(40, 6, 1, 0, 0)
	h.Exit = AnalysisFailed

	opts := DefaultOptions()
	lp, err := FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}

	// the maximum sits exactly on record 2: no fractional shift
	chk.Scalar(tst, "P", 1e-15, lp.P, 20)
	chk.Scalar(tst, "M", 1e-15, lp.M, 9)

	// a load drop selects the same moment series
	h.Exit = LoadDropLimit
	lp2, err := FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P drop", 1e-15, lp2.P, lp.P)
	chk.Scalar(tst, "M drop", 1e-15, lp2.M, lp.M)
}

func Test_limit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("limit02. threshold crossings of the three monitors")

	opts := DefaultOptions()

	// eigenvalue crosses zero halfway between records 1 and 2
	h := new(History)
	h.append(0, 0, 3, 0, 0)
	h.append(10, 4, 1, 0, 0)
	h.append(20, 8, -1, 0, 0)
	h.Exit = EigenvalueLimit
	lp, err := FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P eig", 1e-15, lp.P, 15)
	chk.Scalar(tst, "M eig", 1e-15, lp.M, 6)

	// concrete strain crosses −0.01 halfway between records 1 and 2
	h = new(History)
	h.append(0, 0, 1, -0.002, 0)
	h.append(10, 4, 1, -0.008, 0)
	h.append(20, 8, 1, -0.012, 0)
	h.Exit = ConcreteStrainLimit
	lp, err = FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P conc", 1e-14, lp.P, 15)
	chk.Scalar(tst, "M conc", 1e-14, lp.M, 6)

	// steel strain crosses 0.05 halfway between records 1 and 2
	h = new(History)
	h.append(0, 0, 1, 0, 0.01)
	h.append(10, 4, 1, 0, 0.04)
	h.append(20, 8, 1, 0, 0.06)
	h.Exit = SteelStrainLimit
	lp, err = FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P steel", 1e-14, lp.P, 15)
	chk.Scalar(tst, "M steel", 1e-14, lp.M, 6)
}

func Test_limit03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("limit03. edge cases and unrecognized condition")

	opts := DefaultOptions()

	// nothing beyond the threshold: the last record is reported
	h := new(History)
	h.append(0, 0, 3, 0, 0)
	h.append(10, 4, 2, 0, 0)
	h.append(20, 8, 1, 0, 0)
	h.Exit = EigenvalueLimit
	lp, err := FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P last", 1e-15, lp.P, 20)
	chk.Scalar(tst, "M last", 1e-15, lp.M, 8)

	// already beyond at the first record: no backward interpolation
	h = new(History)
	h.append(0, 0, -1, 0, 0)
	h.append(10, 4, 2, 0, 0)
	h.Exit = EigenvalueLimit
	lp, err = FindLimitPoint(h, opts)
	if err != nil {
		tst.Errorf("FindLimitPoint failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P first", 1e-15, lp.P, 0)
	chk.Scalar(tst, "M first", 1e-15, lp.M, 0)

	// Running and out-of-range tags are rejected
	h.Exit = Running
	if _, err = FindLimitPoint(h, opts); err == nil {
		tst.Errorf("FindLimitPoint should have failed with Running\n")
	}
	h.Exit = ExitCondition(99)
	if _, err = FindLimitPoint(h, opts); err == nil {
		tst.Errorf("FindLimitPoint should have failed with unknown tag\n")
	}
}

func Test_limit04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("limit04. interpolation is idempotent at integral indices")

	series := []float64{0, 3, 7, 12, 20}
	for i := range series {
		chk.Scalar(tst, "series[i]", 1e-15, Interpolate(series, i, 1), series[i])
	}
	chk.Scalar(tst, "midpoint", 1e-15, Interpolate(series, 2, 0.5), 5)
	chk.Scalar(tst, "ind=0", 1e-15, Interpolate(series, 0, 0.3), series[0])
}
