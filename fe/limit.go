// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fe

import (
	"github.com/cpmech/gosl/chk"
)

// LimitPoint is the interpolated (applied axial load, maximum absolute
// moment) pair at the instant the governing exit condition was first
// satisfied
type LimitPoint struct {
	P float64 // applied axial load at the limit point
	M float64 // maximum absolute moment at the limit point
}

// FindLimitPoint selects the scalar series relevant to the exit condition,
// locates the crossing of the governing extreme and interpolates the load and
// moment series at the fractional position
func FindLimitPoint(h *History, opts *Options) (lp LimitPoint, err error) {

	var series []float64
	var limit float64
	var beyond func(v float64) bool

	switch h.Exit {
	case AnalysisFailed, LoadDropLimit:
		series = h.MaxAbsMoment
		limit = maxOf(series)
		beyond = func(v float64) bool { return v >= limit }
	case EigenvalueLimit:
		series = h.LowestEig
		limit = val(opts.EigLimit, 0)
		beyond = func(v float64) bool { return v < limit }
	case ConcreteStrainLimit:
		series = h.ConcStrain
		limit = val(opts.ConcStrainLimit, -0.01)
		beyond = func(v float64) bool { return v < limit }
	case SteelStrainLimit:
		series = h.SteelStrain
		limit = val(opts.SteelStrainLimit, 0.05)
		beyond = func(v float64) bool { return v > limit }
	default:
		return lp, chk.Err("exit condition %q is not recognized", h.Exit.String())
	}

	ind, x := locate(series, limit, beyond)
	lp.P = Interpolate(h.AxialLoad, ind, x)
	lp.M = Interpolate(h.MaxAbsMoment, ind, x)
	return
}

// locate finds the last index whose value is at/beyond the limit and the
// linear interpolation fraction x from the previous index, such that
// Interpolate(series, ind, x) == limit for a true crossing
func locate(series []float64, limit float64, beyond func(v float64) bool) (ind int, x float64) {
	ind = -1
	for i, v := range series {
		if beyond(v) {
			ind = i
		}
	}
	if ind < 0 { // nothing beyond: report the last record
		return len(series) - 1, 1
	}
	if ind == 0 {
		return 0, 1
	}
	den := series[ind] - series[ind-1]
	if den == 0 {
		return ind, 1
	}
	x = (limit - series[ind-1]) / den
	return
}

// Interpolate evaluates a series at the fractional position (ind−1) + x.
// With x = 1 it returns the recorded value at ind unchanged, so applying it
// to an already-located integral index is idempotent
func Interpolate(series []float64, ind int, x float64) float64 {
	if ind <= 0 {
		return series[0]
	}
	return series[ind-1] + x*(series[ind]-series[ind-1])
}

// maxOf returns the maximum of a series
func maxOf(series []float64) (m float64) {
	m = series[0]
	for _, v := range series {
		if v > m {
			m = v
		}
	}
	return
}

// val dereferences a nullable threshold with a default
func val(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
