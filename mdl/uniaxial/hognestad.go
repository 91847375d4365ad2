// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Hognestad implements the parabola + linear-softening concrete model.
// The descending branch gives the tangent system a genuine negative slope,
// which is what the continuation controller needs to detect limit points
// on the finite-element path. Compression is negative; no tension capacity.
type Hognestad struct {
	Fc  float64 // compressive strength (positive)
	ε0  float64 // strain at peak stress (negative)
	εu  float64 // spalling strain (negative, beyond ε0)
	res float64 // residual stress ratio beyond εu
}

// add model to factory
func init() {
	allocators["concrete-parabola"] = func() Model { return new(Hognestad) }
}

// NewHognestad returns an initialised model with the usual defaults
// ε0 = −0.002 and εu = −0.0038
func NewHognestad(fc float64) (o *Hognestad) {
	o = new(Hognestad)
	o.Fc, o.ε0, o.εu, o.res = fc, -0.002, -0.0038, 0.85
	return
}

// Init initialises model
func (o *Hognestad) Init(prms fun.Prms) (err error) {
	o.ε0, o.εu, o.res = -0.002, -0.0038, 0.85
	for _, p := range prms {
		switch p.N {
		case "fc":
			o.Fc = p.V
		case "eps0":
			o.ε0 = p.V
		case "epsu":
			o.εu = p.V
		default:
			return chk.Err("concrete-parabola: parameter named %q is incorrect", p.N)
		}
	}
	if o.Fc <= 0 || o.ε0 >= 0 || o.εu >= o.ε0 {
		return chk.Err("concrete-parabola: parameters fc=%g eps0=%g epsu=%g are incorrect", o.Fc, o.ε0, o.εu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Hognestad) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "fc", V: 4},
		&fun.Prm{N: "eps0", V: -0.002},
		&fun.Prm{N: "epsu", V: -0.0038},
	}
}

// Stress returns the stress for given strain
func (o Hognestad) Stress(ε float64) float64 {
	if ε >= 0 {
		return 0
	}
	if ε >= o.ε0 { // ascending parabola
		η := ε / o.ε0
		return -o.Fc * (2*η - η*η)
	}
	if ε >= o.εu { // linear softening
		return -o.Fc * (1 - (1-o.res)*(ε-o.ε0)/(o.εu-o.ε0))
	}
	return -o.res * o.Fc
}

// Tangent returns dσ/dε for given strain
func (o Hognestad) Tangent(ε float64) float64 {
	if ε >= 0 || ε < o.εu {
		return 0
	}
	if ε >= o.ε0 {
		return -o.Fc * (2 - 2*ε/o.ε0) / o.ε0
	}
	return o.Fc * (1 - o.res) / (o.εu - o.ε0)
}
