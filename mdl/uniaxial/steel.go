// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// ElastPlastic implements an elastic perfectly-plastic model for reinforcing
// steel, symmetric in tension and compression
type ElastPlastic struct {
	Fy float64 // yield stress
	Es float64 // Young's modulus
	εy float64 // derived: yield strain = Fy / Es
}

// add model to factory
func init() {
	allocators["steel"] = func() Model { return new(ElastPlastic) }
}

// NewElastPlastic returns an initialised elastic perfectly-plastic model
func NewElastPlastic(fy, es float64) (o *ElastPlastic) {
	o = new(ElastPlastic)
	o.Fy, o.Es = fy, es
	o.εy = fy / es
	return
}

// Init initialises model
func (o *ElastPlastic) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Fy":
			o.Fy = p.V
		case "Es":
			o.Es = p.V
		default:
			return chk.Err("steel: parameter named %q is incorrect", p.N)
		}
	}
	if o.Fy <= 0 || o.Es <= 0 {
		return chk.Err("steel: Fy and Es must be positive. Fy=%g Es=%g is incorrect", o.Fy, o.Es)
	}
	o.εy = o.Fy / o.Es
	return
}

// GetPrms gets (an example) of parameters
func (o ElastPlastic) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Fy", V: 60},
		&fun.Prm{N: "Es", V: 29000},
	}
}

// YieldStrain returns the yield strain εy = Fy / Es
func (o ElastPlastic) YieldStrain() float64 { return o.εy }

// Stress returns the stress for given strain
func (o ElastPlastic) Stress(ε float64) float64 {
	if ε <= -o.εy {
		return -o.Fy
	}
	if ε <= o.εy {
		return ε * o.Es
	}
	return o.Fy
}

// Tangent returns dσ/dε for given strain
func (o ElastPlastic) Tangent(ε float64) float64 {
	if ε <= -o.εy || ε >= o.εy {
		return 0
	}
	return o.Es
}
