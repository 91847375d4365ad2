// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uniaxial implements uniaxial stress-strain models for section fibers
package uniaxial

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for uniaxial stress-strain models.
// Stress and Tangent are pure functions of the total strain; models in this
// database hold no internal state and may be shared between engines.
type Model interface {
	Init(prms fun.Prms) error  // initialises model
	Stress(ε float64) float64  // returns stress σ for given strain ε
	Tangent(ε float64) float64 // returns dσ/dε for given strain ε
	GetPrms() fun.Prms         // gets (an example) of parameters
}

// New returns new uniaxial model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'uniaxial' database", name)
	}
	return allocator(), nil
}

// allocators holds all available uniaxial models; modelname => allocator
var allocators = map[string]func() Model{}
