// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// EpsCU is the extreme concrete compression strain assumed at capacity
const EpsCU = -0.003

// Beta1 returns the equivalent stress block depth factor per ACI 318-19
// Table 22.2.2.4.3, except that β1 is taken as 0.85 for very low fc instead
// of being undefined. fc is in ksi for "us" units and MPa for "si" units.
func Beta1(fc float64, units string) (β1 float64, err error) {
	switch strings.ToLower(units) {
	case "us":
		switch {
		case fc <= 4:
			β1 = 0.85
		case fc <= 8:
			β1 = 0.85 - 0.05*(fc-4)
		default:
			β1 = 0.65
		}
	case "si":
		switch {
		case fc <= 28:
			β1 = 0.85
		case fc <= 55:
			β1 = 0.85 - 0.05*(fc-28)/7
		default:
			β1 = 0.65
		}
	default:
		return 0, chk.Err("unit system %q is not supported", units)
	}
	return
}

// StressBlock implements the idealised rectangular stress block for concrete:
// zero stress until the strain reaches the crush-onset threshold
// ecr = εcu (1 − β1), constant −0.85 fc beyond it, and no tension
type StressBlock struct {
	Fc    float64 // concrete compressive strength (ksi or MPa, per Units)
	Units string  // unit system: "us" or "si"
	β1    float64 // derived: stress block factor
	ecr   float64 // derived: strain at which the stress block initiates
}

// add model to factory
func init() {
	allocators["concrete"] = func() Model { return &StressBlock{Units: "us"} }
}

// NewStressBlock returns an initialised rectangular stress block model
func NewStressBlock(fc float64, units string) (o *StressBlock, err error) {
	o = &StressBlock{Fc: fc, Units: units}
	err = o.derive()
	return
}

// Init initialises model. The unit system is "us" unless the "si" flag is on.
func (o *StressBlock) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "fc":
			o.Fc = p.V
		case "si":
			if p.V > 0 {
				o.Units = "si"
			}
		default:
			return chk.Err("concrete: parameter named %q is incorrect", p.N)
		}
	}
	return o.derive()
}

// derive computes β1 and the crush-onset strain
func (o *StressBlock) derive() (err error) {
	o.β1, err = Beta1(o.Fc, o.Units)
	if err != nil {
		return
	}
	o.ecr = EpsCU * (1 - o.β1)
	return
}

// GetPrms gets (an example) of parameters
func (o StressBlock) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "fc", V: 4},
	}
}

// Beta1 returns the stress block depth factor
func (o StressBlock) Beta1() float64 { return o.β1 }

// CrushOnset returns the strain at which the stress block initiates
func (o StressBlock) CrushOnset() float64 { return o.ecr }

// Stress returns the stress for given strain
func (o StressBlock) Stress(ε float64) float64 {
	if ε <= o.ecr {
		return -0.85 * o.Fc
	}
	return 0
}

// Tangent returns dσ/dε for given strain. The stress block is piecewise
// constant; the tangent is zero everywhere
func (o StressBlock) Tangent(ε float64) float64 { return 0 }
