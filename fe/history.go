// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fe implements the adaptive continuation controller that drives an
// equilibrium solver along a load path until a capacity limit point, and the
// locator that interpolates the limit point from the recorded history
package fe

// ExitCondition labels why a continuation path terminated. A path starts
// Running and the condition is set exactly once
type ExitCondition int

// exit conditions, in monitor evaluation order
const (
	Running ExitCondition = iota
	AnalysisFailed
	LoadDropLimit
	EigenvalueLimit
	ConcreteStrainLimit
	SteelStrainLimit
)

// String returns the exit message
func (o ExitCondition) String() string {
	switch o {
	case Running:
		return "Running"
	case AnalysisFailed:
		return "Analysis Failed"
	case LoadDropLimit:
		return "Load Drop Limit Reached"
	case EigenvalueLimit:
		return "Eigenvalue Limit Reached"
	case ConcreteStrainLimit:
		return "Extreme Compressive Concrete Fiber Strain Limit Reached"
	case SteelStrainLimit:
		return "Extreme Steel Fiber Strain Limit Reached"
	}
	return "Unknown"
}

// History records the response series of one continuation path, one entry per
// converged increment (plus the initial record). Append-only; owned by a
// single controller invocation
type History struct {
	AxialLoad    []float64 // applied axial load
	MaxAbsMoment []float64 // maximum absolute moment
	LowestEig    []float64 // lowest eigenvalue of the tangent system
	ConcStrain   []float64 // extreme concrete compressive strain
	SteelStrain  []float64 // extreme steel tensile strain
	Exit         ExitCondition
}

// append adds one record
func (o *History) append(p, m, eig, εc, εs float64) {
	o.AxialLoad = append(o.AxialLoad, p)
	o.MaxAbsMoment = append(o.MaxAbsMoment, m)
	o.LowestEig = append(o.LowestEig, eig)
	o.ConcStrain = append(o.ConcStrain, εc)
	o.SteelStrain = append(o.SteelStrain, εs)
}

// Len returns the number of records
func (o *History) Len() int { return len(o.AxialLoad) }
