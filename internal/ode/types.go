package ode

import "math"

// State is a fixed-length vector of dependent variables at one instant.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Func is a right-hand-side function mapping (time, state) to the
// derivative vector. Implementations must be pure: the integrators treat
// them as opaque oracles evaluated exactly once per grid step, and the
// returned slice must have the same length as the input state.
type Func func(t float64, x State) State

// System pairs a right-hand-side with its dimensionality, for named
// systems that carry parameters.
type System interface {
	Dim() int
	Derive(t float64, x State) State
}
