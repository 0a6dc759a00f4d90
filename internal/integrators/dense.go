package integrators

import (
	"fmt"
	"sort"

	"github.com/mhalvorsen/odelab/internal/ode"
)

// Solution is the dense output of an adaptive solve: the accepted step
// points plus enough derivative information to interpolate between them.
type Solution struct {
	Times  []float64
	States []ode.State

	// derivative at each accepted point, for Hermite interpolation
	derivs []ode.State
}

// At evaluates the solution at time t by cubic Hermite interpolation
// between the bracketing accepted steps. Queries outside the solved
// interval fail with ode.ErrInvalidArgument.
func (s *Solution) At(t float64) (ode.State, error) {
	m := len(s.Times)
	if m == 0 {
		return nil, fmt.Errorf("%w: empty solution", ode.ErrInvalidArgument)
	}
	if t < s.Times[0] || t > s.Times[m-1] {
		return nil, fmt.Errorf("%w: t=%g outside solved interval [%g, %g]",
			ode.ErrInvalidArgument, t, s.Times[0], s.Times[m-1])
	}

	// index of the first accepted time > t; the segment is [hi-1, hi]
	hi := sort.SearchFloat64s(s.Times, t)
	if hi < m && s.Times[hi] == t {
		return s.States[hi].Clone(), nil
	}
	lo := hi - 1

	h := s.Times[hi] - s.Times[lo]
	u := (t - s.Times[lo]) / h

	// cubic Hermite basis
	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	x0, x1 := s.States[lo], s.States[hi]
	d0, d1 := s.derivs[lo], s.derivs[hi]

	out := make(ode.State, len(x0))
	for i := range out {
		out[i] = h00*x0[i] + h10*h*d0[i] + h01*x1[i] + h11*h*d1[i]
	}
	return out, nil
}

// Sample evaluates the solution on a whole grid of query times.
func (s *Solution) Sample(ts []float64) ([]ode.State, error) {
	out := make([]ode.State, len(ts))
	for i, t := range ts {
		x, err := s.At(t)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// End returns the final accepted time and state.
func (s *Solution) End() (float64, ode.State) {
	m := len(s.Times)
	if m == 0 {
		return 0, nil
	}
	return s.Times[m-1], s.States[m-1]
}
