// Package ode provides the core vocabulary for numerical integration of
// ordinary differential equations dX/dt = f(t, X):
//
//   - [State]: vector of dependent variables at one instant
//   - [Func]: right-hand-side function f(t, X)
//   - [Linspace]: evenly spaced time grids
//
// A State is a plain []float64; callers own the slices they pass in and
// integrators never mutate them, returning freshly allocated rows instead.
//
// # Example
//
//	f := func(t float64, x ode.State) ode.State {
//		return ode.State{math.Cos(t)}
//	}
//	ts, xs, err := integrators.Integrate(6.0, 0.01, ode.State{1.0}, f)
package ode
