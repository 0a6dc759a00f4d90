// Package systems provides the right-hand-side catalog used by the CLI
// and the example runs.
//
// Each system implements the [ode.System] interface, defining the
// differential equations governing its evolution:
//
//   - [Cosine]: dx/dt = cos(t), integrates to sin(t) + c
//   - [Exponential]: dx/dt = k*x, the classic growth/decay equation
//   - [Planar]: a 2-D quadratic system with no closed-form solution
//   - [Lorenz]: butterfly attractor
//
// Systems carry their own parameters; the [Registry] maps CLI names to
// constructors and default initial conditions.
package systems
