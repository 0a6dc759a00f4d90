package integrators

import (
	"fmt"

	"github.com/mhalvorsen/odelab/internal/ode"
)

// Integrate advances dX/dt = f(t, X) from X(0) = x0 with the forward
// Euler method and returns the time grid together with the full
// trajectory, row i holding the state at ts[i].
//
// The grid has floor(tStop/dt) points evenly spaced over [0, tStop], so
// its spacing is tStop/(Nt-1) rather than dt. The state advance still
// uses dt, and f is evaluated at the grid times; the two conventions
// diverge when tStop is not a multiple of dt. This grid-based convention
// is kept on purpose.
//
// The first trajectory row is x0 itself, untouched by any step. Each
// following row depends only on its predecessor; global error is O(dt).
//
// Integrate fails with ode.ErrInvalidArgument when tStop or dt is not
// positive or when dt > tStop, and with ode.ErrDimensionMismatch when f
// returns a vector whose length differs from len(x0). No partial
// trajectory is returned on failure.
func Integrate(tStop, dt float64, x0 ode.State, f ode.Func) ([]float64, []ode.State, error) {
	if tStop <= 0 {
		return nil, nil, fmt.Errorf("%w: tStop must be positive, got %g", ode.ErrInvalidArgument, tStop)
	}
	if dt <= 0 {
		return nil, nil, fmt.Errorf("%w: dt must be positive, got %g", ode.ErrInvalidArgument, dt)
	}

	nt := int(tStop / dt)
	if nt < 1 {
		return nil, nil, fmt.Errorf("%w: dt %g exceeds horizon %g", ode.ErrInvalidArgument, dt, tStop)
	}

	neq := len(x0)
	ts := ode.Linspace(0, tStop, nt)

	xs := make([]ode.State, nt)
	xs[0] = x0.Clone()

	for i := 0; i < nt-1; i++ {
		dx := f(ts[i], xs[i])
		if len(dx) != neq {
			return nil, nil, &ode.StepError{
				Step: i,
				Time: ts[i],
				Wrapped: fmt.Errorf("%w: rhs returned %d values for %d equations",
					ode.ErrDimensionMismatch, len(dx), neq),
			}
		}
		row := make(ode.State, neq)
		for j := 0; j < neq; j++ {
			row[j] = xs[i][j] + dt*dx[j]
		}
		xs[i+1] = row
	}

	return ts, xs, nil
}

// Euler is the stepper form of the forward Euler method, for callers
// that drive the integration loop themselves (live views, comparisons).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f ode.Func, x ode.State, t, dt float64) ode.State {
	dx := f(t, x)
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
