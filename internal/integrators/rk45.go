package integrators

import (
	"fmt"
	"math"

	"github.com/mhalvorsen/odelab/internal/ode"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

const (
	minStep  = 1e-12
	maxSteps = 1_000_000
)

// RK45 is an adaptive Dormand-Prince solver. It is the dense-output
// collaborator for callers that want an accurate reference solution to
// resample on an arbitrary grid; the fixed-step Euler path never uses it.
type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (r *RK45) Name() string { return "rk45" }

// step performs one trial step of size dt. It returns the fifth-order
// estimate, the derivative at the new point (FSAL), and the scaled error
// against the embedded fourth-order solution.
func (r *RK45) step(f ode.Func, x ode.State, k1 ode.State, t, dt float64) (ode.State, ode.State, float64) {
	n := len(x)

	x2 := make(ode.State, n)
	for i := 0; i < n; i++ {
		x2[i] = x[i] + dt*b21*k1[i]
	}
	k2 := f(t+a2*dt, x2)

	x3 := make(ode.State, n)
	for i := 0; i < n; i++ {
		x3[i] = x[i] + dt*(b31*k1[i]+b32*k2[i])
	}
	k3 := f(t+a3*dt, x3)

	x4 := make(ode.State, n)
	for i := 0; i < n; i++ {
		x4[i] = x[i] + dt*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := f(t+a4*dt, x4)

	x5 := make(ode.State, n)
	for i := 0; i < n; i++ {
		x5[i] = x[i] + dt*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := f(t+a5*dt, x5)

	x6 := make(ode.State, n)
	for i := 0; i < n; i++ {
		x6[i] = x[i] + dt*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := f(t+dt, x6)

	xNew := make(ode.State, n)
	for i := 0; i < n; i++ {
		xNew[i] = x[i] + dt*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}
	k7 := f(t+dt, xNew)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		scale := math.Abs(x[i]) + math.Abs(dt*k1[i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	return xNew, k7, errMax
}

// Solve integrates dX/dt = f(t, X) over [t0, t1] with adaptive step
// control, accepting steps whose scaled error stays below tol. The
// returned Solution records every accepted step and interpolates between
// them, so callers can resample on any grid within [t0, t1].
func (r *RK45) Solve(f ode.Func, x0 ode.State, t0, t1, tol float64) (*Solution, error) {
	if t1 <= t0 {
		return nil, fmt.Errorf("%w: t1 %g must exceed t0 %g", ode.ErrInvalidArgument, t1, t0)
	}
	if tol <= 0 {
		return nil, fmt.Errorf("%w: tolerance must be positive, got %g", ode.ErrInvalidArgument, tol)
	}

	n := len(x0)
	x := x0.Clone()
	t := t0
	dt := (t1 - t0) / 100.0

	k1 := f(t, x)
	if len(k1) != n {
		return nil, fmt.Errorf("%w: rhs returned %d values for %d equations",
			ode.ErrDimensionMismatch, len(k1), n)
	}

	sol := &Solution{
		Times:  []float64{t0},
		States: []ode.State{x.Clone()},
		derivs: []ode.State{k1.Clone()},
	}

	for step := 0; t < t1; step++ {
		if step >= maxSteps {
			return nil, &ode.StepError{Step: step, Time: t, Wrapped: ode.ErrStepTooSmall}
		}
		if t+dt > t1 {
			dt = t1 - t
		}

		xNew, k7, errMax := r.step(f, x, k1, t, dt)
		errRatio := errMax / tol

		if errRatio > 1 {
			scale := math.Max(r.minScale, r.safety*math.Pow(errRatio, -0.25))
			dt *= scale
			if dt < minStep {
				return nil, &ode.StepError{Step: step, Time: t, Wrapped: ode.ErrStepTooSmall}
			}
			continue
		}

		if !xNew.IsValid() {
			return nil, &ode.StepError{Step: step, Time: t, Wrapped: ode.ErrUnstable}
		}

		t += dt
		x = xNew
		k1 = k7

		sol.Times = append(sol.Times, t)
		sol.States = append(sol.States, x.Clone())
		sol.derivs = append(sol.derivs, k7.Clone())

		if errRatio > 0 {
			dt *= math.Min(r.maxScale, r.safety*math.Pow(errRatio, -0.2))
		} else {
			dt *= r.maxScale
		}
	}

	return sol, nil
}
