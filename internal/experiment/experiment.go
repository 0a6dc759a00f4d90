package experiment

import (
	"fmt"

	"github.com/mhalvorsen/odelab/internal/integrators"
	"github.com/mhalvorsen/odelab/internal/ode"
)

// Config describes a single integration run.
type Config struct {
	System    string
	Solver    string // "euler" or "rk45"
	InitState []float64
	TStop     float64
	Dt        float64
	Tolerance float64 // rk45 only
}

// Result is the materialized trajectory of one run.
type Result struct {
	Times  []float64
	States []ode.State
	Solver string

	// AcceptedSteps is the internal step count of the adaptive solver;
	// for the fixed-step path it equals len(Times).
	AcceptedSteps int
}

// Run executes the configured integration. The Euler path returns the
// trajectory on its own grid; the rk45 path solves adaptively and
// resamples the dense output on the equivalent uniform grid, the way the
// fixed-step trajectory would be laid out.
func Run(cfg Config, sys ode.System) (*Result, error) {
	x0 := make(ode.State, len(cfg.InitState))
	copy(x0, cfg.InitState)

	if len(x0) != sys.Dim() {
		return nil, fmt.Errorf("%w: %d initial values for a %d-dimensional system",
			ode.ErrDimensionMismatch, len(x0), sys.Dim())
	}

	f := sys.Derive

	switch cfg.Solver {
	case "", "euler":
		ts, xs, err := integrators.Integrate(cfg.TStop, cfg.Dt, x0, f)
		if err != nil {
			return nil, err
		}
		return &Result{Times: ts, States: xs, Solver: "euler", AcceptedSteps: len(ts)}, nil

	case "rk45":
		tol := cfg.Tolerance
		if tol <= 0 {
			tol = 1e-6
		}
		sol, err := integrators.NewRK45().Solve(f, x0, 0, cfg.TStop, tol)
		if err != nil {
			return nil, err
		}

		nt := int(cfg.TStop / cfg.Dt)
		if nt < 1 {
			return nil, fmt.Errorf("%w: dt %g exceeds horizon %g", ode.ErrInvalidArgument, cfg.Dt, cfg.TStop)
		}
		ts := ode.Linspace(0, cfg.TStop, nt)
		xs, err := sol.Sample(ts)
		if err != nil {
			return nil, err
		}
		return &Result{Times: ts, States: xs, Solver: "rk45", AcceptedSteps: len(sol.Times)}, nil

	default:
		return nil, fmt.Errorf("unknown solver: %s", cfg.Solver)
	}
}
