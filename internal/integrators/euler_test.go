package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/mhalvorsen/odelab/internal/ode"
)

func TestIntegrate_ZeroRHSConstant(t *testing.T) {
	x0 := ode.State{1.5, -2.0, 0.25}
	zero := func(t float64, x ode.State) ode.State {
		return make(ode.State, len(x))
	}

	ts, xs, err := Integrate(2.0, 0.01, x0, zero)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	if len(ts) != len(xs) {
		t.Fatalf("grid length %d != trajectory length %d", len(ts), len(xs))
	}

	for i, row := range xs {
		for j := range x0 {
			if row[j] != x0[j] {
				t.Fatalf("row %d: expected constant %v, got %v", i, x0, row)
			}
		}
	}
}

func TestIntegrate_SeedRowExact(t *testing.T) {
	x0 := ode.State{0.30000000000000004, -1e-300, 7.25}
	f := func(t float64, x ode.State) ode.State {
		return ode.State{x[1], x[2], -x[0]}
	}

	_, xs, err := Integrate(1.0, 0.1, x0, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	for j := range x0 {
		if xs[0][j] != x0[j] {
			t.Errorf("seed row component %d: got %v, want %v exactly", j, xs[0][j], x0[j])
		}
	}

	// seed row is a copy, not an alias
	xs[0][0] = 99
	if x0[0] == 99 {
		t.Error("trajectory row 0 aliases the caller's x0")
	}
}

func TestIntegrate_Shape(t *testing.T) {
	tests := []struct {
		name   string
		tStop  float64
		dt     float64
		neq    int
		wantNt int
	}{
		{"even division", 1.0, 0.1, 2, 10},
		{"uneven division", 1.0, 0.3, 1, 3},
		{"single point", 0.15, 0.1, 3, 1},
		{"scenario A", 6.0, 0.01, 1, 600},
		{"scenario B", 1.5, 0.01, 2, 150},
	}

	f := func(t float64, x ode.State) ode.State {
		return make(ode.State, len(x))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0 := make(ode.State, tt.neq)
			ts, xs, err := Integrate(tt.tStop, tt.dt, x0, f)
			if err != nil {
				t.Fatalf("Integrate failed: %v", err)
			}
			if len(ts) != tt.wantNt || len(xs) != tt.wantNt {
				t.Errorf("got %d grid points, %d rows, want %d", len(ts), len(xs), tt.wantNt)
			}
			for i, row := range xs {
				if len(row) != tt.neq {
					t.Fatalf("row %d has %d components, want %d", i, len(row), tt.neq)
				}
			}
		})
	}
}

// With f(t,x) = k*x the Euler update is exactly the recurrence
// x[i+1] = x[i] * (1 + k*dt), so every row must match it bit for bit.
func TestIntegrate_LinearRecurrenceExact(t *testing.T) {
	k := -0.7
	dt := 0.05
	f := func(t float64, x ode.State) ode.State {
		return ode.State{k * x[0]}
	}

	_, xs, err := Integrate(3.0, dt, ode.State{2.0}, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	want := 2.0
	for i, row := range xs {
		if row[0] != want {
			t.Fatalf("row %d: got %v, want %v exactly", i, row[0], want)
		}
		want = want + dt*(k*want)
	}
}

// dx/dt = x, x(0) = 1: endpoint error against e^tStop must shrink at
// first order, so halving dt roughly halves the error.
func TestIntegrate_FirstOrderConvergence(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return ode.State{x[0]}
	}

	tStop := 2.0
	exact := math.Exp(tStop)

	endpointErr := func(dt float64) float64 {
		_, xs, err := Integrate(tStop, dt, ode.State{1.0}, f)
		if err != nil {
			t.Fatalf("Integrate(dt=%g) failed: %v", dt, err)
		}
		return math.Abs(xs[len(xs)-1][0] - exact)
	}

	e1 := endpointErr(0.01)
	e2 := endpointErr(0.005)
	e3 := endpointErr(0.0025)

	r12 := e1 / e2
	r23 := e2 / e3

	for _, r := range []float64{r12, r23} {
		if r < 1.7 || r > 2.3 {
			t.Errorf("error ratio %f not consistent with first-order convergence", r)
		}
	}
}

func TestIntegrate_ScenarioCosine(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return ode.State{math.Cos(t)}
	}

	ts, xs, err := Integrate(6.0, 0.01, ode.State{1.0}, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	if len(xs) != 600 {
		t.Fatalf("expected 600 rows, got %d", len(xs))
	}
	if ts[0] != 0 || ts[599] != 6.0 {
		t.Errorf("grid endpoints wrong: [%v, %v]", ts[0], ts[599])
	}
	if xs[0][0] != 1.0 {
		t.Errorf("x[0] = %v, want 1.0", xs[0][0])
	}
	// x[1] = 1.0 + 0.01*cos(0) = 1.01
	if math.Abs(xs[1][0]-1.01) > 1e-15 {
		t.Errorf("x[1] = %v, want 1.01", xs[1][0])
	}
}

func TestIntegrate_ScenarioPlanar(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return ode.State{
			x[0] - x[1]*x[1] + x[0]*t,
			x[0]*x[0] + x[0]*x[1] - t,
		}
	}

	_, xs, err := Integrate(1.5, 0.01, ode.State{0.5, 1.2}, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	if len(xs) != 150 {
		t.Fatalf("expected 150 rows, got %d", len(xs))
	}
	if xs[0][0] != 0.5 || xs[0][1] != 1.2 {
		t.Errorf("row 0 = %v, want [0.5 1.2]", xs[0])
	}

	// row 1 = [0.5 + 0.01*(0.5 - 1.44), 1.2 + 0.01*(0.25 + 0.6)]
	if math.Abs(xs[1][0]-0.4906) > 1e-12 {
		t.Errorf("row 1 x = %v, want 0.4906", xs[1][0])
	}
	if math.Abs(xs[1][1]-1.2085) > 1e-12 {
		t.Errorf("row 1 y = %v, want 1.2085", xs[1][1])
	}
}

func TestIntegrate_InvalidArguments(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return make(ode.State, len(x))
	}

	tests := []struct {
		name  string
		tStop float64
		dt    float64
	}{
		{"zero tStop", 0, 0.1},
		{"negative tStop", -1.0, 0.1},
		{"zero dt", 1.0, 0},
		{"negative dt", 1.0, -0.01},
		{"dt exceeds horizon", 0.05, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, xs, err := Integrate(tt.tStop, tt.dt, ode.State{1.0}, f)
			if !errors.Is(err, ode.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if ts != nil || xs != nil {
				t.Error("failed call must not return a partial trajectory")
			}
		})
	}
}

func TestIntegrate_SinglePointGrid(t *testing.T) {
	calls := 0
	f := func(t float64, x ode.State) ode.State {
		calls++
		return make(ode.State, len(x))
	}

	// floor(0.15/0.1) == 1: only the seed row, zero rhs evaluations
	ts, xs, err := Integrate(0.15, 0.1, ode.State{3.0}, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if len(ts) != 1 || len(xs) != 1 {
		t.Fatalf("expected single-point trajectory, got %d points", len(ts))
	}
	if ts[0] != 0 {
		t.Errorf("single grid point = %v, want 0", ts[0])
	}
	if xs[0][0] != 3.0 {
		t.Errorf("single row = %v, want [3]", xs[0])
	}
	if calls != 0 {
		t.Errorf("rhs evaluated %d times, want 0", calls)
	}
}

// Dimension-zero initial conditions are accepted: the trajectory has the
// right number of rows, each empty.
func TestIntegrate_EmptyState(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return ode.State{}
	}

	ts, xs, err := Integrate(1.0, 0.1, ode.State{}, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if len(ts) != 10 || len(xs) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(xs))
	}
	for i, row := range xs {
		if len(row) != 0 {
			t.Fatalf("row %d not empty: %v", i, row)
		}
	}
}

func TestIntegrate_DimensionMismatch(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return ode.State{x[0], x[1], 0}
	}

	ts, xs, err := Integrate(1.0, 0.1, ode.State{1, 2}, f)
	if !errors.Is(err, ode.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if ts != nil || xs != nil {
		t.Error("failed call must not return a partial trajectory")
	}

	var stepErr *ode.StepError
	if !errors.As(err, &stepErr) {
		t.Fatal("expected a StepError wrapper")
	}
	if stepErr.Step != 0 {
		t.Errorf("mismatch detected at step %d, want 0 (first invocation)", stepErr.Step)
	}
}

func TestIntegrate_GridConvention(t *testing.T) {
	f := func(t float64, x ode.State) ode.State {
		return make(ode.State, len(x))
	}

	// floor(1.0/0.3) == 3: grid spacing is 0.5, not dt
	ts, _, err := Integrate(1.0, 0.3, ode.State{0}, f)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	want := []float64{0, 0.5, 1.0}
	for i := range want {
		if math.Abs(ts[i]-want[i]) > 1e-15 {
			t.Errorf("grid[%d] = %v, want %v", i, ts[i], want[i])
		}
	}
}

func TestEulerStep(t *testing.T) {
	e := NewEuler()
	f := func(t float64, x ode.State) ode.State {
		return ode.State{x[1], -x[0]}
	}

	x := e.Step(f, ode.State{1, 0}, 0, 0.1)
	if x[0] != 1.0 || x[1] != -0.1 {
		t.Errorf("Step = %v, want [1 -0.1]", x)
	}
}
