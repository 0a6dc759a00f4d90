package analysis

import (
	"math"

	"github.com/mhalvorsen/odelab/internal/integrators"
	"github.com/mhalvorsen/odelab/internal/ode"
)

// ConvergencePoint is one row of a step-halving study.
type ConvergencePoint struct {
	Dt       float64
	Endpoint float64
	Error    float64
}

// ConvergenceStudy integrates the same problem with repeatedly halved
// step sizes and records the endpoint error against a reference value.
// For the forward Euler method the error column should roughly halve
// from row to row.
func ConvergenceStudy(tStop, dt0 float64, x0 ode.State, f ode.Func, exact float64, levels int) ([]ConvergencePoint, error) {
	points := make([]ConvergencePoint, 0, levels)

	dt := dt0
	for i := 0; i < levels; i++ {
		_, xs, err := integrators.Integrate(tStop, dt, x0, f)
		if err != nil {
			return nil, err
		}
		end := xs[len(xs)-1][0]
		points = append(points, ConvergencePoint{
			Dt:       dt,
			Endpoint: end,
			Error:    math.Abs(end - exact),
		})
		dt /= 2
	}

	return points, nil
}

// EstimateOrder fits the observed convergence order from successive
// error ratios: order = log2(err[i]/err[i+1]) averaged over the study.
func EstimateOrder(points []ConvergencePoint) float64 {
	if len(points) < 2 {
		return 0
	}

	sum := 0.0
	n := 0
	for i := 0; i+1 < len(points); i++ {
		if points[i].Error <= 0 || points[i+1].Error <= 0 {
			continue
		}
		sum += math.Log2(points[i].Error / points[i+1].Error)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
