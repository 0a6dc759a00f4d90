package systems

import (
	"math"

	"github.com/mhalvorsen/odelab/internal/ode"
)

// Cosine is the scalar equation dx/dt = cos(t). Starting from x(0) = 1
// the exact solution is 1 + sin(t).
type Cosine struct{}

func NewCosine() *Cosine { return &Cosine{} }
func (c *Cosine) Dim() int { return 1 }
func (c *Cosine) Derive(t float64, _ ode.State) ode.State {
	return ode.State{math.Cos(t)}
}
func (c *Cosine) DefaultState() ode.State { return ode.State{1.0} }

// Exponential is dx/dt = k*x with exact solution x0*exp(k*t).
type Exponential struct{ K float64 }

func NewExponential() *Exponential { return &Exponential{K: 1.0} }
func (e *Exponential) Dim() int { return 1 }
func (e *Exponential) Derive(_ float64, x ode.State) ode.State {
	return ode.State{e.K * x[0]}
}
func (e *Exponential) DefaultState() ode.State { return ode.State{1.0} }

// Planar is the nonautonomous 2-D quadratic system
//
//	dX/dt = X - Y^2 + X*t
//	dY/dt = X^2 + X*Y - t
//
// with no closed-form solution.
type Planar struct{}

func NewPlanar() *Planar { return &Planar{} }
func (p *Planar) Dim() int { return 2 }
func (p *Planar) Derive(t float64, s ode.State) ode.State {
	x, y := s[0], s[1]
	return ode.State{x - y*y + x*t, x*x + x*y - t}
}
func (p *Planar) DefaultState() ode.State { return ode.State{0.5, 1.2} }

// Lorenz is the 3-D butterfly attractor.
type Lorenz struct{ Sigma, Rho, Beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz) Dim() int { return 3 }
func (l *Lorenz) Derive(_ float64, s ode.State) ode.State {
	return ode.State{
		l.Sigma * (s[1] - s[0]),
		s[0]*(l.Rho-s[2]) - s[1],
		s[0]*s[1] - l.Beta*s[2],
	}
}
func (l *Lorenz) DefaultState() ode.State { return ode.State{1.0, 1.0, 1.0} }

// Func adapts any system to the plain function form the integrators take.
func Func(sys ode.System) ode.Func {
	return sys.Derive
}
