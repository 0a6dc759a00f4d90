package experiment

import (
	"fmt"
	"sort"

	"github.com/mhalvorsen/odelab/internal/ode"
	"github.com/mhalvorsen/odelab/internal/systems"
)

type Registry struct {
	systems map[string]func() ode.System
}

func NewRegistry() *Registry {
	r := &Registry{
		systems: make(map[string]func() ode.System),
	}

	r.systems["cosine"] = func() ode.System { return systems.NewCosine() }
	r.systems["exponential"] = func() ode.System { return systems.NewExponential() }
	r.systems["planar"] = func() ode.System { return systems.NewPlanar() }
	r.systems["lorenz"] = func() ode.System { return systems.NewLorenz() }

	return r
}

func (r *Registry) GetSystem(name string) (ode.System, error) {
	fn, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListSystems() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultState returns the catalog initial condition for a named system.
func (r *Registry) DefaultState(name string) (ode.State, error) {
	sys, err := r.GetSystem(name)
	if err != nil {
		return nil, err
	}
	type defaulter interface {
		DefaultState() ode.State
	}
	if d, ok := sys.(defaulter); ok {
		return d.DefaultState(), nil
	}
	return make(ode.State, sys.Dim()), nil
}
