package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/mhalvorsen/odelab/internal/ode"
)

const (
	plotHeight = 10
	plotWidth  = 80
	maxPlots   = 6
)

// variable captions per system, falling back to x0, x1, ...
var captions = map[string][]string{
	"cosine":      {"x (integral of cos)"},
	"exponential": {"x (exponential growth)"},
	"planar":      {"X", "Y"},
	"lorenz":      {"x", "y", "z"},
}

// Caption names state variable varIdx of a system.
func Caption(system string, varIdx int) string {
	if names, ok := captions[system]; ok && varIdx < len(names) {
		return names[varIdx]
	}
	return fmt.Sprintf("x%d vs time", varIdx)
}

// Trajectory renders one asciigraph plot per state variable, capped at
// maxPlots variables.
func Trajectory(system string, states []ode.State) string {
	if len(states) == 0 {
		return ""
	}

	numVars := len(states[0])
	if numVars > maxPlots {
		numVars = maxPlots
	}

	var b strings.Builder
	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(Caption(system, varIdx)),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	return b.String()
}
