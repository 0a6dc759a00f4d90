package config

import "sort"

var Presets = map[string]map[string]*Config{
	"cosine": {
		"textbook": {
			System: "cosine", Solver: "euler", Dt: 0.01, TStop: 6.0,
			InitState: []float64{1.0},
		},
		"coarse": {
			System: "cosine", Solver: "euler", Dt: 0.1, TStop: 6.0,
			InitState: []float64{1.0},
		},
	},
	"exponential": {
		"growth": {
			System: "exponential", Solver: "euler", Dt: 0.01, TStop: 2.0,
			InitState: []float64{1.0},
		},
	},
	"planar": {
		"textbook": {
			System: "planar", Solver: "euler", Dt: 0.01, TStop: 1.5,
			InitState: []float64{0.5, 1.2},
		},
	},
	"lorenz": {
		"butterfly": {
			System: "lorenz", Solver: "rk45", Dt: 0.01, TStop: 40.0,
			Tolerance: 1e-8, InitState: []float64{1.0, 1.0, 1.0},
		},
		"short": {
			System: "lorenz", Solver: "euler", Dt: 0.001, TStop: 10.0,
			InitState: []float64{1.0, 1.0, 1.0},
		},
	},
}

func GetPreset(system, name string) *Config {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(system string) []string {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
