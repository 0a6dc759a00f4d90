// Package viz renders computed trajectories in the terminal: per-variable
// time-series plots via asciigraph and styled headers via lipgloss.
package viz
