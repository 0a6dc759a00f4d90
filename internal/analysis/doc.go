// Package analysis provides post-hoc analysis of computed trajectories:
// convergence-order estimation for the fixed-step integrator and ASCII
// phase portraits of 2-D projections.
package analysis
