package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration operations.
var (
	// ErrInvalidArgument indicates a non-positive horizon or step size,
	// or a horizon shorter than one step.
	ErrInvalidArgument = errors.New("ode: invalid argument")

	// ErrDimensionMismatch indicates a right-hand-side output whose
	// length disagrees with the state length.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch")

	// ErrStepTooSmall indicates an adaptive timestep below minimum.
	ErrStepTooSmall = errors.New("ode: adaptive timestep below minimum")

	// ErrUnstable indicates the solution diverged (NaN or Inf detected).
	ErrUnstable = errors.New("ode: solution diverged")
)

// StepError wraps an error with the step index and time at which it was
// detected.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
