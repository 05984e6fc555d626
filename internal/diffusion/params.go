package diffusion

import (
	"fmt"
	"math"
)

// dt is the discretization step of the random walk, in the same time units
// as T0. It is a fixed internal constant rather than a caller knob: the
// binned likelihood approximation downstream assumes a single step size.
const dt = 0.001

// Params holds the caller-supplied parameters for one simulation call.
// The decision interval is [0, A]; the walk starts at Z*A and is absorbed
// at either end.
type Params struct {
	N         int     // number of independent trials
	A         float64 // boundary separation
	V         float64 // mean drift rate
	SV        float64 // inter-trial standard deviation of drift rate
	T0        float64 // minimum non-decision time
	ST0       float64 // range of uniform non-decision time variability
	Z         float64 // relative starting point, fraction of A in (0, 1)
	SZ        float64 // range of uniform starting point variability
	S         float64 // diffusion coefficient, conventionally 1
	CritUpper float64 // delayed-response criterion after an upper-boundary hit
	CritLower float64 // delayed-response criterion after a lower-boundary hit
}

// Validate checks the parameter invariants. Degenerate spreads (SV, ST0 or
// SZ equal to zero) are valid configurations, not errors.
func (p Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("trial count N must be positive, got %d", p.N)
	}
	if p.A <= 0 {
		return fmt.Errorf("boundary separation a must be positive, got %g", p.A)
	}
	if p.Z <= 0 || p.Z >= 1 {
		return fmt.Errorf("relative starting point z must be in (0, 1), got %g", p.Z)
	}
	if p.SV < 0 {
		return fmt.Errorf("drift rate variability sv cannot be negative, got %g", p.SV)
	}
	if p.ST0 < 0 {
		return fmt.Errorf("non-decision time variability st0 cannot be negative, got %g", p.ST0)
	}
	if p.SZ < 0 {
		return fmt.Errorf("starting point variability sz cannot be negative, got %g", p.SZ)
	}
	if p.S < 0 {
		return fmt.Errorf("diffusion coefficient s cannot be negative, got %g", p.S)
	}
	return nil
}

// plan holds the absolute quantities derived from Params before any trial
// is run.
type plan struct {
	Params
	absStart float64 // starting point rescaled from fraction of A to [0, A]
	stepSD   float64 // per-step noise standard deviation, sqrt(S^2 * dt)
	maxSteps int     // diagnostic step ceiling, 0 means unbounded
}

// newPlan validates p and resolves the internal quantities of the walk.
func newPlan(p Params, maxSteps int) (*plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &plan{
		Params:   p,
		absStart: p.Z * p.A,
		stepSD:   math.Sqrt(p.S * p.S * dt),
		maxSteps: maxSteps,
	}, nil
}
