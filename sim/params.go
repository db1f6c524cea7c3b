package sim

import (
	"errors"
	"math"
)

// Errors returned by parameter validation and engine dispatch.
var (
	ErrInvalidPrice       = errors.New("sim: starting price must be positive")
	ErrInvalidSteps       = errors.New("sim: steps must be positive")
	ErrInvalidPaths       = errors.New("sim: paths must be positive")
	ErrNegativeVariance   = errors.New("sim: variance cannot be negative")
	ErrNegativeVolatility = errors.New("sim: volatility cannot be negative")
	ErrNonFinite          = errors.New("sim: parameters must be finite")
	ErrUnknownEngine      = errors.New("sim: unknown engine")
)

// Parameters defines one simulation call. Drift, variance, and volatility
// are normalized to the full prediction horizon: the discretized recurrence
//
//	price[t+1] = price[t] * exp((Mu - Variance/2)*dt + Sigma*sqrt(dt)*Z)
//
// uses dt = 1/Steps so that the terminal distribution matches the horizon
// parameters regardless of step count.
type Parameters struct {
	StartingPrice float64 // initial asset price, must be > 0
	Mu            float64 // drift over the horizon
	Variance      float64 // variance over the horizon, must be >= 0
	Sigma         float64 // volatility (standard deviation) over the horizon, must be >= 0
	Steps         int     // discrete time increments per path, must be >= 1
	Paths         int     // independent paths to simulate, must be >= 1
}

// Validate checks that the Parameters are valid. It is called by Simulate
// before any simulation work begins, and is exposed so callers can
// pre-validate without running a simulation.
func (p Parameters) Validate() error {
	if !isFinite(p.StartingPrice) || !isFinite(p.Mu) ||
		!isFinite(p.Variance) || !isFinite(p.Sigma) {
		return ErrNonFinite
	}

	if p.StartingPrice <= 0 {
		return ErrInvalidPrice
	}

	if p.Steps <= 0 {
		return ErrInvalidSteps
	}

	if p.Paths <= 0 {
		return ErrInvalidPaths
	}

	if p.Variance < 0 {
		return ErrNegativeVariance
	}

	if p.Sigma < 0 {
		return ErrNegativeVolatility
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
