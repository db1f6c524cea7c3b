package sim

import "time"

// Result holds the outcome of one simulation call. It is owned exclusively
// by the caller; engines retain no references after returning.
type Result struct {
	// DisplayPaths contains min(configured display count, Paths) full
	// per-step trajectories for inspection. Each inner slice has exactly
	// Steps elements and starts at StartingPrice. The per-step values are
	// exponentiated for presentation only and never feed the accumulation.
	DisplayPaths [][]float64

	// AverageTerminalPrice is the compensated mean of all terminal prices.
	AverageTerminalPrice float64

	// Engine is the engine that actually ran (never EngineAuto).
	Engine Engine

	// Elapsed is the wall time of the simulation phase.
	Elapsed time.Duration
}
