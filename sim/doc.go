// Package sim simulates future asset price trajectories under Geometric
// Brownian Motion via Monte Carlo sampling.
//
// Three engines compute the average terminal price over millions to billions
// of independent paths:
//
//   - Scalar: single-threaded reference implementation
//   - MultiThreaded: paths partitioned across worker goroutines with
//     cache-line padded per-worker accumulators
//   - SIMD: the same partitioning with a four-lane vectorizable kernel per
//     worker, falling back to the scalar recurrence when the CPU lacks
//     AVX2+FMA
//
// All engines accumulate log-returns per path and exponentiate exactly once
// at the terminal step, and combine terminal prices through compensated
// (Kahan) summation, so the average stays accurate under massive path counts.
//
// # Usage
//
// Run a simulation with automatic engine selection:
//
//	res, err := sim.Simulate(sim.Parameters{
//	    StartingPrice: 100,
//	    Mu:            0.08,
//	    Variance:      0.04,
//	    Sigma:         0.2,
//	    Steps:         252,
//	    Paths:         2_000_000,
//	})
//
// Force a specific engine, thread count, or seed:
//
//	res, err := sim.Simulate(params,
//	    sim.WithEngine(sim.EngineMultiThreaded),
//	    sim.WithThreads(4),
//	    sim.WithSeed(42),
//	)
//
// The drift, variance, and volatility parameters are normalized to the
// prediction horizon (see package estimate for deriving them from a
// historical price series).
package sim
