package sim

import (
	"math"

	"golang.org/x/exp/rand"
)

// model holds the precomputed per-step constants of the discretized GBM
// recurrence. All engines share it.
//
// Every engine accumulates the sum of log-returns per path and exponentiates
// once at the terminal step. Multiplying prices step by step would compound
// rounding through Steps multiplications per path; summing log-returns keeps
// the per-path error at a single exponentiation.
type model struct {
	start     float64
	logStart  float64
	partial   float64 // (Mu - Variance/2) * dt
	volSqrtDt float64 // Sigma * sqrt(dt)
	steps     int
}

func newModel(p Parameters) model {
	dt := 1.0 / float64(p.Steps)

	return model{
		start:     p.StartingPrice,
		logStart:  math.Log(p.StartingPrice),
		partial:   (p.Mu - 0.5*p.Variance) * dt,
		volSqrtDt: p.Sigma * math.Sqrt(dt),
		steps:     p.Steps,
	}
}

// terminalLog simulates one path and returns the terminal log-price after
// steps-1 standard-normal draws.
func (m model) terminalLog(rng *rand.Rand) float64 {
	logPrice := m.logStart

	for j := 1; j < m.steps; j++ {
		logPrice += m.partial + m.volSqrtDt*rng.NormFloat64()
	}

	return logPrice
}

// displayPath simulates one path and returns all steps prices. The per-step
// exponentiation is for presentation only; it never feeds an accumulator.
func (m model) displayPath(rng *rand.Rand) []float64 {
	path := make([]float64, m.steps)
	path[0] = m.start

	logPrice := m.logStart
	for j := 1; j < m.steps; j++ {
		logPrice += m.partial + m.volSqrtDt*rng.NormFloat64()
		path[j] = math.Exp(logPrice)
	}

	return path
}

// displayPaths draws count full trajectories on the calling goroutine. The
// parallel engines call this before dispatching workers so that display
// generation never contends with the accumulation phase.
func (m model) displayPaths(rng *rand.Rand, count, paths int) [][]float64 {
	if count > paths {
		count = paths
	}

	out := make([][]float64, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, m.displayPath(rng))
	}

	return out
}
