package sim

import (
	"math"

	"github.com/cwbudde/algo-gbm/internal/kahan"
)

// simulateScalar is the single-threaded reference engine. It simulates one
// path at a time, recording the full trajectory for the first display paths
// while feeding every terminal price into a compensated sum.
func simulateScalar(p Parameters, cfg Config) *Result {
	m := newModel(p)
	rng := newRand(baseSeed(cfg))

	displayCount := cfg.DisplayPaths
	if displayCount > p.Paths {
		displayCount = p.Paths
	}

	display := make([][]float64, 0, displayCount)

	var acc kahan.Sum

	for i := 0; i < p.Paths; i++ {
		if i < displayCount {
			path := m.displayPath(rng)
			display = append(display, path)
			acc.Add(path[len(path)-1])

			continue
		}

		acc.Add(math.Exp(m.terminalLog(rng)))
	}

	return &Result{
		DisplayPaths:         display,
		AverageTerminalPrice: acc.Value() / float64(p.Paths),
	}
}
