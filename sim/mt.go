package sim

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-gbm/internal/kahan"
)

// partition splits paths as evenly as possible across workers: the first
// paths mod workers slots get one extra path, so the split never drops a
// path and never assigns a zero count while paths >= workers.
func partition(paths, workers int) []int {
	counts := make([]int, workers)
	base := paths / workers
	extra := paths % workers

	for i := range counts {
		counts[i] = base
		if i < extra {
			counts[i]++
		}
	}

	return counts
}

// workerCount resolves the configured thread count against the hardware,
// clamped so no worker is ever left without a path.
func workerCount(cfg Config, paths int) int {
	workers := cfg.Threads
	if workers <= 0 {
		workers = int(ProbeCapabilities().Threads)
	}

	if workers > paths {
		workers = paths
	}

	if workers < 1 {
		workers = 1
	}

	return workers
}

// simulateMultiThreaded partitions the paths across short-lived worker
// goroutines, each running the scalar recurrence over its own partition
// with an isolated cache-line padded accumulator. The per-worker sums are
// combined in a single deterministic reduction after all workers join, so
// the average is invariant to worker count and completion order up to
// floating-point rounding.
func simulateMultiThreaded(p Parameters, cfg Config) *Result {
	m := newModel(p)
	seed := baseSeed(cfg)

	// Display trajectories are extra presentation-only draws generated
	// before the parallel phase, so workers never touch a shared buffer.
	display := m.displayPaths(newRand(workerSeed(seed, -1)), cfg.DisplayPaths, p.Paths)

	workers := workerCount(cfg, p.Paths)
	slots := make([]kahan.PaddedSum, workers)

	var wg sync.WaitGroup

	for w, count := range partition(p.Paths, workers) {
		wg.Add(1)

		go func(w, count int) {
			defer wg.Done()

			rng := newRand(workerSeed(seed, w))
			slot := &slots[w]

			for i := 0; i < count; i++ {
				slot.Add(math.Exp(m.terminalLog(rng)))
			}
		}(w, count)
	}

	wg.Wait()

	var total kahan.Sum
	for i := range slots {
		total.Add(slots[i].Value())
	}

	return &Result{
		DisplayPaths:         display,
		AverageTerminalPrice: total.Value() / float64(p.Paths),
	}
}
