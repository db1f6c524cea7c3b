package sim

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-gbm/internal/cpu"
	"github.com/cwbudde/algo-gbm/internal/kahan"
)

// TestSIMDKernelDeterministic removes all randomness (zero volatility) so
// the lane kernel's result is exactly computable: every path ends at
// start * exp(partial * (steps-1)).
func TestSIMDKernelDeterministic(t *testing.T) {
	p := Parameters{
		StartingPrice: 100,
		Mu:            0.08,
		Variance:      0,
		Sigma:         0,
		Steps:         252,
		Paths:         10, // two lane groups plus two remainder paths
	}

	m := newModel(p)
	want := 100 * math.Exp(m.partial*float64(p.Steps-1))

	var acc kahan.Sum

	simdPaths(m, p.Paths, newRand(7), &acc)

	got := acc.Value() / float64(p.Paths)
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("deterministic average = %v, want %v", got, want)
	}
}

func TestSIMDKernelMatchesScalarKernel(t *testing.T) {
	p := Parameters{
		StartingPrice: 100,
		Mu:            0.05,
		Variance:      0.0225,
		Sigma:         0.15,
		Steps:         64,
		Paths:         50_000,
	}

	m := newModel(p)

	var simd, scalar kahan.Sum

	simdPaths(m, p.Paths, newRand(11), &simd)
	scalarPaths(m, p.Paths, newRand(13), &scalar)

	simdAvg := simd.Value() / float64(p.Paths)
	scalarAvg := scalar.Value() / float64(p.Paths)

	relDiff := math.Abs(simdAvg-scalarAvg) / scalarAvg
	if relDiff > 0.02 {
		t.Errorf("simd avg %.4f vs scalar avg %.4f, relative diff %.4f",
			simdAvg, scalarAvg, relDiff)
	}
}

// TestSIMDFallbackWithoutWideVector forces a CPU without wide-vector
// support. The SIMD engine must degrade to the scalar recurrence and still
// return a statistically correct answer, never an error.
func TestSIMDFallbackWithoutWideVector(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{CacheLineBytes: 64, Architecture: "test"})
	defer cpu.ResetDetection()

	p := Parameters{
		StartingPrice: 100,
		Mu:            0.08,
		Variance:      0.04,
		Sigma:         0.2,
		Steps:         64,
		Paths:         200_000,
	}

	fallback, err := Simulate(p, WithEngine(EngineSIMD), WithSeed(3))
	if err != nil {
		t.Fatalf("SIMD engine failed without wide-vector support: %v", err)
	}

	scalar, err := Simulate(p, WithEngine(EngineScalar), WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}

	relDiff := math.Abs(fallback.AverageTerminalPrice-scalar.AverageTerminalPrice) /
		scalar.AverageTerminalPrice

	if relDiff > 0.01 {
		t.Errorf("fallback avg %.4f vs scalar avg %.4f, relative diff %.4f > 1%%",
			fallback.AverageTerminalPrice, scalar.AverageTerminalPrice, relDiff)
	}
}

func TestSIMDRemainderPathsCounted(t *testing.T) {
	// Paths not divisible by the lane width must all contribute. With zero
	// volatility the average equals the deterministic terminal price, which
	// only holds when no path is dropped.
	for _, paths := range []int{1, 2, 3, 5, 6, 7} {
		p := Parameters{
			StartingPrice: 80,
			Mu:            0.1,
			Variance:      0,
			Sigma:         0,
			Steps:         16,
			Paths:         paths,
		}

		m := newModel(p)
		want := 80 * math.Exp(m.partial*float64(p.Steps-1))

		var acc kahan.Sum

		simdPaths(m, paths, newRand(1), &acc)

		got := acc.Value() / float64(paths)
		if math.Abs(got-want)/want > 1e-12 {
			t.Errorf("paths=%d: average = %v, want %v", paths, got, want)
		}
	}
}
