package sim_test

import (
	"fmt"

	"github.com/cwbudde/algo-gbm/sim"
)

func ExampleSimulate() {
	// Zero volatility makes the run deterministic: every path ends at the
	// starting price compounded by the drift.
	res, err := sim.Simulate(sim.Parameters{
		StartingPrice: 100,
		Mu:            0,
		Variance:      0,
		Sigma:         0,
		Steps:         252,
		Paths:         1000,
	}, sim.WithEngine(sim.EngineScalar), sim.WithDisplayPaths(10))
	if err != nil {
		panic(err)
	}

	fmt.Printf("display paths: %d\n", len(res.DisplayPaths))
	fmt.Printf("average terminal price: %.2f\n", res.AverageTerminalPrice)

	// Output:
	// display paths: 10
	// average terminal price: 100.00
}

func ExampleSelect() {
	caps := sim.Capabilities{WideVector: true, Threads: 8, CacheLineBytes: 64}

	fmt.Println(sim.Select(caps, 50, 1_000_000))
	fmt.Println(sim.Select(caps, 500, 1_000_000))

	// Output:
	// mt
	// simd
}
