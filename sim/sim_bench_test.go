package sim

import "testing"

func benchParams() Parameters {
	return Parameters{
		StartingPrice: 100,
		Mu:            0.08,
		Variance:      0.04,
		Sigma:         0.2,
		Steps:         252,
		Paths:         100_000,
	}
}

func BenchmarkScalarEngine(b *testing.B) {
	p := benchParams()

	b.ResetTimer()

	for b.Loop() {
		if _, err := Simulate(p, WithEngine(EngineScalar), WithSeed(1), WithDisplayPaths(0)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMultiThreadedEngine(b *testing.B) {
	p := benchParams()

	b.ResetTimer()

	for b.Loop() {
		if _, err := Simulate(p, WithEngine(EngineMultiThreaded), WithSeed(1), WithDisplayPaths(0)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSIMDEngine(b *testing.B) {
	p := benchParams()

	b.ResetTimer()

	for b.Loop() {
		if _, err := Simulate(p, WithEngine(EngineSIMD), WithSeed(1), WithDisplayPaths(0)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSIMDEngineShortSteps(b *testing.B) {
	p := benchParams()
	p.Steps = 16

	b.ResetTimer()

	for b.Loop() {
		if _, err := Simulate(p, WithEngine(EngineSIMD), WithSeed(1), WithDisplayPaths(0)); err != nil {
			b.Fatal(err)
		}
	}
}
