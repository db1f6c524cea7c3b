package kahan

import "testing"

func BenchmarkNaiveSum(b *testing.B) {
	values := make([]float64, 4096)
	for i := range values {
		values[i] = float64(i) * 0.37
	}

	b.ResetTimer()

	for b.Loop() {
		sum := 0.0
		for _, v := range values {
			sum += v
		}

		_ = sum
	}
}

func BenchmarkCompensatedSum(b *testing.B) {
	values := make([]float64, 4096)
	for i := range values {
		values[i] = float64(i) * 0.37
	}

	b.ResetTimer()

	for b.Loop() {
		var s Sum
		for _, v := range values {
			s.Add(v)
		}

		_ = s.Value()
	}
}
