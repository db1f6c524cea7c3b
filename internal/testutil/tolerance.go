package testutil

import (
	"math"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePositive fails t if any element is not strictly positive.
// Simulated GBM prices can never reach zero or go negative.
func RequirePositive(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if v <= 0 {
			t.Fatalf("index %d: non-positive value %v", i, v)
		}
	}
}

// RequireRelativeClose fails t if got differs from want by more than the
// given relative tolerance. Used for statistical comparisons where exact
// equality is meaningless.
func RequireRelativeClose(t *testing.T, got, want, tolerance float64) {
	t.Helper()

	if want == 0 {
		t.Fatalf("want must be nonzero for a relative comparison")
	}

	rel := math.Abs(got-want) / math.Abs(want)
	if rel > tolerance {
		t.Fatalf("got %v, want %v (relative diff %v > %v)", got, want, rel, tolerance)
	}
}
