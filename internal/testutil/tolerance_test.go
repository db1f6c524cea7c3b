package testutil

import "testing"

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{1, 0, -3.5, 1e300})
}

func TestRequirePositivePasses(t *testing.T) {
	RequirePositive(t, []float64{0.001, 100, 1e-300})
}

func TestRequireRelativeClosePasses(t *testing.T) {
	RequireRelativeClose(t, 100.4, 100.0, 0.01)
	RequireRelativeClose(t, -99.9, -100.0, 0.01)
}
