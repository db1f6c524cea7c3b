//go:build !fastmath

package sim

import "math"

// stepInLogSpace selects the numerically stable kernel: lanes accumulate
// log-returns and exponentiate once per path at the end. This is the
// default; only one exponentiation per path sits on the critical path, so
// the standard library exp costs little and keeps the result exact.
const stepInLogSpace = true

// expTerminal converts a terminal log-price to a price.
func expTerminal(x float64) float64 {
	return math.Exp(x)
}

// expStep is unreachable in log-space mode but must compile.
func expStep(x float64) float64 {
	return math.Exp(x)
}
