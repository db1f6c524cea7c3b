// Package kahan implements compensated (Kahan) summation.
//
// Accumulating 10^8 or more floating-point terms with a naive running sum
// loses low-order bits at a rate proportional to the term count. Compensated
// summation tracks the rounding error of every addition in a carry term and
// feeds it back into the next one, bounding the error growth to a small
// constant number of ulps independent of N.
package kahan

// Add folds value into the running (sum, carry) pair and returns the updated
// pair. The carry holds the low-order bits lost by the previous additions.
func Add(sum, carry, value float64) (float64, float64) {
	y := value - carry
	t := sum + y
	carry = (t - sum) - y

	return t, carry
}

// Sum is a running compensated sum. The zero value is ready to use.
type Sum struct {
	sum   float64
	carry float64
}

// Add folds v into the sum.
func (s *Sum) Add(v float64) {
	s.sum, s.carry = Add(s.sum, s.carry, v)
}

// Value returns the current compensated total.
func (s *Sum) Value() float64 {
	return s.sum
}

// CacheLineBytes is the padding granularity for PaddedSum. 64 bytes covers
// every amd64 and arm64 core this library targets; a larger actual line
// only wastes padding, it never reintroduces sharing within one line.
const CacheLineBytes = 64

// PaddedSum is a Sum padded to occupy a full cache line so that adjacent
// elements of a []PaddedSum never share a line. Worker goroutines writing
// their own slot therefore never invalidate each other's caches.
type PaddedSum struct {
	Sum
	_ [CacheLineBytes - 16]byte
}
