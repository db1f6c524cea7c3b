// Package estimate derives GBM drift and volatility parameters from a
// historical close-price series and normalizes them to a prediction horizon.
//
// The per-step statistics are computed over log returns
// log(close[i]/close[i-1]); the normalized values scale the training mean
// and variance by the number of prediction steps, with the deviation as the
// square root of the normalized variance. The normalized triple feeds
// directly into sim.Parameters.
package estimate

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gbm/sim"
)

// Errors returned by estimation functions.
var (
	ErrTooFewPrices     = errors.New("estimate: need at least two prices")
	ErrNonPositivePrice = errors.New("estimate: prices must be positive")
	ErrInvalidSteps     = errors.New("estimate: steps must be positive")
)

// Statistics holds per-step training measures and their horizon-normalized
// counterparts.
type Statistics struct {
	Mu        float64 // mean log return per training step
	Deviation float64 // sample standard deviation of log returns
	Variance  float64 // sample variance of log returns

	NormalizedMu        float64 // drift over the prediction horizon
	NormalizedVariance  float64 // variance over the prediction horizon
	NormalizedDeviation float64 // volatility over the prediction horizon
}

// FromPrices computes log-return statistics over closes and normalizes them
// to a horizon of steps increments. The sample variance uses the n-1
// denominator.
func FromPrices(closes []float64, steps int) (Statistics, error) {
	if steps <= 0 {
		return Statistics{}, ErrInvalidSteps
	}

	if len(closes) < 2 {
		return Statistics{}, ErrTooFewPrices
	}

	logReturns := make([]float64, len(closes)-1)

	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return Statistics{}, ErrNonPositivePrice
		}

		logReturns[i-1] = math.Log(closes[i] / closes[i-1])
	}

	n := float64(len(logReturns))
	mu := vecmath.Sum(logReturns) / n

	variance := 0.0
	if len(logReturns) > 1 {
		centered := make([]float64, len(logReturns))
		for i, r := range logReturns {
			centered[i] = r - mu
		}

		variance = vecmath.DotProduct(centered, centered) / (n - 1)
	}

	normalizedVariance := variance * float64(steps)

	return Statistics{
		Mu:                  mu,
		Deviation:           math.Sqrt(variance),
		Variance:            variance,
		NormalizedMu:        mu * float64(steps),
		NormalizedVariance:  normalizedVariance,
		NormalizedDeviation: math.Sqrt(normalizedVariance),
	}, nil
}

// Parameters assembles sim.Parameters from the normalized statistics, a
// starting price, and a workload size.
func (s Statistics) Parameters(startingPrice float64, steps, paths int) sim.Parameters {
	return sim.Parameters{
		StartingPrice: startingPrice,
		Mu:            s.NormalizedMu,
		Variance:      s.NormalizedVariance,
		Sigma:         s.NormalizedDeviation,
		Steps:         steps,
		Paths:         paths,
	}
}
