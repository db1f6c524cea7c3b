package sim

import (
	"fmt"
	"strings"
	"time"
)

// Engine identifies a simulation engine.
type Engine int

const (
	// EngineAuto selects the best engine for the detected hardware and
	// workload shape.
	EngineAuto Engine = iota

	// EngineScalar is the single-threaded reference implementation.
	EngineScalar

	// EngineMultiThreaded partitions paths across worker goroutines.
	EngineMultiThreaded

	// EngineSIMD partitions paths across workers and processes four paths
	// per iteration inside each worker.
	EngineSIMD
)

// String returns a human-readable name for the engine.
func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "auto"
	case EngineScalar:
		return "scalar"
	case EngineMultiThreaded:
		return "mt"
	case EngineSIMD:
		return "simd"
	default:
		return "unknown"
	}
}

// ParseEngine converts a name ("auto", "scalar", "mt", "simd") to an Engine.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "auto":
		return EngineAuto, nil
	case "scalar":
		return EngineScalar, nil
	case "mt", "multithreaded":
		return EngineMultiThreaded, nil
	case "simd":
		return EngineSIMD, nil
	default:
		return EngineAuto, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// DefaultSIMDStepThreshold is the step count above which the SIMD engine is
// preferred by automatic selection. Below it the workload is dominated by
// goroutine spawn and RNG seeding overhead rather than arithmetic, and the
// multi-threaded engine wins. Empirically tuned near 100-120 steps; validate
// against your own hardware via WithStepThreshold before relying on it.
const DefaultSIMDStepThreshold = 100

// tinyWorkloadOps is the path*step product below which spawning workers
// costs more than simulating on the calling goroutine.
const tinyWorkloadOps = 1 << 12

// Select picks the engine for the given capabilities and workload shape
// using the default step threshold. It is a pure function and never returns
// EngineAuto.
func Select(caps Capabilities, steps, paths int) Engine {
	return selectEngine(caps, steps, paths, DefaultSIMDStepThreshold)
}

func selectEngine(caps Capabilities, steps, paths, stepThreshold int) Engine {
	if int64(steps)*int64(paths) <= tinyWorkloadOps {
		return EngineScalar
	}

	if steps < stepThreshold {
		return EngineMultiThreaded
	}

	if caps.WideVector {
		return EngineSIMD
	}

	return EngineMultiThreaded
}

// Simulate runs a Monte Carlo GBM simulation and returns the retained
// display trajectories and the average terminal price.
//
// Parameters are validated before any simulation work begins. The call runs
// to completion; there is no cancellation or timeout. The SIMD engine
// degrades transparently to the scalar recurrence on hardware without
// wide-vector support, so every engine choice yields a correct answer.
func Simulate(p Parameters, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)

	engine := cfg.Engine
	if engine == EngineAuto {
		engine = selectEngine(ProbeCapabilities(), p.Steps, p.Paths, cfg.StepThreshold)
	}

	start := time.Now()

	var res *Result

	switch engine {
	case EngineScalar:
		res = simulateScalar(p, cfg)
	case EngineMultiThreaded:
		res = simulateMultiThreaded(p, cfg)
	case EngineSIMD:
		res = simulateSIMD(p, cfg)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEngine, int(engine))
	}

	res.Engine = engine
	res.Elapsed = time.Since(start)

	return res, nil
}
