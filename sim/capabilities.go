package sim

import (
	"runtime"

	"github.com/cwbudde/algo-gbm/internal/cpu"
)

// Capabilities describes the hardware resources relevant to engine
// selection. It is cheap to recompute and safe to cache process-wide.
type Capabilities struct {
	WideVector     bool   // 256-bit vector support with fused multiply-add (AVX2+FMA)
	WideVector512  bool   // 512-bit vector support (AVX-512)
	Threads        uint32 // concurrently schedulable hardware threads, >= 1
	CacheLineBytes uint32 // data cache line size in bytes
}

// ProbeCapabilities queries the host machine. It never fails: undetectable
// values fall back to 1 thread and 64-byte cache lines.
func ProbeCapabilities() Capabilities {
	features := cpu.DetectFeatures()

	threads := runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}

	return Capabilities{
		WideVector:     features.WideVector(),
		WideVector512:  features.HasAVX512 && !features.ForceGeneric,
		Threads:        uint32(threads),
		CacheLineBytes: features.CacheLineBytes,
	}
}
