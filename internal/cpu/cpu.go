// Package cpu provides CPU feature detection for simulation engine selection.
//
// This package detects the wide-vector instruction extensions (AVX2, AVX-512,
// FMA, NEON) available on the current processor together with the cache line
// size, and caches the results for efficient repeated querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Features describes CPU capabilities relevant to engine selection.
type Features struct {
	// x86/amd64 wide-vector features
	HasAVX2   bool // Advanced Vector Extensions 2 (256-bit)
	HasAVX512 bool // Advanced Vector Extensions 512 (512-bit)
	HasFMA    bool // Fused multiply-add

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON, 128-bit)

	// CacheLineBytes is the data cache line size in bytes (64 if undetectable).
	CacheLineBytes uint32

	// ForceGeneric disables all SIMD kernels (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

// WideVector reports whether the 256-bit fused-multiply-add lane kernels can
// run on this CPU.
func (f Features) WideVector() bool {
	if f.ForceGeneric {
		return false
	}

	return f.HasAVX2 && f.HasFMA
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent
// calls. This function is thread-safe and can be called concurrently from
// multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.CacheLineBytes = detectCacheLine()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// detectCacheLine queries the data cache line size, falling back to 64 bytes
// when the CPU does not report one.
func detectCacheLine() uint32 {
	if line := cpuid.CPU.CacheLine; line > 0 {
		return uint32(line)
	}

	return 64
}

// VendorString returns the CPU brand identification string, or "unknown"
// when the CPU does not report one.
func VendorString() string {
	if v := cpuid.CPU.BrandName; v != "" {
		return v
	}

	return "unknown"
}

// SetForcedFeatures overrides CPU feature detection with the specified
// features. This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
