package sim

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// entropySeed draws a fresh 64-bit seed from the system entropy source,
// falling back to the wall clock if the source is unavailable.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(buf[:])
}

// baseSeed resolves the configured seed: 0 means entropy-sourced.
func baseSeed(cfg Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}

	return entropySeed()
}

// workerSeed derives an independent stream seed for a worker index from the
// base seed. The odd-constant stride plus SplitMix64-style mixing keeps the
// streams decorrelated regardless of how paths are partitioned.
func workerSeed(base uint64, worker int) uint64 {
	x := base + uint64(worker+1)*0x9E3779B97F4A7C15

	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31

	return x
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
