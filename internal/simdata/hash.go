package simdata

import (
	"hash/fnv"
	"math"
)

// Hash returns the FNV-1a 32-bit hash of s, masked to 31 bits so the
// result fits a non-negative int even where int is 32 bits wide.
// Every seed- or text-derived variance term in this package uses this one
// hash so numeric output is reproducible across runs and platforms.
func Hash(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() & math.MaxInt32)
}

// normSeed folds an arbitrary seed into [0, mod), matching the
// non-negative modulo the variance formulas expect.
func normSeed(seed int64, mod int64) int {
	return int(((seed % mod) + mod) % mod)
}

// round2 rounds a monetary value to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
