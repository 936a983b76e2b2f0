// Package sampling - RNG utilities shared by the stochastic balancers.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws and shuffles.
//   - Explicitness: no package-level generator; every caller owns its *rand.Rand.
//   - Independence: DeriveRand yields decorrelated streams for parallel callers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package sampling

import "math/rand"

// defaultSeed is used when callers pass seed==0 to NewRand.
const defaultSeed int64 = 1

// NewRand returns a deterministic generator.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Golden-ratio increment and finalizer multipliers of SplitMix64.
const (
	mixGamma uint64 = 0x9e3779b97f4a7c15
	mixMul1  uint64 = 0xbf58476d1ce4e5b9
	mixMul2  uint64 = 0x94d049bb133111eb
)

// splitMix64 advances state by one gamma step and returns the avalanched value.
func splitMix64(state uint64) uint64 {
	z := state + mixGamma
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}

// DeriveRand returns a generator for worker stream, seeded from one draw of
// base mixed with the stream id. Each goroutine balancing its own shard gets
// DeriveRand(base, shard) and results stay reproducible regardless of
// scheduling. A nil base derives from defaultSeed.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := uint64(defaultSeed)
	if base != nil {
		parent = uint64(base.Int63())
	}
	seed := splitMix64(parent ^ splitMix64(stream))
	return rand.New(rand.NewSource(int64(seed)))
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[E any](a []E, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// drawIndices picks k distinct indices from [0,n) with a partial Fisher–Yates
// pass. The result is in draw order. Requires 0 <= k <= n.
//
// Complexity: O(n) time, O(n) space.
func drawIndices(n, k int, rng *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var j int
	for i := 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
