package sampling

import (
	"fmt"
	"math/rand"
)

// Upsample creates a stratified sample set by replicating the samples of every
// label up to the size of the largest label group.
//
// Algorithm:
//  1. Group samples by label (first-occurrence order); maxCount = largest group.
//  2. For each group of size n, repeat it floor(maxCount/n)+1 times
//     (keeping its internal order across cycles) and keep the first maxCount.
//  3. Concatenate all groups and shuffle the pool with rng.
//
// The output always holds maxCount × (number of labels) samples. The same rng
// state reproduces the same output.
//
// Errors:
//   - ErrEmptyInput      — no samples.
//   - ErrNilRand         — rng is nil.
//   - ErrInvalidColumn   — labelCol outside some sample.
//   - ErrUnhashableLabel — label cannot be a map key.
//
// Complexity: O(maxCount·k) time and memory.
func Upsample(samples []Sample, labelCol int, rng *rand.Rand) ([]Sample, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("upsample: %w", ErrEmptyInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("upsample: %w", ErrNilRand)
	}
	groups, counts, err := GroupSamples(samples, labelCol, true)
	if err != nil {
		return nil, fmt.Errorf("upsample: %w", err)
	}

	maxCount := counts.Max()
	pool := make([]Sample, 0, maxCount*groups.Len())
	for _, label := range groups.keys {
		pool = append(pool, replicate(groups.members[label], maxCount)...)
	}
	shuffleInPlace(pool, rng)
	return pool, nil
}

// replicate repeats group floor(target/len)+1 times and truncates the result
// to target elements. The factor over-allocates on purpose; the truncation
// point alone fixes the output.
func replicate(group []Sample, target int) []Sample {
	n := len(group)
	if n == 0 || target <= 0 {
		return nil
	}
	reps := target/n + 1
	extended := make([]Sample, 0, reps*n)
	for r := 0; r < reps; r++ {
		extended = append(extended, group...)
	}
	return extended[:target]
}
