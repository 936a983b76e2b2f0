// Package sampling balances class distributions of finite, fully materialized
// sample sets before training.
//
// 🚀 What is in here?
//
//	A Sample is a fixed-arity record ([]any) with one position, the label
//	column, holding a comparable class label. On top of that:
//	  • GroupBy       — partition any slice by a key function
//	  • CountLabels   — label → frequency
//	  • Upsample      — replicate minority groups up to the majority size
//	  • Downsample    — randomly subsample majority groups down to the minority size
//	  • MapColumns    — apply a transform to selected positions of a sample
//
// ✨ Guarantees:
//
//   - Pure functions: inputs are never mutated, nothing is cached between calls.
//   - No hidden randomness: every stochastic call takes an explicit *rand.Rand.
//     The same generator state reproduces the same output.
//   - No panics on bad input: sentinel errors (ErrInvalidColumn, ErrEmptyInput,
//     ErrNilRand, ErrUnhashableLabel) checked via errors.Is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strata/sampling"
//
//	samples := []sampling.Sample{{"pos1", 1}, {"pos2", 1}, {"neg1", 0}}
//	rng := sampling.NewRand(42)
//
//	up, err := sampling.Upsample(samples, 1, rng)            // 4 samples, 2 per label
//	down, err := sampling.Downsample(samples, 1, rng,
//		sampling.PreserveOrder())                           // 2 samples, 1 per label
//
// Complexity:
//
//   - GroupBy, CountLabels: O(n) time, O(n) memory.
//   - Upsample:   O(maxCount·k) time and memory (k = number of labels).
//   - Downsample: O(n) time, O(n) memory.
//   - MapColumns: O(arity).
//
// Concurrency:
//
//	math/rand.Rand is NOT goroutine-safe. Give every goroutine its own
//	generator, e.g. via DeriveRand(base, workerID).
package sampling
