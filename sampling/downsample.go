package sampling

import (
	"fmt"
	"math/rand"
	"slices"
)

// Downsample creates a stratified sample set by drawing, without replacement,
// as many samples from every label group as the smallest group holds.
//
// Draws are taken group by group in first-occurrence label order, so the set
// of drawn samples is reproducible for a given rng state. opts controls only
// the ordering of the output:
//   - OrderedGroups: label blocks appear in first-occurrence order.
//   - OrderedDraws:  samples inside a block keep their input order.
//
// The output always holds minCount × (number of labels) samples.
//
// Errors:
//   - ErrEmptyInput      — no samples.
//   - ErrNilRand         — rng is nil.
//   - ErrInvalidColumn   — labelCol outside some sample.
//   - ErrUnhashableLabel — label cannot be a map key.
//
// Complexity: O(n) time, O(n) memory.
func Downsample(samples []Sample, labelCol int, rng *rand.Rand, opts DownsampleOptions) ([]Sample, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("downsample: %w", ErrEmptyInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("downsample: %w", ErrNilRand)
	}
	groups, counts, err := GroupSamples(samples, labelCol, opts.OrderedGroups)
	if err != nil {
		return nil, fmt.Errorf("downsample: %w", err)
	}

	minCount := counts.Min()
	drawn := make(map[any][]Sample, groups.Len())
	for _, label := range groups.keys {
		drawn[label] = draw(groups.members[label], minCount, rng, opts.OrderedDraws)
	}

	out := make([]Sample, 0, minCount*groups.Len())
	for _, label := range groups.Keys() {
		out = append(out, drawn[label]...)
	}
	return out, nil
}

// draw picks k distinct elements of group. With ordered set, the picks are
// returned in their group order; otherwise in draw order. k is clamped to
// the group size.
func draw(group []Sample, k int, rng *rand.Rand, ordered bool) []Sample {
	k = min(k, len(group))
	if k <= 0 {
		return nil
	}
	idx := drawIndices(len(group), k, rng)
	if ordered {
		slices.Sort(idx)
	}
	out := make([]Sample, k)
	for i, j := range idx {
		out[i] = group[j]
	}
	return out
}
