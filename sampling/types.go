package sampling

// Sample is a fixed-arity ordered record of opaque elements. One position,
// chosen by the caller, holds the class label.
type Sample []any

// LabelCounts maps a label value to the number of samples carrying it.
type LabelCounts map[any]int

// Total returns the sum of all counts, which equals the size of the counted
// collection.
func (lc LabelCounts) Total() int {
	var total int
	for _, c := range lc {
		total += c
	}
	return total
}

// Max returns the largest count, or 0 for empty counts.
func (lc LabelCounts) Max() int {
	var best int
	for _, c := range lc {
		if c > best {
			best = c
		}
	}
	return best
}

// Min returns the smallest count, or 0 for empty counts.
func (lc LabelCounts) Min() int {
	var (
		best  int
		first = true
	)
	for _, c := range lc {
		if first || c < best {
			best = c
			first = false
		}
	}
	return best
}

// DownsampleOptions configures Downsample.
//
// Fields:
//   - OrderedGroups — concatenate per-label draws in first-occurrence label
//     order. When false the label order of the output is unspecified.
//   - OrderedDraws  — drawn samples keep their relative order from the input.
//     When false they appear in the order the sampler picked them.
//
// The two flags are independent; PreserveOrder sets both.
type DownsampleOptions struct {
	OrderedGroups bool
	OrderedDraws  bool
}

// DefaultDownsampleOptions returns options with no ordering guarantees.
func DefaultDownsampleOptions() DownsampleOptions {
	return DownsampleOptions{}
}

// PreserveOrder returns options that keep both label order and the relative
// order of drawn samples.
func PreserveOrder() DownsampleOptions {
	return DownsampleOptions{OrderedGroups: true, OrderedDraws: true}
}
