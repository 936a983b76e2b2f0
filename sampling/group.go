package sampling

import (
	"fmt"
	"reflect"
)

// Groups is a partition of a collection by key. Every input element belongs to
// exactly one group, and each group lists its elements in encounter order.
type Groups[K comparable, E any] struct {
	keys    []K       // first-occurrence order
	members map[K][]E // key -> elements in encounter order
	ordered bool
}

// Len returns the number of distinct keys.
func (g *Groups[K, E]) Len() int {
	return len(g.keys)
}

// Size returns the total number of grouped elements.
func (g *Groups[K, E]) Size() int {
	var n int
	for _, m := range g.members {
		n += len(m)
	}
	return n
}

// Ordered reports whether Keys follows first-occurrence order.
func (g *Groups[K, E]) Ordered() bool {
	return g.ordered
}

// Keys returns the group keys. For ordered groups they come in the order in
// which each key was first seen; otherwise the order is unspecified.
// The returned slice is a fresh copy.
func (g *Groups[K, E]) Keys() []K {
	if g.ordered {
		return append([]K(nil), g.keys...)
	}
	keys := make([]K, 0, len(g.members))
	for k := range g.members {
		keys = append(keys, k)
	}
	return keys
}

// Get returns a copy of the elements grouped under key.
func (g *Groups[K, E]) Get(key K) ([]E, bool) {
	m, ok := g.members[key]
	if !ok {
		return nil, false
	}
	return append([]E(nil), m...), true
}

// GroupBy partitions elements by the key each one yields. Within a group the
// elements keep their input order. When ordered is true, Keys iterates in
// first-occurrence order. Empty input yields empty groups.
//
// Keys must equal themselves. A float NaN key (or a struct or array holding
// one) never matches on lookup, so every NaN element lands in its own group
// that Get cannot reach. GroupSamples rejects such labels.
//
// Complexity: O(n) time, O(n) memory.
func GroupBy[E any, K comparable](elements []E, key func(E) K, ordered bool) *Groups[K, E] {
	g := &Groups[K, E]{
		members: make(map[K][]E),
		ordered: ordered,
	}
	for _, e := range elements {
		k := key(e)
		if _, seen := g.members[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.members[k] = append(g.members[k], e)
	}
	return g
}

// GroupSamples groups samples by their label and counts the labels in one
// pass. The label column is validated for every sample before grouping.
func GroupSamples(samples []Sample, labelCol int, ordered bool) (*Groups[any, Sample], LabelCounts, error) {
	counts, err := CountLabels(samples, labelCol)
	if err != nil {
		return nil, nil, err
	}
	groups := GroupBy(samples, func(s Sample) any { return s[labelCol] }, ordered)
	return groups, counts, nil
}

// labelOf returns the label of s at col, checking range and hashability.
// Labels that differ from themselves (NaN, possibly nested) are rejected as
// they cannot be looked up in a map.
func labelOf(s Sample, idx, col int) (any, error) {
	if col < 0 || col >= len(s) {
		return nil, columnError(idx, col, len(s))
	}
	label := s[col]
	if label != nil && !reflect.ValueOf(label).Comparable() {
		return nil, fmt.Errorf("sample %d: label of type %T: %w", idx, label, ErrUnhashableLabel)
	}
	if !selfEqual(label) {
		return nil, fmt.Errorf("sample %d: label %v is not equal to itself: %w", idx, label, ErrUnhashableLabel)
	}
	return label, nil
}

// selfEqual reports whether v == v. Only false for values holding a NaN.
// v must be comparable.
func selfEqual(v any) bool {
	w := v
	return v == w
}
