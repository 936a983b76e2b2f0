package sampling

import "fmt"

// Transform maps one sample element to a new value. Extra positional
// arguments are forwarded from MapColumns; keyword-style parameters are
// captured by closing over them.
type Transform func(v any, args ...any) any

// Columns is a set of column indices.
type Columns map[int]struct{}

// Col returns the column set holding a single index.
func Col(i int) Columns {
	return Columns{i: {}}
}

// Cols returns the column set holding all given indices. Duplicates collapse.
func Cols(idx ...int) Columns {
	c := make(Columns, len(idx))
	for _, i := range idx {
		c[i] = struct{}{}
	}
	return c
}

// Has reports whether i is in the set.
func (c Columns) Has(i int) bool {
	_, ok := c[i]
	return ok
}

// MapColumns returns a new sample of the same arity in which every element at
// a position in cols is replaced by fn(element, args...). Other elements are
// copied unchanged and the input is never mutated.
//
// Indices are only matched against existing positions, so an index outside
// the sample has no effect. A nil fn yields an unchanged copy.
// Use MapColumnsStrict to reject out-of-range indices.
//
// Complexity: O(arity).
func MapColumns(sample Sample, cols Columns, fn Transform, args ...any) Sample {
	out := make(Sample, len(sample))
	for i, e := range sample {
		if fn != nil && cols.Has(i) {
			out[i] = fn(e, args...)
			continue
		}
		out[i] = e
	}
	return out
}

// MapColumnsStrict behaves like MapColumns but fails with ErrInvalidColumn if
// any index in cols lies outside the sample.
func MapColumnsStrict(sample Sample, cols Columns, fn Transform, args ...any) (Sample, error) {
	for i := range cols {
		if i < 0 || i >= len(sample) {
			return nil, fmt.Errorf("map columns: column %d with arity %d: %w", i, len(sample), ErrInvalidColumn)
		}
	}
	return MapColumns(sample, cols, fn, args...), nil
}

// MapColumnsEach applies MapColumns to every sample and returns the new
// collection.
func MapColumnsEach(samples []Sample, cols Columns, fn Transform, args ...any) []Sample {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		out[i] = MapColumns(s, cols, fn, args...)
	}
	return out
}
