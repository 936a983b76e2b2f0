package sampling_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strata/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLabels(t *testing.T) {
	samples := []sampling.Sample{{"pos1", 1}, {"pos2", 1}, {"neg1", 0}}
	counts, err := sampling.CountLabels(samples, 1)
	require.NoError(t, err)

	assert.Equal(t, sampling.LabelCounts{1: 2, 0: 1}, counts)
	assert.Equal(t, len(samples), counts.Total())
	assert.Equal(t, 2, counts.Max())
	assert.Equal(t, 1, counts.Min())
}

// TestCountLabels_MixedLabelTypes uses labels of different dynamic types;
// 1 and "1" are distinct keys.
func TestCountLabels_MixedLabelTypes(t *testing.T) {
	samples := []sampling.Sample{{1}, {"1"}, {true}, {1}, {nil}}
	counts, err := sampling.CountLabels(samples, 0)
	require.NoError(t, err)
	assert.Equal(t, sampling.LabelCounts{1: 2, "1": 1, true: 1, nil: 1}, counts)
}

func TestCountLabels_Empty(t *testing.T) {
	counts, err := sampling.CountLabels(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Equal(t, 0, counts.Max())
	assert.Equal(t, 0, counts.Min())
}

// TestCountLabels_InvalidColumn covers negative indices and ragged samples.
func TestCountLabels_InvalidColumn(t *testing.T) {
	_, err := sampling.CountLabels([]sampling.Sample{{"a", 1}}, -1)
	assert.ErrorIs(t, err, sampling.ErrInvalidColumn, "negative column")

	_, err = sampling.CountLabels([]sampling.Sample{{"a", 1}, {"b"}}, 1)
	assert.ErrorIs(t, err, sampling.ErrInvalidColumn, "second sample too short")
	assert.Contains(t, err.Error(), "sample 1")
}

func TestCountLabels_Unhashable(t *testing.T) {
	_, err := sampling.CountLabels([]sampling.Sample{{"a", []int{1}}}, 1)
	assert.ErrorIs(t, err, sampling.ErrUnhashableLabel)

	// a comparable array type is fine
	counts, err := sampling.CountLabels([]sampling.Sample{{"a", [2]int{1, 2}}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[[2]int{1, 2}])
}

// TestCountLabels_NaN rejects NaN labels, bare or nested, since they can never
// be found again as map keys.
func TestCountLabels_NaN(t *testing.T) {
	type point struct{ X, Y float64 }
	cases := map[string]any{
		"float64":   math.NaN(),
		"float32":   float32(math.NaN()),
		"in struct": point{X: 1, Y: math.NaN()},
		"in array":  [2]float64{0, math.NaN()},
	}
	for name, label := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sampling.CountLabels([]sampling.Sample{{"a", 1.0}, {"b", label}}, 1)
			assert.ErrorIs(t, err, sampling.ErrUnhashableLabel)
			assert.Contains(t, err.Error(), "sample 1")
		})
	}

	// ordinary floats and infinities stay valid labels
	counts, err := sampling.CountLabels([]sampling.Sample{{"a", 1.0}, {"b", math.Inf(1)}}, 1)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
}
