package sampling_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/strata/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labelsOf counts labels of an already validated collection.
func labelsOf(t *testing.T, samples []sampling.Sample, col int) sampling.LabelCounts {
	t.Helper()
	counts, err := sampling.CountLabels(samples, col)
	require.NoError(t, err)
	return counts
}

// randomSamples builds n samples with labels drawn from k classes with a
// skewed distribution. Element 0 is a unique id.
func randomSamples(rng *rand.Rand, n, k int) []sampling.Sample {
	out := make([]sampling.Sample, n)
	for i := range out {
		label := rng.Intn(k) * rng.Intn(2) // bias towards label 0
		out[i] = sampling.Sample{fmt.Sprintf("s%d", i), label}
	}
	return out
}

func TestUpsample_Scenario(t *testing.T) {
	samples := []sampling.Sample{{"pos1", 1}, {"pos2", 1}, {"neg1", 0}}
	out, err := sampling.Upsample(samples, 1, sampling.NewRand(3))
	require.NoError(t, err)

	require.Len(t, out, 4)
	assert.Equal(t, sampling.LabelCounts{1: 2, 0: 2}, labelsOf(t, out, 1))
	assert.ElementsMatch(t, []sampling.Sample{
		{"pos1", 1}, {"pos2", 1}, {"neg1", 0}, {"neg1", 0},
	}, out)
}

// TestUpsample_Determinism verifies that equal generator state yields an equal
// shuffle.
func TestUpsample_Determinism(t *testing.T) {
	samples := randomSamples(sampling.NewRand(11), 50, 4)

	first, err := sampling.Upsample(samples, 1, sampling.NewRand(99))
	require.NoError(t, err)
	second, err := sampling.Upsample(samples, 1, sampling.NewRand(99))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestUpsample_Properties checks output size and label coverage on a batch of
// random collections.
func TestUpsample_Properties(t *testing.T) {
	gen := sampling.NewRand(5)
	for trial := 0; trial < 25; trial++ {
		samples := randomSamples(gen, 1+gen.Intn(40), 1+gen.Intn(5))
		in := labelsOf(t, samples, 1)

		out, err := sampling.Upsample(samples, 1, sampling.DeriveRand(gen, uint64(trial)))
		require.NoError(t, err)

		assert.Len(t, out, in.Max()*len(in), "trial %d: size", trial)
		got := labelsOf(t, out, 1)
		assert.Len(t, got, len(in), "trial %d: every label kept", trial)
		for label, c := range got {
			assert.Contains(t, in, label)
			assert.Equal(t, in.Max(), c, "trial %d: label %v balanced", trial, label)
		}
	}
}

// TestUpsample_ReplicationCycles checks that a group of 2 raised to 5 takes
// each member ceil/floor times in cycle order.
func TestUpsample_ReplicationCycles(t *testing.T) {
	samples := []sampling.Sample{
		{"a", 0}, {"b", 0},
		{"x", 1}, {"y", 1}, {"z", 1}, {"w", 1}, {"v", 1},
	}
	out, err := sampling.Upsample(samples, 1, sampling.NewRand(1))
	require.NoError(t, err)
	require.Len(t, out, 10)

	names := map[any]int{}
	for _, s := range out {
		names[s[0]]++
	}
	assert.Equal(t, 3, names["a"], "first member of the short group fills the extra slot")
	assert.Equal(t, 2, names["b"])
	for _, n := range []string{"x", "y", "z", "w", "v"} {
		assert.Equal(t, 1, names[n])
	}
}

func TestUpsample_DoesNotMutateInput(t *testing.T) {
	samples := []sampling.Sample{{"pos1", 1}, {"pos2", 1}, {"neg1", 0}}
	snapshot := []sampling.Sample{{"pos1", 1}, {"pos2", 1}, {"neg1", 0}}
	_, err := sampling.Upsample(samples, 1, sampling.NewRand(8))
	require.NoError(t, err)
	assert.Equal(t, snapshot, samples)
}

func TestUpsample_Errors(t *testing.T) {
	_, err := sampling.Upsample(nil, 0, sampling.NewRand(1))
	assert.ErrorIs(t, err, sampling.ErrEmptyInput)

	_, err = sampling.Upsample([]sampling.Sample{{"a", 1}}, 1, nil)
	assert.ErrorIs(t, err, sampling.ErrNilRand)

	_, err = sampling.Upsample([]sampling.Sample{{"a", 1}}, 4, sampling.NewRand(1))
	assert.ErrorIs(t, err, sampling.ErrInvalidColumn)
}

func TestUpsample_NaNLabel(t *testing.T) {
	samples := []sampling.Sample{{"a", math.NaN()}, {"b", 1.0}, {"c", 1.0}}
	out, err := sampling.Upsample(samples, 1, sampling.NewRand(1))
	assert.ErrorIs(t, err, sampling.ErrUnhashableLabel)
	assert.Nil(t, out)
}

// TestUpsample_ConcurrentDerivedStreams balances shards on separate goroutines,
// each with its own derived generator, and compares against a sequential run.
func TestUpsample_ConcurrentDerivedStreams(t *testing.T) {
	const shards = 4
	data := make([][]sampling.Sample, shards)
	for i := range data {
		data[i] = randomSamples(sampling.NewRand(int64(i+1)), 30, 3)
	}
	streams := func() []*rand.Rand {
		base := sampling.NewRand(17)
		out := make([]*rand.Rand, shards)
		for i := range out {
			out[i] = sampling.DeriveRand(base, uint64(i))
		}
		return out
	}

	sequential := make([][]sampling.Sample, shards)
	for i, rng := range streams() {
		out, err := sampling.Upsample(data[i], 1, rng)
		require.NoError(t, err)
		sequential[i] = out
	}

	parallel := make([][]sampling.Sample, shards)
	errs := make([]error, shards)
	var wg sync.WaitGroup
	for i, rng := range streams() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			parallel[i], errs[i] = sampling.Upsample(data[i], 1, rng)
		}()
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, sequential, parallel)
}
