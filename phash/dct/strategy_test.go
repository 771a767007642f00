package dct_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeker/common-hash/phash/dct"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range dct.Strategies() {
		got, err := dct.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := dct.ParseStrategy("  Fourier\n")
	require.NoError(t, err)
	assert.Equal(t, dct.Fourier, got)

	_, err = dct.ParseStrategy("gpu")
	assert.ErrorIs(t, err, dct.ErrUnknownStrategy)
}

func TestStrategyText(t *testing.T) {
	b, err := dct.Parallel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "parallel", string(b))

	var s dct.Strategy
	require.NoError(t, s.UnmarshalText([]byte("separable")))
	assert.Equal(t, dct.Separable, s)

	assert.Equal(t, "Strategy(9)", dct.Strategy(9).String())
	_, err = dct.Strategy(-1).MarshalText()
	assert.ErrorIs(t, err, dct.ErrUnknownStrategy)
	assert.ErrorIs(t, s.UnmarshalText([]byte("opencl")), dct.ErrUnknownStrategy)
}

// Parallel evaluates every coefficient the same way Direct does, so the two
// must agree bit for bit regardless of worker count.
func TestParallelMatchesDirectExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, n := range []int{1, 3, 8, 32} {
		x := makeBlock(n, rng)
		want, err := newTransformer(t, dct.WithSize(n)).Transform(x)
		require.NoError(t, err)

		for _, workers := range []int{0, 1, 2, 5, 64} {
			tr := newTransformer(t, dct.WithSize(n), dct.WithStrategy(dct.Parallel), dct.WithWorkers(workers))
			got, err := tr.Transform(x)
			require.NoError(t, err)
			assert.Equal(t, want, got, "n=%d workers=%d", n, workers)
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99999))
	for _, n := range []int{2, 4, 8, 9, 16, 24} {
		x := makeBlock(n, rng)
		want, err := newTransformer(t, dct.WithSize(n)).Transform(x)
		require.NoError(t, err)

		for _, s := range dct.Strategies() {
			got, err := newTransformer(t, dct.WithSize(n), dct.WithStrategy(s)).Transform(x)
			require.NoError(t, err)
			if d := maxAbsDiff(want, got); d > epsilon {
				t.Errorf("n=%d %v: max diff from direct = %e, want < %e", n, s, d, epsilon)
			}
		}
	}
}

// TestConcurrentTransform shares one transformer between goroutines; run with
// -race to check that no call touches another call's buffers.
func TestConcurrentTransform(t *testing.T) {
	const goroutines = 16
	rng := rand.New(rand.NewSource(5))
	blocks := make([][]float64, goroutines)
	wants := make([][]float64, goroutines)
	for i := range blocks {
		blocks[i] = makeBlock(8, rng)
		wants[i] = reference(8, blocks[i])
	}

	for _, s := range dct.Strategies() {
		tr := newTransformer(t, dct.WithStrategy(s), dct.WithWorkers(4))

		var wg sync.WaitGroup
		diffs := make([]float64, goroutines)
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					got, err := tr.Transform(blocks[i])
					if err != nil {
						diffs[i] = -1
						return
					}
					if d := maxAbsDiff(wants[i], got); d > diffs[i] {
						diffs[i] = d
					}
				}
			}(i)
		}
		wg.Wait()

		for i, d := range diffs {
			if d < 0 || d > epsilon {
				t.Errorf("%v goroutine %d: max diff = %e", s, i, d)
			}
		}
	}
}
