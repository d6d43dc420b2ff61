package l0sample_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamcolor/l0sample"
)

func TestQueryOnEmptyStreamFails(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s, err := l0sample.New(100, 0.1, rng)
	require.NoError(t, err)

	_, _, ok := s.Query()
	require.False(t, ok)
}

func TestSingleInsertionIsAlwaysRecovered(t *testing.T) {
	// With only one nonzero coordinate, level 0's unthinned filter
	// (range 2^0 = 1, every hash value is zero) always sees it, so
	// recovery never depends on the luck of later levels.
	rng := rand.New(rand.NewSource(2))
	s, err := l0sample.New(50, 0.1, rng)
	require.NoError(t, err)

	s.Feed(17, true)

	index, weight, ok := s.Query()
	require.True(t, ok)
	require.Equal(t, uint64(17), index)
	require.Equal(t, int64(1), weight)
}

func TestRecoveredIndexIsWithinSupport(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	support := []uint64{2, 9, 14, 31}

	hit := 0
	const trials = 40
	for trial := 0; trial < trials; trial++ {
		s, err := l0sample.New(64, 0.2, rng)
		require.NoError(t, err)

		for _, j := range support {
			s.Feed(j, true)
		}

		index, weight, ok := s.Query()
		if !ok {
			continue
		}
		hit++
		require.Equal(t, int64(1), weight)
		require.Contains(t, support, index)
	}

	// The sampler need not resolve on every trial (delta bounds the
	// failure probability, not eliminates it), but across 40 trials
	// with delta=0.2 it should resolve far more often than it fails.
	require.Greater(t, hit, trials/2)
}
