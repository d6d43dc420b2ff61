package ssparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamcolor/ssparse"
)

func TestQueryRecoversKnownSparseVector(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rec, err := ssparse.New(10, 3, 0.5, rng)
	require.NoError(t, err)

	stream := []struct {
		j  uint64
		in bool
	}{
		{0, true}, {9, true}, {7, true}, {6, true}, {7, true},
		{9, true}, {7, true}, {9, false}, {9, false},
	}
	for _, u := range stream {
		rec.Feed(u.j, u.in)
	}

	vector, ok := rec.Query()
	require.True(t, ok)
	require.Equal(t, []int64{1, 0, 0, 0, 0, 0, 1, 3, 0, 0}, vector)
}

func TestQueryOnEmptyStreamIsAllZero(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rec, err := ssparse.New(20, 4, 0.1, rng)
	require.NoError(t, err)

	vector, ok := rec.Query()
	require.True(t, ok)
	for _, v := range vector {
		require.Zero(t, v)
	}
}

func TestFeedThenDeleteReturnsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rec, err := ssparse.New(16, 2, 0.2, rng)
	require.NoError(t, err)

	for _, j := range []uint64{1, 5} {
		rec.Feed(j, true)
	}
	for _, j := range []uint64{1, 5} {
		rec.Feed(j, false)
	}

	vector, ok := rec.Query()
	require.True(t, ok)
	for _, v := range vector {
		require.Zero(t, v)
	}
}

func TestRowsMatchesLog2Formula(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	// s/delta = 8/0.5 = 16, log2(16) = 4 exactly.
	rec, err := ssparse.New(32, 8, 0.5, rng)
	require.NoError(t, err)

	require.Equal(t, 4, rec.Rows())
}

func TestNewRejectsNonPositiveDelta(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	_, err := ssparse.New(10, 3, 0, rng)
	require.ErrorIs(t, err, ssparse.ErrDeltaOutOfRange)
}

func TestNewRejectsDeltaAtOrAboveOne(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	_, err := ssparse.New(10, 3, 1, rng)
	require.ErrorIs(t, err, ssparse.ErrDeltaOutOfRange)
}
