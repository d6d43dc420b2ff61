package edgeindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamcolor/edgeindex"
)

func TestFromD1KnownValue(t *testing.T) {
	u, v := edgeindex.FromD1(14)
	require.Equal(t, uint64(4), u)
	require.Equal(t, uint64(5), v)
}

func TestToD1KnownValue(t *testing.T) {
	require.Equal(t, uint64(14), edgeindex.ToD1(4, 5))
	require.Equal(t, uint64(14), edgeindex.ToD1(5, 4))
}

func TestRoundTripOverRange(t *testing.T) {
	for d := uint64(0); d < 100; d++ {
		u, v := edgeindex.FromD1(d)
		require.Less(t, u, v, "d=%d", d)
		require.Equal(t, d, edgeindex.ToD1(u, v), "d=%d", d)
	}
}

func TestFromD1Zero(t *testing.T) {
	u, v := edgeindex.FromD1(0)
	require.Equal(t, uint64(0), u)
	require.Equal(t, uint64(1), v)
}

func TestCombinationKnownValue(t *testing.T) {
	require.Equal(t, uint64(4950), edgeindex.Combination(100, 2))
}

func TestCombinationEdgeCases(t *testing.T) {
	require.Equal(t, uint64(1), edgeindex.Combination(5, 0))
	require.Equal(t, uint64(0), edgeindex.Combination(2, 5))
	require.Equal(t, uint64(10), edgeindex.Combination(5, 2))
}
