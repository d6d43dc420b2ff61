package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamcolor/coloring"
	"github.com/katalvlaran/streamcolor/core"
)

func TestDegeneracyOnTriangleUsesThreeColors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	result := coloring.Degeneracy(g)

	distinct := make(map[int]struct{})
	for _, c := range result.Colors {
		distinct[c] = struct{}{}
	}
	require.Len(t, distinct, 3)

	for _, e := range g.EdgesList() {
		require.NotEqual(t, result.Colors[e.U], result.Colors[e.V], "edge (%d,%d) must be properly colored", e.U, e.V)
	}
}

func TestDegeneracyIsProperOnPath(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	result := coloring.Degeneracy(g)
	require.Equal(t, 1, result.Degeneracy)

	for _, e := range g.EdgesList() {
		require.NotEqual(t, result.Colors[e.U], result.Colors[e.V])
	}
	for _, c := range result.Colors {
		require.Less(t, c, result.Degeneracy+1) // at most k+1 colors
	}
}

func TestSetsGroupsByColor(t *testing.T) {
	colors := map[int]int{0: 0, 1: 1, 2: 0, 3: 2}
	sets := coloring.Sets(colors)

	require.Equal(t, []int{0, 2}, sets[0])
	require.Equal(t, []int{1}, sets[1])
	require.Equal(t, []int{3}, sets[2])
}

func TestDegeneracyOnEdgelessGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))

	result := coloring.Degeneracy(g)
	require.Equal(t, 0, result.Colors[0])
	require.Equal(t, 0, result.Colors[1])
}
