package coloring

import (
	"sort"

	"github.com/katalvlaran/streamcolor/core"
)

// Result is a proper vertex coloring: a color assignment per vertex,
// together with the degeneracy bound the smallest-last ordering
// observed while producing it.
type Result struct {
	Colors     map[int]int
	Degeneracy int
}

// Degeneracy computes the smallest-last ordering on a disposable clone of
// g, draining it via RemoveMin, and greedily assigns each vertex (in
// reverse extraction order) the smallest non-negative color absent from
// its already-colored neighbors in the original graph g. The result uses
// at most Degeneracy+1 colors and is proper.
func Degeneracy(g *core.Graph) Result {
	clone := g.Clone()

	ordering := make([]int, 0, g.VertexCount())
	for {
		v, ok := clone.RemoveMin()
		if !ok {
			break
		}
		ordering = append(ordering, v)
	}

	for i, j := 0, len(ordering)-1; i < j; i, j = i+1, j-1 {
		ordering[i], ordering[j] = ordering[j], ordering[i]
	}

	colors := make(map[int]int, len(ordering))
	for _, v := range ordering {
		colors[v] = firstAvailableColor(g, colors, v)
	}

	return Result{Colors: colors, Degeneracy: clone.Degeneracy()}
}

// firstAvailableColor returns the smallest non-negative integer not
// already used by any colored neighbor of v in g.
func firstAvailableColor(g *core.Graph, colors map[int]int, v int) int {
	neighbors, err := g.Neighbors(v)
	if err != nil {
		return 0
	}

	used := make(map[int]struct{}, len(neighbors))
	for _, u := range neighbors {
		if c, ok := colors[u]; ok {
			used[c] = struct{}{}
		}
	}

	color := 0
	for {
		if _, taken := used[color]; !taken {
			return color
		}
		color++
	}
}

// Sets inverts a coloring into a map from color to its sorted member
// vertices, for callers that want to inspect a color class directly.
func Sets(colors map[int]int) map[int][]int {
	sets := make(map[int][]int)
	for v, c := range colors {
		sets[c] = append(sets[c], v)
	}
	for _, members := range sets {
		sort.Ints(members)
	}

	return sets
}
