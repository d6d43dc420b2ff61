package core

import (
	"container/heap"
	"sync"
)

// Edge is an unordered pair of distinct vertex identifiers, with an
// optional label carried alongside. Two edges with the same endpoints in
// either order are the same edge; Canonical returns the (min, max)
// representation used wherever a single representation matters.
type Edge struct {
	U, V  int
	Label interface{}
}

// Canonical returns the edge's endpoints ordered (min, max).
func (e Edge) Canonical() (int, int) {
	if e.U <= e.V {
		return e.U, e.V
	}
	return e.V, e.U
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithCapacityHint preallocates the adjacency map for roughly n vertices,
// avoiding rehashing when the caller already knows the vertex-space size
// (as Clone does when copying an existing graph).
func WithCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[int]map[int]struct{}, n)
		}
	}
}

// degreeEntry is one record in the min-degree heap. Entries are pushed
// lazily on every degree change rather than decrease-keyed in place;
// RemoveMin and MinDegree skip stale entries (ones whose recorded degree
// no longer matches the vertex's live degree).
type degreeEntry struct {
	vertex int
	degree int
}

// degreeHeap implements container/heap.Interface as a min-heap over degree,
// grounded on the prim_kruskal edgePQ pattern (Len/Less/Swap/Push/Pop on a
// named slice type).
type degreeHeap []degreeEntry

func (h degreeHeap) Len() int            { return len(h) }
func (h degreeHeap) Less(i, j int) bool  { return h[i].degree < h[j].degree }
func (h degreeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *degreeHeap) Push(x interface{}) { *h = append(*h, x.(degreeEntry)) }
func (h *degreeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// Graph is a simple undirected graph over integer vertex identifiers.
// Self-loops are rejected with ErrSelfLoop, and re-adding an existing
// edge is a no-op, so parallel edges never form; this is the domain the
// coloring pipeline and edge index bijection (edgeindex.ToD1/FromD1)
// operate over.
type Graph struct {
	mu sync.RWMutex

	adjacency map[int]map[int]struct{}
	heap      degreeHeap
	// maxDegreeAtExtraction tracks the largest degree observed at the
	// moment a vertex was extracted by RemoveMin: the running maximum
	// over a smallest-last ordering is exactly the graph's degeneracy
	// once the heap has drained.
	maxDegreeAtExtraction int
}

// NewGraph constructs an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) pushDegree(v int) {
	heap.Push(&g.heap, degreeEntry{vertex: v, degree: len(g.adjacency[v])})
}
