package core

import (
	"container/heap"
	"sort"
)

// AddVertex inserts v with no incident edges. Idempotent: adding an
// existing vertex is a no-op. Complexity: O(log V) amortized (one heap
// push).
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return ErrNegativeVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[v]; ok {
		return nil
	}
	g.adjacency[v] = make(map[int]struct{})
	g.pushDegree(v)

	return nil
}

// HasVertex reports whether v is present in the graph.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]
	return ok
}

// Vertices returns every vertex currently in the graph, in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices currently in the graph.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency) == 0
}

// RemoveVertex deletes v and every edge incident to it, updating the
// degree of every former neighbor. Complexity: O(deg(v) log V).
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeVertexLocked(v)
}

func (g *Graph) removeVertexLocked(v int) error {
	neighbors, ok := g.adjacency[v]
	if !ok {
		return ErrVertexNotFound
	}

	for u := range neighbors {
		delete(g.adjacency[u], v)
		g.pushDegree(u)
	}
	delete(g.adjacency, v)

	return nil
}

// MinDegree returns the vertex with the smallest current degree, without
// removing it. ok is false iff the graph is empty. Complexity: O(log V)
// amortized (stale heap entries, pushed by prior degree changes, are
// discarded on the fly).
func (g *Graph) MinDegree() (vertex int, degree int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.peekMinLocked()
}

func (g *Graph) peekMinLocked() (vertex int, degree int, ok bool) {
	for g.heap.Len() > 0 {
		top := g.heap[0]
		live, present := g.adjacency[top.vertex]
		if !present || len(live) != top.degree {
			heap.Pop(&g.heap)
			continue
		}
		return top.vertex, top.degree, true
	}

	return 0, 0, false
}

// RemoveMin extracts the vertex of minimum current degree (ties broken by
// heap order, which is deterministic for a fixed sequence of operations)
// and removes it from the graph — the core step of smallest-last
// ordering, which package coloring's degeneracy colorer drives by calling
// RemoveMin until the graph is empty. ok is false iff the graph is empty.
// It also records the extracted degree as a running maximum, which
// equals the graph's degeneracy once the graph is fully drained; see
// Degeneracy.
func (g *Graph) RemoveMin() (vertex int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, d, found := g.peekMinLocked()
	if !found {
		return 0, false
	}
	heap.Pop(&g.heap)

	if d > g.maxDegreeAtExtraction {
		g.maxDegreeAtExtraction = d
	}

	if err := g.removeVertexLocked(v); err != nil {
		return 0, false
	}

	return v, true
}

// Degeneracy returns the largest degree observed across every RemoveMin
// extraction so far. Once a caller has drained the graph via RemoveMin
// until IsEmpty, this equals the graph's degeneracy k: the smallest k
// for which every subgraph has a vertex of degree at most k.
func (g *Graph) Degeneracy() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxDegreeAtExtraction
}
