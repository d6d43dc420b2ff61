package core

// Clone returns a deep copy of the graph: same vertices and edges, but an
// independent adjacency map and heap. coloring.Degeneracy clones the input
// graph before destructively draining it via RemoveMin, so the original
// adjacency remains available for the greedy coloring pass's neighbor
// lookups.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacityHint(len(g.adjacency)))
	for v, adj := range g.adjacency {
		cp := make(map[int]struct{}, len(adj))
		for u := range adj {
			cp[u] = struct{}{}
		}
		clone.adjacency[v] = cp
		clone.pushDegree(v)
	}

	return clone
}
