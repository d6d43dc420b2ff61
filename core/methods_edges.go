package core

import "sort"

// AddEdge connects u and v. Both endpoints are created via AddVertex if
// they do not already exist, mirroring the teacher's "ensure vertices
// exist" step. Self-loops return ErrSelfLoop; adding an edge that already
// exists is a no-op (this graph has no parallel-edge concept to enforce,
// since the coloring pipeline never needs one). Complexity: O(log V)
// amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return ErrNegativeVertex
	}
	if u == v {
		return ErrSelfLoop
	}

	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, already := g.adjacency[u][v]; already {
		return nil
	}

	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.pushDegree(u)
	g.pushDegree(v)

	return nil
}

// RemoveEdge disconnects u and v. Returns ErrVertexNotFound if either
// endpoint is missing; removing an edge that does not exist between two
// present vertices is a no-op.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[v]; !ok {
		return ErrVertexNotFound
	}

	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.pushDegree(u)
	g.pushDegree(v)

	return nil
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]
	return ok
}

// Neighbors returns the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]int, 0, len(adj))
	for u := range adj {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the current degree of v.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// EdgesList returns every edge in the graph, each endpoint pair reported once
// in canonical (min, max) order, sorted by (U, V).
func (g *Graph) EdgesList() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0)
	for u, adj := range g.adjacency {
		for v := range adj {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for u, adj := range g.adjacency {
		for v := range adj {
			if u < v {
				count++
			}
		}
	}

	return count
}
