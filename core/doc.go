// Package core provides the minimal graph container the streaming and
// static coloring pipelines are built on: a simple undirected graph over
// integer vertex identifiers in [0, n), with constant-time adjacency
// queries and a lazily-updated min-degree heap for smallest-last ordering.
//
// Graph is intentionally narrow: vertex and edge insertion/removal,
// adjacency and degree queries, min-degree extraction (MinDegree,
// RemoveMin, Degeneracy), and Clone. coloring.Degeneracy drives it via
// Clone, VertexCount, RemoveMin, Neighbors and Degeneracy;
// bcg.Sketch.Query builds graphs with NewGraph and AddEdge. It is not a general-purpose
// graph library; weighting, directedness, and multigraphs are out of scope.
//
// Graph guards its maps with a single sync.RWMutex, in keeping with the
// rest of this module's ambient concurrency posture, even though the
// coloring pipeline itself drives a Graph from a single goroutine per
// sketch (see bcg's single-threaded cooperative model).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrNegativeVertex indicates a vertex identifier outside the valid domain.
	ErrNegativeVertex = errors.New("core: vertex identifiers must be non-negative")
)
