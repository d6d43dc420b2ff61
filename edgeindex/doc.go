// Package edgeindex implements the bijection between undirected edges
// {u, v} (u < v) over a vertex universe of size n and a dense integer
// range [0, C(n,2)), used to feed edges into the sparse-recovery and
// sampling primitives as plain stream coordinates.
package edgeindex
