// Package coloring implements the static degeneracy colorer: smallest-
// last vertex ordering followed by greedy color assignment, producing a
// proper coloring in at most k+1 colors for a graph of degeneracy k.
// It operates on package core's Graph, and is also the
// recoloring step package bcg's streaming colorer calls on each
// recovered palette-class subgraph.
package coloring
