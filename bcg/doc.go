// Package bcg implements the BCG streaming graph colorer: a sketch that
// guesses a graph's degeneracy k, randomly partitions vertices into a
// palette, detects monochromatic edges via s-sparse recovery (package
// ssparse), and recolors each palette class's recovered subgraph with
// the static degeneracy colorer (package coloring) to produce a proper
// coloring using few colors when the guess is accurate.
//
// Engine is the orchestrator: it runs several guesses in parallel over
// one token stream and reports the smallest coloring any guess produced.
package bcg
