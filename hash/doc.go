// Package hash implements a two-universal hash family: h(x) = (a·x + b)
// AND mask, computed in GF(2^n) with a, b drawn uniformly at random. It
// is the hashing primitive package ssparse uses to route stream
// coordinates into its recovery grid, and package l0sample uses to build
// its geometrically-thinning filters.
package hash
