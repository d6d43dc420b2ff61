// Package l0sample implements L0 sampling: given a turnstile stream, it
// returns a coordinate drawn (with high probability) uniformly over the
// support of the implicit vector, by running log2(n)*log2(1/delta)
// geometric levels of a thinning hash filter feeding a one-sparse
// recoverer in parallel, and returning the first level to resolve.
package l0sample
