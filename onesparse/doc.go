// Package onesparse implements 1-sparse recovery: a turnstile-stream
// fingerprint (l, z, p) over a prime field that recovers the (index,
// weight) of a single nonzero coordinate of an implicit vector, or
// reports that the vector is zero or not 1-sparse.
//
// This is the innermost primitive the s-sparse recovery grid (package
// ssparse) and the L0 sampler (package l0sample) are built from.
package onesparse
