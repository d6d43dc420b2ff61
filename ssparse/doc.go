// Package ssparse implements s-sparse recovery: a turnstile-stream sketch
// that exactly recovers an implicit vector with at most s nonzero
// coordinates, built as a t-row by 2s-column grid of one-sparse
// recoverers (package onesparse), each row keyed by an independent hash
// (package hash). t = ceil(log2(s/delta)) rows suffice to push the
// failure probability below delta.
package ssparse
