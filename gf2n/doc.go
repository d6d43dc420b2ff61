// Package gf2n implements GF(2^n): polynomials of degree < n over GF(2),
// represented as the low n bits of a uint64, parameterized by a tabulated
// primitive polynomial. It underlies package hash's two-universal hash
// family.
package gf2n
