package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Element is a value in [0, p) for some prime field order p. Which field
// an Element belongs to is not tracked on the value itself — as in the
// teacher's style, callers are expected to only mix Elements produced by
// the same Field.
type Element uint64

// Field is a prime field F_p. The zero value is not valid; construct one
// with New or NewRandomPrime.
type Field struct {
	order uint64
}

// New constructs F_p for a caller-supplied prime order. It panics if
// order is not prime (checked with (*big.Int).ProbablyPrime); callers
// that need a fresh prime should use NewRandomPrime. Sketches that share
// one prime across many cells (as ssparse's recovery grid does) build
// the Field once and pass the value around, so the check runs once.
func New(order uint64) Field {
	if !new(big.Int).SetUint64(order).ProbablyPrime(20) {
		panic(fmt.Sprintf("field: order %d is not prime", order))
	}

	return Field{order: order}
}

// Order returns the field's prime order.
func (f Field) Order() uint64 { return f.order }

// NewRandomPrime draws a random prime of approximately bits bits and
// returns the field F_p over it. A probabilistic primality test is
// sufficient here — the field just needs a prime modulus, not a
// cryptographically hardened one — so this draws random candidates via
// crypto/rand and tests them with (*big.Int).ProbablyPrime, the standard
// library's Miller-Rabin/Baillie-PSW test (see DESIGN.md for why no
// third-party prime sampler was available to use instead).
func NewRandomPrime(bits uint) (Field, error) {
	if bits < 2 {
		bits = 2
	}

	candidate, err := rand.Prime(rand.Reader, int(bits))
	if err != nil {
		return Field{}, fmt.Errorf("field: generating a %d-bit prime: %w", bits, err)
	}
	if !candidate.IsUint64() {
		return Field{}, fmt.Errorf("field: generated prime exceeds 64 bits")
	}

	return Field{order: candidate.Uint64()}, nil
}

// PrimeBitsFor returns a safe prime bit length for fingerprinting a
// universe of size n without the fingerprint space colliding too often:
// ⌈3·log2(n)⌉ + 1.
func PrimeBitsFor(n uint64) uint {
	if n < 2 {
		return 3
	}

	bits := uint(0)
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	// bits now holds the bit length of n-1, which is exactly ⌈log2(n)⌉;
	// 3*bits+1 is therefore at least ⌈3 log2 n⌉ + 1, a safe
	// over-approximation.
	return 3*bits + 1
}

// ModP reduces v into [0, p).
func (f Field) ModP(v uint64) Element {
	return Element(v % f.order)
}

// ModPSigned lifts a signed integer into [0, p): non-negative values
// reduce directly, negative values are reduced by magnitude and
// subtracted from p.
func (f Field) ModPSigned(v int64) Element {
	if v >= 0 {
		return f.ModP(uint64(v))
	}

	mag := f.ModP(uint64(-v))
	if mag == 0 {
		return 0
	}

	return Element(f.order - uint64(mag))
}

// Add computes (x + y) mod p.
func (f Field) Add(x, y Element) Element {
	sum := new(big.Int).Add(big.NewInt(0).SetUint64(uint64(x)), big.NewInt(0).SetUint64(uint64(y)))
	sum.Mod(sum, new(big.Int).SetUint64(f.order))

	return Element(sum.Uint64())
}

// Neg computes (p - x) mod p.
func (f Field) Neg(x Element) Element {
	if x == 0 {
		return 0
	}

	return Element(f.order - uint64(x))
}

// Mul computes x*y mod p via a 128-bit-wide intermediate (big.Int here,
// since no example contributes a purpose-built uint128 mulmod and the
// stdlib's arbitrary-precision integer is the natural tool — see
// DESIGN.md): the product of two values below p can overflow 64 bits
// before the reduction, so the multiply itself must happen at wider
// precision.
func (f Field) Mul(x, y Element) Element {
	prod := new(big.Int).Mul(big.NewInt(0).SetUint64(uint64(x)), big.NewInt(0).SetUint64(uint64(y)))
	prod.Mod(prod, new(big.Int).SetUint64(f.order))

	return Element(prod.Uint64())
}

// Pow computes base^exp mod p via fast exponentiation:
// base^0 = 1, base^(2m) = (base^2)^m, base^(2m+1) = base * base^(2m).
func (f Field) Pow(base Element, exp uint64) Element {
	if exp == 0 {
		return Element(1 % f.order)
	}
	if exp%2 == 1 {
		return f.Mul(base, f.Pow(base, exp-1))
	}

	return f.Pow(f.Mul(base, base), exp/2)
}
