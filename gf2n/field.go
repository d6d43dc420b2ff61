package gf2n

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
)

// Element is a polynomial of degree < n over GF(2), stored as the low n
// bits of a uint64.
type Element uint64

// ErrDegreeOutOfRange is returned when New is asked for a degree outside
// the tabulated primitive-polynomial range [2, 22].
var ErrDegreeOutOfRange = errors.New("gf2n: degree must be in [2, 22]")

// primitivePolynomials maps degree -> the minimal primitive polynomial of
// that degree over GF(2), encoded as an integer whose bits are the
// polynomial's coefficients (constant term at bit 0). Table based on
// original_source's Primitive::of_degree.
var primitivePolynomials = map[uint8]uint64{
	2: 7, 3: 11, 4: 25, 5: 37, 6: 67, 7: 185, 8: 355, 9: 623, 10: 1933,
	11: 2091, 12: 4179, 13: 14513, 14: 16707, 15: 32771, 16: 66525,
	17: 131081, 18: 262207, 19: 524327, 20: 1048585, 21: 2097157, 22: 4194307,
}

// Field is GF(2^n) for some degree n, parameterized by a primitive
// polynomial. The zero value is not valid; construct one with New or
// NewWithIrreducible.
type Field struct {
	degree      uint8
	irreducible uint64
}

// New constructs GF(2^degree) using the tabulated primitive polynomial for
// that degree. degree must be in [2, 22], the range primitivePolynomials
// tabulates — comfortably sufficient for every domain size this module's
// sketches use.
func New(degree uint8) (Field, error) {
	irr, ok := primitivePolynomials[degree]
	if !ok {
		return Field{}, fmt.Errorf("gf2n: degree %d: %w", degree, ErrDegreeOutOfRange)
	}

	return Field{degree: degree, irreducible: irr}, nil
}

// NewWithIrreducible constructs GF(2^degree) over a caller-supplied
// primitive polynomial, bypassing the built-in table.
func NewWithIrreducible(degree uint8, irreducible uint64) Field {
	return Field{degree: degree, irreducible: irreducible}
}

// Degree returns n, the field's degree.
func (f Field) Degree() uint8 { return f.degree }

// Order returns 2^n, the number of elements in the field.
func (f Field) Order() uint64 { return uint64(1) << f.degree }

// Elem reduces an arbitrary uint64 into a field element.
func (f Field) Elem(v uint64) Element {
	return Element(f.reduce(v))
}

// Sample draws a uniformly random field element using rng.
func (f Field) Sample(rng *rand.Rand) Element {
	mask := f.Order() - 1
	return Element(rng.Uint64() & mask)
}

// Add computes x XOR y: addition in GF(2^n) is bitwise XOR, since
// coefficients live in GF(2).
func (f Field) Add(x, y Element) Element {
	return Element(uint64(x) ^ uint64(y))
}

// Mul computes x*y in GF(2^n): a carry-less (XOR) multiply of the two
// polynomials, reduced against the field's primitive polynomial.
func (f Field) Mul(x, y Element) Element {
	var acc uint64

	xv, yv := uint64(x), uint64(y)
	for shift := 0; yv != 0; shift++ {
		if yv&1 == 1 {
			acc ^= xv << uint(shift)
		}
		yv >>= 1
	}

	return Element(f.reduce(acc))
}

// reduce folds v down to fewer than or equal to f.degree significant
// bits by repeatedly XOR-ing in the primitive polynomial shifted to align
// its top bit with v's.
func (f Field) reduce(v uint64) uint64 {
	for bits.Len64(v) > int(f.degree) {
		shift := uint(bits.Len64(v) - bits.Len64(f.irreducible))
		v ^= f.irreducible << shift
	}

	return v
}
