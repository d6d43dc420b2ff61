package hash

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/katalvlaran/streamcolor/gf2n"
)

// ErrRangeNotPowerOfTwo is returned when New is asked for a range that is
// not a power of two: the mask-based reduction h(x) AND mask only maps
// uniformly onto [0, rangeSize) when rangeSize is a power of two.
var ErrRangeNotPowerOfTwo = errors.New("hash: range must be a power of two")

// Hasher computes h(x) = (a·x + b) AND mask within GF(2^n), a member of a
// two-universal family: for any distinct x, y in the domain, the
// probability over random a, b that h(x) == h(y) is at most 1/rangeSize.
type Hasher struct {
	field gf2n.Field
	a, b  gf2n.Element
	mask  uint64
}

// New constructs a hash function from a domain of size domain to a range
// of size rangeSize. The domain is rounded up to the next power of two
// implicitly; rangeSize MUST already be a power of two, or New returns
// ErrRangeNotPowerOfTwo.
func New(domain, rangeSize uint64, rng *rand.Rand) (Hasher, error) {
	if rangeSize == 0 || rangeSize&(rangeSize-1) != 0 {
		return Hasher{}, fmt.Errorf("hash: range=%d: %w", rangeSize, ErrRangeNotPowerOfTwo)
	}

	degree := degreeFor(NextPowerOfTwo(domain))
	field, err := gf2n.New(degree)
	if err != nil {
		return Hasher{}, fmt.Errorf("hash: building GF(2^%d) for domain %d: %w", degree, domain, err)
	}

	return Hasher{
		field: field,
		a:     field.Sample(rng),
		b:     field.Sample(rng),
		mask:  rangeSize - 1,
	}, nil
}

// Compute evaluates h(x).
func (h Hasher) Compute(x uint64) uint64 {
	xe := h.field.Elem(x)
	return uint64(h.field.Add(h.field.Mul(h.a, xe), h.b)) & h.mask
}

// IsZero reports whether h(x) == 0.
func (h Hasher) IsZero(x uint64) bool {
	return h.Compute(x) == 0
}

// RandomCopy returns a new Hasher over the same field and range, with
// freshly sampled coefficients a, b — used to cheaply derive the t
// independent row hashers of s-sparse recovery without rebuilding the
// underlying GF(2^n) field for each row.
func (h Hasher) RandomCopy(rng *rand.Rand) Hasher {
	return Hasher{
		field: h.field,
		a:     h.field.Sample(rng),
		b:     h.field.Sample(rng),
		mask:  h.mask,
	}
}

// NextPowerOfTwo rounds x up to the next power of two (x itself, if it
// already is one). NextPowerOfTwo(0) is 1.
func NextPowerOfTwo(x uint64) uint64 {
	if x <= 1 {
		return 1
	}

	return uint64(1) << bits.Len64(x-1)
}

// degreeFor returns the smallest degree such that 2^degree >= pow2Domain,
// clamped to gf2n's tabulated minimum of 2. pow2Domain is already a power
// of two here, so this is exactly log2(pow2Domain).
func degreeFor(pow2Domain uint64) uint8 {
	if pow2Domain <= 1 {
		return 2
	}

	degree := uint8(bits.Len64(pow2Domain - 1))
	if degree < 2 {
		degree = 2
	}

	return degree
}
