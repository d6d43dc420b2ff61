package onesparse

import (
	"math/rand"

	"github.com/katalvlaran/streamcolor/field"
)

// Outcome classifies the result of Query.
type Outcome int

const (
	// Zero means the implicit vector has no net weight anywhere.
	Zero Outcome = iota
	// VeryLikely means the recoverer believes the vector has exactly one
	// nonzero coordinate, at Index, with weight Lambda. The belief is
	// correct with high probability, not certainty.
	VeryLikely
	// NotOneSparse means the fingerprint proves the vector is not
	// 1-sparse (or is the zero vector on some, but not all, channels).
	NotOneSparse
)

// Result is the outcome of a Query, carrying the recovered coordinate
// and its net weight when Outcome is VeryLikely.
type Result struct {
	Outcome Outcome
	Lambda  int64
	Index   uint64
}

// Recovery is a 1-sparse recovery fingerprint over a turnstile stream of
// (coordinate, insertion/deletion) updates to an implicit vector of
// dimension n. It maintains three running values: l (net weight), z
// (weighted index sum), and p (a field fingerprint).
type Recovery struct {
	n     uint64
	field field.Field
	r     field.Element

	l int64
	z int64
	p field.Element
}

// New builds a 1-sparse recoverer for a universe of size n, drawing its
// own prime field sized by field.PrimeBitsFor(n) — large enough that a
// false positive (two distinct coordinates whose fingerprints collide)
// is vanishingly unlikely — and a uniformly random base r in that field.
func New(n uint64, rng *rand.Rand) (Recovery, error) {
	f, err := field.NewRandomPrime(field.PrimeBitsFor(n))
	if err != nil {
		return Recovery{}, err
	}

	return NewWithField(n, f, rng), nil
}

// NewWithField builds a 1-sparse recoverer over a caller-supplied field —
// used when many recoverers (as in package ssparse's grid) must share one
// prime to stay comparable, instead of each drawing its own.
func NewWithField(n uint64, f field.Field, rng *rand.Rand) Recovery {
	return Recovery{
		n:     n,
		field: f,
		r:     f.ModP(rng.Uint64()),
	}
}

// Feed applies one turnstile update: insertion adds weight 1 at
// coordinate j, deletion subtracts it.
func (rec *Recovery) Feed(j uint64, insertion bool) {
	delta := int64(1)
	power := rec.field.Pow(rec.r, j)
	if insertion {
		rec.p = rec.field.Add(rec.p, power)
	} else {
		delta = -1
		rec.p = rec.field.Add(rec.p, rec.field.Neg(power))
	}

	rec.l += delta
	rec.z += delta * int64(j)
}

// Query inspects the accumulated fingerprint and classifies the implicit
// vector: it is declared Zero only when all three running values are
// exactly zero; otherwise it is 1-sparse only
// if z divides evenly by l into an index inside [0, n) whose fingerprint
// contribution matches p exactly.
func (rec Recovery) Query() Result {
	if rec.l == 0 && rec.z == 0 && rec.p == 0 {
		return Result{Outcome: Zero}
	}
	if rec.l == 0 || rec.z%rec.l != 0 {
		return Result{Outcome: NotOneSparse}
	}

	index := rec.z / rec.l
	if index < 0 || uint64(index) >= rec.n {
		return Result{Outcome: NotOneSparse}
	}

	expected := rec.field.Mul(rec.field.ModPSigned(rec.l), rec.field.Pow(rec.r, uint64(index)))
	if rec.p != expected {
		return Result{Outcome: NotOneSparse}
	}

	return Result{Outcome: VeryLikely, Lambda: rec.l, Index: uint64(index)}
}
