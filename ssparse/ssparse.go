package ssparse

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/streamcolor/field"
	"github.com/katalvlaran/streamcolor/hash"
	"github.com/katalvlaran/streamcolor/onesparse"
)

// ErrDeltaOutOfRange is returned by New when delta is not strictly
// between 0 and 1: rowCount's log2(s/delta) is +Inf at delta = 0 and
// undefined below it, and a delta of 1 or more is not a failure
// probability worth sizing a grid for.
var ErrDeltaOutOfRange = errors.New("ssparse: delta must be in (0, 1)")

// Recovery is a grid of t rows by 2s one-sparse recoverers (package
// onesparse), each row addressed by an independent two-universal hash
// (package hash) mapping the n-coordinate universe down to 2s buckets.
// It recovers any implicit vector with at most s nonzero coordinates.
type Recovery struct {
	n, s uint64

	rows    [][]onesparse.Recovery
	hashers []hash.Hasher
}

// New builds an s-sparse recoverer for a universe of size n, sparsity s,
// and target failure probability delta. Rows() reports the resulting
// row count t = ceil(log2(s/delta)). Returns ErrDeltaOutOfRange if delta
// is not in (0, 1).
func New(n, s uint64, delta float64, rng *rand.Rand) (Recovery, error) {
	if delta <= 0 || delta >= 1 {
		return Recovery{}, fmt.Errorf("ssparse: delta=%v: %w", delta, ErrDeltaOutOfRange)
	}

	t := rowCount(s, delta)

	f, err := field.NewRandomPrime(field.PrimeBitsFor(n))
	if err != nil {
		return Recovery{}, err
	}

	bucketCount := 2 * s
	hashRange := hash.NextPowerOfTwo(bucketCount)

	rows := make([][]onesparse.Recovery, t)
	hashers := make([]hash.Hasher, t)
	for row := uint64(0); row < t; row++ {
		cells := make([]onesparse.Recovery, bucketCount)
		for c := range cells {
			cells[c] = onesparse.NewWithField(n, f, rng)
		}
		rows[row] = cells

		h, err := hash.New(n, hashRange, rng)
		if err != nil {
			return Recovery{}, err
		}
		hashers[row] = h
	}

	return Recovery{n: n, s: s, rows: rows, hashers: hashers}, nil
}

// Rows reports the recoverer's row count t.
func (r Recovery) Rows() int { return len(r.rows) }

// rowCount computes t = ceil(log2(s/delta)), with a floor of one row so
// a degenerate (s=1, delta close to 1) configuration still sketches.
// Callers must validate delta is in (0, 1) before calling this.
func rowCount(s uint64, delta float64) uint64 {
	ratio := float64(s) / delta
	t := uint64(math.Ceil(math.Log2(ratio)))
	if t == 0 {
		t = 1
	}

	return t
}

// Feed applies one turnstile update across every row. A row's hash may
// (by construction) land in a bucket beyond the 2s the row actually
// holds, in which case that row silently ignores the update — exactly
// the grid's other t-1 rows still see it.
func (r *Recovery) Feed(j uint64, insertion bool) {
	for row := range r.rows {
		idx := r.hashers[row].Compute(j)
		if idx >= uint64(len(r.rows[row])) {
			continue
		}
		r.rows[row][idx].Feed(j, insertion)
	}
}

// Query reconstructs the implicit vector's dense representation. It
// returns (vector, true) when every row's recovered coordinates agree
// and at most s distinct coordinates were found, and (nil, false)
// when any row's one-sparse recoverer reports an inconsistency or
// sparsity has been exceeded.
func (r Recovery) Query() ([]int64, bool) {
	recovered := make(map[uint64]int64)

	for _, row := range r.rows {
		for _, cell := range row {
			res := cell.Query()
			if res.Outcome != onesparse.VeryLikely || res.Lambda == 0 {
				continue
			}

			if existing, ok := recovered[res.Index]; ok && existing != res.Lambda {
				return nil, false
			}
			recovered[res.Index] = res.Lambda

			if uint64(len(recovered)) > r.s {
				return nil, false
			}
		}
	}

	vector := make([]int64, r.n)
	for idx, lambda := range recovered {
		vector[idx] += lambda
	}

	return vector, true
}
