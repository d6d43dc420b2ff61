package l0sample

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/streamcolor/hash"
	"github.com/katalvlaran/streamcolor/onesparse"
)

// level pairs a one-sparse recoverer with the thinning hash filter that
// decides which stream updates reach it.
type level struct {
	recovery onesparse.Recovery
	hasher   hash.Hasher
}

// Sampler draws a coordinate from a turnstile stream's support with
// probability proportional to the inverse of the support's size. Zero
// value is not valid; construct with New.
type Sampler struct {
	n      uint64
	levels []level
}

// New builds an L0 sampler over a universe of size n with failure
// probability delta, allocating ceil(log2(n) * log2(1/delta)) levels,
// level l filtering the stream through a hash of range 2^l.
func New(n uint64, delta float64, rng *rand.Rand) (Sampler, error) {
	count := levelCount(n, delta)

	levels := make([]level, count)
	for l := uint64(0); l < count; l++ {
		recovery, err := onesparse.New(n, rng)
		if err != nil {
			return Sampler{}, err
		}

		hasher, err := hash.New(n, uint64(1)<<l, rng)
		if err != nil {
			return Sampler{}, err
		}

		levels[l] = level{recovery: recovery, hasher: hasher}
	}

	return Sampler{n: n, levels: levels}, nil
}

// levelCount computes ceil(log2(n) * log2(1/delta)), floored at one
// level so degenerate (n<=1 or delta>=1) parameters still sample.
func levelCount(n uint64, delta float64) uint64 {
	if n < 2 {
		n = 2
	}
	if delta <= 0 || delta >= 1 {
		delta = 0.5
	}

	raw := math.Log2(float64(n)) * math.Log2(1/delta)
	count := uint64(math.Ceil(raw))
	if count == 0 {
		count = 1
	}

	return count
}

// Feed applies one turnstile update to every level whose hash filter
// passes coordinate j.
func (s *Sampler) Feed(j uint64, insertion bool) {
	for i := range s.levels {
		if s.levels[i].hasher.IsZero(j) {
			s.levels[i].recovery.Feed(j, insertion)
		}
	}
}

// Query scans levels in increasing l and returns the first one whose
// one-sparse recoverer resolves to VeryLikely, as (index, weight, true).
// It returns (0, 0, false) when no level resolves.
func (s Sampler) Query() (index uint64, weight int64, ok bool) {
	for _, lvl := range s.levels {
		result := lvl.recovery.Query()
		if result.Outcome == onesparse.VeryLikely {
			return result.Index, result.Lambda, true
		}
	}

	return 0, 0, false
}
