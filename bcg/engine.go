package bcg

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
)

// ErrNoSketchSucceeded is returned by Query when every guess's recovery
// failed: the caller should retry with a larger sparsity constant or a
// different random seed.
var ErrNoSketchSucceeded = errors.New("bcg: every guessed degeneracy failed to recover")

// ErrVertexOutOfRange is returned by Feed when an endpoint falls outside
// [0, n).
var ErrVertexOutOfRange = errors.New("bcg: vertex out of range")

// Engine orchestrates one BCG sketch per degeneracy guess k = 2^i for
// i in [0, floor(log2 n)), feeding every stream token to all of them and
// reporting the smallest coloring any guess produces.
type Engine struct {
	n uint64

	// sketches holds one entry per guess index i; entries whose palette
	// size did not change from the prior guess point at the same
	// underlying Sketch as that prior entry.
	sketches []*Sketch
	// unique holds each distinct Sketch exactly once, in the order
	// created, so Feed and Query never touch one sketch twice.
	unique []*Sketch
}

// NewEngine builds one sketch per guess k = 2^i, i in [0, floor(log2 n)),
// reusing a guess's sketch for the next one whenever NewK reports its
// palette size is unchanged.
func NewEngine(n uint64, rng *rand.Rand, opts ...Option) (*Engine, error) {
	guesses := guessCount(n)

	e := &Engine{n: n}
	var prev *Sketch
	for i := 0; i < guesses; i++ {
		k := uint64(1) << uint(i)

		if prev == nil {
			sk, err := NewSketch(n, k, rng, opts...)
			if err != nil {
				return nil, fmt.Errorf("bcg: building guess k=%d: %w", k, err)
			}
			prev = sk
			e.unique = append(e.unique, sk)
		} else {
			next, changed, err := prev.NewK(k, rng)
			if err != nil {
				return nil, fmt.Errorf("bcg: building guess k=%d: %w", k, err)
			}
			if changed {
				e.unique = append(e.unique, next)
			}
			prev = next
		}
		e.sketches = append(e.sketches, prev)
	}

	return e, nil
}

// guessCount returns floor(log2(n)), floored at one so even a tiny
// vertex-space gets at least one guess.
func guessCount(n uint64) int {
	if n < 2 {
		return 1
	}

	return bits.Len64(n) - 1
}

// Feed validates the edge's endpoints and applies it to every distinct
// sketch the engine holds.
func (e *Engine) Feed(u, v uint64, insertion bool) error {
	if u >= e.n || v >= e.n {
		return fmt.Errorf("bcg: edge (%d,%d) against n=%d: %w", u, v, e.n, ErrVertexOutOfRange)
	}

	for _, sk := range e.unique {
		if err := sk.Feed(u, v, insertion); err != nil {
			return err
		}
	}

	return nil
}

// Query consumes every sketch and returns the coloring with the fewest
// distinct colors among those that succeeded. It returns
// ErrNoSketchSucceeded if none did.
func (e *Engine) Query() (map[uint64]ColorTuple, error) {
	var best map[uint64]ColorTuple
	bestCount := -1

	for _, sk := range e.unique {
		colors, ok := sk.Query()
		if !ok {
			continue
		}

		count := ColorCount(colors)
		if bestCount == -1 || count < bestCount {
			best, bestCount = colors, count
		}
	}

	if bestCount == -1 {
		return nil, ErrNoSketchSucceeded
	}

	return best, nil
}
