package bcg

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/streamcolor/coloring"
	"github.com/katalvlaran/streamcolor/core"
	"github.com/katalvlaran/streamcolor/edgeindex"
	"github.com/katalvlaran/streamcolor/ssparse"
)

// DefaultSparsityConstant is the constant C in s = ceil(C * n * log2(n)),
// taken from original_source's streaming coloring constructor.
const DefaultSparsityConstant = 15.0

// DefaultDelta is the s-sparse recovery failure probability a Sketch
// builds its recovery grid with, absent an explicit WithDelta.
const DefaultDelta = 0.5

// ErrSketchAlreadyQueried is returned by Feed once Query has run: a
// Sketch's state machine is NEW -> FEEDING -> QUERIED, with QUERIED
// terminal — Query rewrites the sketch's vertex colors in place, so an
// edge fed afterwards would be tested against the recolored palette
// rather than the one the recovery grid was built on.
var ErrSketchAlreadyQueried = errors.New("bcg: sketch already queried")

// ColorTuple is a two-part color: BatchID 0 marks a vertex's original
// random palette assignment; BatchID c+1 marks a vertex recolored while
// resolving palette class c's recovered monochromatic subgraph. Two
// vertices share a final color only if they share both parts.
type ColorTuple struct {
	BatchID      int
	PaletteIndex int
}

// config holds the tunable constants a Sketch is built with.
type config struct {
	sparsityConstant float64
	delta            float64
}

// Option customizes Sketch/Engine construction.
type Option func(*config)

// WithSparsityConstant overrides the constant C used to size s.
func WithSparsityConstant(c float64) Option {
	return func(cfg *config) { cfg.sparsityConstant = c }
}

// WithDelta overrides the s-sparse recovery's target failure probability.
func WithDelta(delta float64) Option {
	return func(cfg *config) { cfg.delta = delta }
}

func defaultConfig() config {
	return config{sparsityConstant: DefaultSparsityConstant, delta: DefaultDelta}
}

// Sketch is a single BCG guess at degeneracy k over a vertex-space of
// size n.
type Sketch struct {
	n, k, s     uint64
	paletteSize uint64
	cfg         config

	colors   []ColorTuple
	recovery ssparse.Recovery
	queried  bool
}

// NewSketch builds a fresh sketch: a uniformly random palette assignment
// over n vertices and an s-sparse recovery grid over the n(n-1)/2 edge
// domain.
func NewSketch(n, k uint64, rng *rand.Rand, opts ...Option) (*Sketch, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := sparsityFor(n, cfg.sparsityConstant)

	return newSketchWithS(n, k, s, rng, cfg)
}

func newSketchWithS(n, k, s uint64, rng *rand.Rand, cfg config) (*Sketch, error) {
	paletteSize := paletteSizeFor(n, k, s)

	colors := make([]ColorTuple, n)
	for i := range colors {
		colors[i] = ColorTuple{BatchID: 0, PaletteIndex: rng.Intn(int(paletteSize))}
	}

	domain := edgeindex.Combination(n, 2)
	recovery, err := ssparse.New(domain, s, cfg.delta, rng)
	if err != nil {
		return nil, fmt.Errorf("bcg: building recovery for n=%d k=%d: %w", n, k, err)
	}

	return &Sketch{
		n: n, k: k, s: s,
		paletteSize: paletteSize,
		cfg:         cfg,
		colors:      colors,
		recovery:    recovery,
	}, nil
}

// sparsityFor computes s = ceil(C * n * log2(n)), floored at one.
func sparsityFor(n uint64, sparsityConstant float64) uint64 {
	if n < 2 {
		return 1
	}

	raw := math.Ceil(sparsityConstant * float64(n) * math.Log2(float64(n)))
	if raw < 1 {
		raw = 1
	}

	return uint64(raw)
}

// paletteSizeFor computes L = ceil(2*n*k / s), floored at one.
func paletteSizeFor(n, k, s uint64) uint64 {
	if s == 0 {
		return 1
	}

	raw := math.Ceil(float64(2*n*k) / float64(s))
	if raw < 1 {
		raw = 1
	}

	return uint64(raw)
}

// NewK produces a sketch for a new degeneracy guess k2. If k2's palette
// size matches sk's, sk itself is returned unchanged (changed=false):
// the existing random partition already serves the new guess. Otherwise
// a fresh sketch is built, reusing sk's already-computed s instead of
// re-deriving it from n — the sizing carries over across guesses, but
// the accumulated recovery state itself is guess-specific and cannot.
func (sk *Sketch) NewK(k2 uint64, rng *rand.Rand) (fresh *Sketch, changed bool, err error) {
	candidatePalette := paletteSizeFor(sk.n, k2, sk.s)
	if candidatePalette == sk.paletteSize {
		return sk, false, nil
	}

	next, err := newSketchWithS(sk.n, k2, sk.s, rng, sk.cfg)
	if err != nil {
		return nil, false, err
	}

	return next, true, nil
}

// Feed applies one turnstile edge update: an edge is only ever fed into
// the recovery grid when both endpoints currently share a color
// (monochromatic); otherwise it is ignored, since an edge between two
// differently-colored vertices is already properly colored.
func (sk *Sketch) Feed(u, v uint64, insertion bool) error {
	if sk.queried {
		return ErrSketchAlreadyQueried
	}

	if sk.colors[u] != sk.colors[v] {
		return nil
	}

	d := edgeindex.ToD1(u, v)
	sk.recovery.Feed(d, insertion)

	return nil
}

// Query consumes the accumulated recovery: on success, it partitions the
// recovered monochromatic edges by palette class, recolors each
// resulting subgraph with the static degeneracy colorer, and returns the
// updated vertex -> color mapping. It returns ok=false if the recovery
// itself failed.
func (sk *Sketch) Query() (colors map[uint64]ColorTuple, ok bool) {
	sk.queried = true

	vector, recovered := sk.recovery.Query()
	if !recovered {
		return nil, false
	}

	classGraphs := make(map[int]*core.Graph)
	for d, weight := range vector {
		if weight == 0 {
			continue
		}

		u, v := edgeindex.FromD1(uint64(d))
		if u >= sk.n || v >= sk.n {
			continue
		}

		cu, cv := sk.colors[u], sk.colors[v]
		if cu != cv || cu.BatchID != 0 {
			continue
		}

		g, present := classGraphs[cu.PaletteIndex]
		if !present {
			g = core.NewGraph()
			classGraphs[cu.PaletteIndex] = g
		}
		_ = g.AddEdge(int(u), int(v))
	}

	for class, g := range classGraphs {
		result := coloring.Degeneracy(g)
		for vertex, newColor := range result.Colors {
			if newColor == 0 {
				continue
			}
			sk.colors[vertex] = ColorTuple{BatchID: class + 1, PaletteIndex: newColor}
		}
	}

	out := make(map[uint64]ColorTuple, sk.n)
	for v := uint64(0); v < sk.n; v++ {
		out[v] = sk.colors[v]
	}

	return out, true
}

// ColorCount counts the distinct ColorTuple values a query result uses.
func ColorCount(colors map[uint64]ColorTuple) int {
	distinct := make(map[ColorTuple]struct{}, len(colors))
	for _, c := range colors {
		distinct[c] = struct{}{}
	}

	return len(distinct)
}
