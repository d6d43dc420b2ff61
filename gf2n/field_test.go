package gf2n_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamcolor/gf2n"
)

func TestNewRejectsUntabulatedDegree(t *testing.T) {
	_, err := gf2n.New(1)
	require.ErrorIs(t, err, gf2n.ErrDegreeOutOfRange)
}

func TestAddIsXOR(t *testing.T) {
	f, err := gf2n.New(4)
	require.NoError(t, err)

	require.Equal(t, gf2n.Element(0b1010), f.Add(0b0110, 0b1100))
}

func TestMulReducesToDegree(t *testing.T) {
	f, err := gf2n.New(4)
	require.NoError(t, err)

	// Every product must fit in the low 4 bits.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := f.Elem(rng.Uint64())
		y := f.Elem(rng.Uint64())
		product := f.Mul(x, y)
		require.Less(t, uint64(product), f.Order())
	}
}

func TestMulIdentity(t *testing.T) {
	f, err := gf2n.New(8)
	require.NoError(t, err)

	x := f.Elem(0b10110101)
	require.Equal(t, x, f.Mul(x, 1))
}

func TestSampleStaysInRange(t *testing.T) {
	f, err := gf2n.New(6)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		require.Less(t, uint64(f.Sample(rng)), f.Order())
	}
}

func TestElemReducesOversizedInput(t *testing.T) {
	f, err := gf2n.New(3)
	require.NoError(t, err)

	e := f.Elem(0xFFFFFFFF)
	require.Less(t, uint64(e), f.Order())
}
