package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamcolor/field"
)

func testField() field.Field {
	return field.New(23)
}

func TestModPSignedPositive(t *testing.T) {
	require.Equal(t, field.Element(7), testField().ModPSigned(30))
}

func TestModPSignedNegative(t *testing.T) {
	require.Equal(t, field.Element(3), testField().ModPSigned(-20))
}

func TestPow(t *testing.T) {
	f := testField()
	base := f.ModPSigned(-20)

	require.Equal(t, field.Element(3), f.Pow(base, 100))
}

func TestMul(t *testing.T) {
	f := testField()
	v1 := f.ModPSigned(-20)
	v2 := f.ModPSigned(5)

	require.Equal(t, field.Element(15), f.Mul(v1, v2))
}

func TestAdd(t *testing.T) {
	f := testField()
	v1 := f.ModPSigned(-20)
	v2 := f.ModPSigned(5)

	require.Equal(t, field.Element(8), f.Add(v1, v2))
}

func TestNegOfNegative(t *testing.T) {
	f := testField()
	v1 := f.ModPSigned(-20)

	require.Equal(t, field.Element(20), f.Neg(v1))
}

func TestNegOfPositive(t *testing.T) {
	f := testField()
	v1 := f.ModPSigned(20)

	require.Equal(t, field.Element(3), f.Neg(v1))
}

// TestPowDistributesOverMultiplication checks that exponentiation
// distributes over multiplication in F_p: pow(x, e) * pow(y, e) =
// pow(x*y, e) mod p, for several bases/exponents.
func TestPowDistributesOverMultiplication(t *testing.T) {
	f := field.New(97)

	cases := []struct {
		x, y field.Element
		e    uint64
	}{
		{3, 5, 4},
		{10, 2, 7},
		{0, 9, 3},
		{96, 96, 10},
	}

	for _, c := range cases {
		lhs := f.Mul(f.Pow(c.x, c.e), f.Pow(c.y, c.e))
		rhs := f.Pow(f.Mul(c.x, c.y), c.e)
		require.Equal(t, rhs, lhs, "x=%v y=%v e=%v", c.x, c.y, c.e)
	}
}

func TestNewRandomPrimeIsUsable(t *testing.T) {
	require := require.New(t)

	f, err := field.NewRandomPrime(field.PrimeBitsFor(1000))
	require.NoError(err)
	require.Greater(f.Order(), uint64(1))

	// Arithmetic should stay within [0, order).
	a := f.ModP(12345)
	b := f.ModP(67890)
	require.Less(uint64(f.Add(a, b)), f.Order())
	require.Less(uint64(f.Mul(a, b)), f.Order())
}
