package montgomery25519

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"slices"
	"testing"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/montgomery25519/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsBE(t *testing.T) {
	b := []byte{0b1010_0001, 0b0000_0011}

	got := slices.Collect(bitsBE(b, 12))
	assert.Equal(t, []int{
		0, 0, 1, 1,
		1, 0, 1, 0, 0, 0, 0, 1,
	}, got)

	t.Run("beyond input", func(t *testing.T) {
		got := slices.Collect(bitsBE([]byte{1}, 10))
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, got)
	})

	t.Run("stop", func(t *testing.T) {
		n := 0
		for range bitsBE(b, 16) {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})
}

func TestClampInteger(t *testing.T) {
	var ones [32]byte
	for i := range ones {
		ones[i] = 0xff
	}
	c := clampInteger(ones)
	assert.Equal(t, byte(0xf8), c[0])
	assert.Equal(t, byte(0x7f), c[31])

	c = clampInteger([32]byte{})
	assert.Equal(t, byte(0), c[0])
	assert.Equal(t, byte(0x40), c[31])
}

func TestB2I(t *testing.T) {
	assert.Equal(t, 1, b2i(true))
	assert.Equal(t, 0, b2i(false))
}

func randomBytes(t testing.TB, n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func random32(t testing.TB) *[32]byte {
	return (*[32]byte)(randomBytes(t, 32))
}

func randomScalar(t testing.TB) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(randomBytes(t, 64))
	require.NoError(t, err)
	return s
}

// randomPoint returns the u-coordinate of a random point of prime order.
func randomPoint(t testing.TB) (*MontgomeryPoint, *edwards25519.Point) {
	p := new(edwards25519.Point).ScalarBaseMult(randomScalar(t))
	return new(MontgomeryPoint).SetEdwards(p), p
}

// isOnCurve reports whether u^3 + A*u^2 + u is square, i.e. whether u is the
// u-coordinate of a point on curve25519 rather than on its twist.
func isOnCurve(v *MontgomeryPoint) bool {
	u := v.element(new(field.Element))
	var u2, rhs, t field.Element
	u2.Square(u)
	rhs.Multiply(&u2, u)
	t.Multiply(_A, &u2)
	rhs.Add(&rhs, &t)
	rhs.Add(&rhs, u)
	_, wasSquare := t.SqrtRatio(&rhs, _1)
	return wasSquare == 1
}

// randomTwistPoint returns a random u-coordinate on the twist of curve25519.
func randomTwistPoint(t testing.TB) *MontgomeryPoint {
	for {
		var v MontgomeryPoint
		copy(v[:], randomBytes(t, 32))
		v[31] &= 0x7f
		if !isOnCurve(&v) {
			return &v
		}
	}
}

func scalarFromUint64(n uint64) *edwards25519.Scalar {
	var buf [64]byte
	binary.LittleEndian.PutUint64(buf[:], n)

	xs, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return xs
}

// scalarFromBigInt returns n modulo the group order, n must be below 2^512.
func scalarFromBigInt(n *big.Int) *edwards25519.Scalar {
	xs, err := edwards25519.NewScalar().SetUniformBytes(bigIntBytes(n, 64))
	if err != nil {
		panic(err)
	}
	return xs
}

// bigIntBytes returns the size-byte little-endian encoding of n.
func bigIntBytes(n *big.Int, size int) []byte {
	if n == nil || n.Sign() < 0 {
		panic("n must be non-negative")
	}
	if n.BitLen() > 8*size {
		panic("n is too large")
	}
	buf := make([]byte, size)
	n.FillBytes(buf)
	slices.Reverse(buf)
	return buf
}
