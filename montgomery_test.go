package montgomery25519

import (
	"testing"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/montgomery25519/field"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, MontgomeryPoint{}, Identity)
	assert.Equal(t, "0900000000000000000000000000000000000000000000000000000000000000", Basepoint.String())

	var a MontgomeryPoint
	_A.FillBytes(a[:])
	assert.Equal(t, "066d070000000000000000000000000000000000000000000000000000000000", a.String())
	assert.Equal(t, 1, new(field.Element).Add(_A, _NegA).Equal(_0))
	assert.Equal(t, 1, new(field.Element).Add(_1, _NegOne).Equal(_0))
}

func TestEqual(t *testing.T) {
	m, _ := randomPoint(t)
	assert.Equal(t, 1, m.Equal(m))

	// p and 0
	p := mustDecodePoint("edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	assert.Equal(t, 1, p.Equal(&Identity))
	assert.NotEqual(t, Identity, *p)

	// the top bit is ignored
	high := Basepoint
	high[31] |= 0x80
	assert.Equal(t, 1, high.Equal(&Basepoint))
	assert.Equal(t, 0, high.Equal(&Identity))

	// 2^255 - 1 = p + 18
	var ones MontgomeryPoint
	for i := range ones {
		ones[i] = 0xff
	}
	eighteen := MontgomeryPoint{18}
	assert.Equal(t, 1, eighteen.Equal(&ones))
	assert.Equal(t, 1, ones.Equal(&eighteen))
	assert.Equal(t, eighteen, ones.Canonical())
}

func TestEqualAllocs(t *testing.T) {
	m, _ := randomPoint(t)
	p := mustDecodePoint("edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	allocs := testing.AllocsPerRun(100, func() {
		m.Equal(p)
		p.Canonical()
	})
	assert.Zero(t, allocs)
}

func TestCanonical(t *testing.T) {
	p := mustDecodePoint("f6ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")

	seen := map[MontgomeryPoint]bool{
		Basepoint.Canonical(): true,
	}
	assert.True(t, seen[p.Canonical()])
	assert.Equal(t, Basepoint, p.Canonical())
}

func TestSetBytes(t *testing.T) {
	var v MontgomeryPoint
	got, err := v.SetBytes(Basepoint.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Basepoint, *got)

	_, err = v.SetBytes(make([]byte, 33))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestBytesDoesNotAlias(t *testing.T) {
	v := Basepoint
	b := v.Bytes()
	b[0] = 1
	assert.Equal(t, Basepoint, v)
}

func TestText(t *testing.T) {
	type message struct {
		Point MontgomeryPoint `json:"point"`
	}

	m, _ := randomPoint(t)
	// raw bytes are preserved, including non-canonical encodings
	nonCanonical := mustDecodePoint("f6ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	for _, p := range []*MontgomeryPoint{m, &Basepoint, &Identity, nonCanonical} {
		data, err := json.Marshal(message{Point: *p})
		require.NoError(t, err)
		assert.JSONEq(t, `{"point":"`+p.String()+`"}`, string(data))

		var got message
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *p, got.Point)
	}

	t.Run("invalid", func(t *testing.T) {
		var v MontgomeryPoint
		err := v.UnmarshalText([]byte("09"))
		assert.ErrorIs(t, err, ErrInvalidLength)

		err = v.UnmarshalText([]byte("zz00000000000000000000000000000000000000000000000000000000000000"))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidLength))
		assert.Equal(t, Identity, v)
	})
}

func TestBasepointOrder(t *testing.T) {
	// [l]B is the identity
	l := mustDecodePoint("edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	got := new(MontgomeryPoint).multBitsBE(&Basepoint, bitsBE(l[:], 253))
	assert.Equal(t, Identity, *got)

	s := edwards25519.NewScalar()
	assert.Equal(t, Identity, *new(MontgomeryPoint).ScalarBaseMult(s))
}
