package montgomery25519

import (
	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/montgomery25519/field"
	"github.com/pkg/errors"
)

// ErrTwistPoint is returned by [MontgomeryPoint.Edwards] for u = -1,
// which has no image on the Edwards curve.
var ErrTwistPoint = errors.New("montgomery25519: u-coordinate -1 has no Edwards image")

// Edwards returns the Edwards point with y = (u-1)/(u+1) whose x has the given sign.
//
// The u-coordinate alone determines a point only up to sign. The sign selects
// between the two candidates: 0 for the non-negative x and 1 for the negative one.
// Points on the twist of curve25519 fail Edwards decompression and the
// decompression error is returned.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
func (v *MontgomeryPoint) Edwards(sign int) (*edwards25519.Point, error) {
	var u field.Element
	v.element(&u)

	// u = -1 is the only value making (u+1) zero; Invert would silently return zero.
	if u.Equal(_NegOne) == 1 {
		return nil, ErrTwistPoint
	}

	// y = (u - 1) / (u + 1)
	var y, t field.Element

	t.Add(&u, _1)
	t.Invert(&t)
	y.Subtract(&u, _1)
	y.Multiply(&y, &t)

	var yb [32]byte
	y.FillBytes(yb[:])
	yb[31] ^= byte(sign&1) << 7

	return new(edwards25519.Point).SetBytes(yb[:])
}

// SetEdwards sets v to the u-coordinate (1+y)/(1-y) of p, and returns v.
// The identity maps to u = 0.
func (v *MontgomeryPoint) SetEdwards(p *edwards25519.Point) *MontgomeryPoint {
	copy(v[:], p.BytesMontgomery())
	return v
}
