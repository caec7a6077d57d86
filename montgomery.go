// Package montgomery25519 implements [curve25519] arithmetic on the Montgomery u-line.
//
// It provides the constant-time Montgomery ladder (x-only scalar multiplication),
// conversion between the Montgomery and twisted Edwards models, and the
// Elligator2 map from field elements to curve points. Edwards group operations
// and scalars are provided by [filippo.io/edwards25519].
//
// The ladder follows algorithm 8 of [Montgomery curves and their arithmetic]
// by Costello and Smith. Complexity: 5M + 4S + 1m per scalar bit, where
// M is field multiplication, S is squaring and m is multiplication by a small constant,
// plus one inversion for the final affine projection.
//
// [curve25519]: https://datatracker.ietf.org/doc/html/rfc7748#section-4.1
// [Montgomery curves and their arithmetic]: https://eprint.iacr.org/2017/212.pdf
package montgomery25519

import (
	"crypto/subtle"

	"github.com/AlexanderYastrebov/montgomery25519/field"
	"github.com/pkg/errors"
	fasthex "github.com/tmthrgd/go-hex"
)

// Montgomery "curve25519" v^2 = u^3 + A*u^2 + u parameters
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
var (
	// Constant A = 486662
	_A = fieldElementFromUint64(486662)
	// Constant -A
	_NegA = new(field.Element).Negate(_A)
)

// Constant (A+2)/4 used by the ladder doubling
const aPlus2Over4 = 121666

// Constants 0, 1 and -1
var (
	_0      = new(field.Element).Zero()
	_1      = new(field.Element).One()
	_NegOne = new(field.Element).Negate(_1)
)

// MontgomeryPoint is the little-endian encoding of a u-coordinate.
//
// Any 32-byte string is accepted: the top bit is ignored and values
// greater or equal to 2^255-19 denote their residue. Points are compared
// modulo 2^255-19, see [MontgomeryPoint.Equal].
type MontgomeryPoint [32]byte

var (
	// Identity is the u-coordinate of the identity in the projective model (1:0).
	Identity = MontgomeryPoint{}
	// Basepoint is the u-coordinate of the curve25519 base point, u = 9.
	Basepoint = MontgomeryPoint{9}
)

// ErrInvalidLength is returned when decoding input of the wrong size.
var ErrInvalidLength = errors.New("montgomery25519: invalid point length")

// SetBytes sets v to the 32-byte encoding x, and returns v.
func (v *MontgomeryPoint) SetBytes(x []byte) (*MontgomeryPoint, error) {
	if len(x) != len(v) {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d bytes", len(x))
	}
	copy(v[:], x)
	return v, nil
}

// Bytes returns the raw encoding of v, as given to SetBytes.
func (v *MontgomeryPoint) Bytes() []byte {
	b := *v
	return b[:]
}

// element sets u to the field element encoded by v, and returns u.
func (v *MontgomeryPoint) element(u *field.Element) *field.Element {
	if _, err := u.SetBytes(v[:]); err != nil {
		panic(err)
	}
	return u
}

// Canonical returns the canonical encoding of v modulo 2^255-19.
// Points that are [MontgomeryPoint.Equal] have the same canonical encoding,
// so it can be used as a map key.
func (v *MontgomeryPoint) Canonical() MontgomeryPoint {
	var u field.Element
	var c MontgomeryPoint
	v.element(&u).FillBytes(c[:])
	return c
}

// Equal returns 1 if v and u encode the same value modulo 2^255-19, and 0 otherwise.
func (v *MontgomeryPoint) Equal(u *MontgomeryPoint) int {
	a, b := v.Canonical(), u.Canonical()
	return subtle.ConstantTimeCompare(a[:], b[:])
}

func (v MontgomeryPoint) String() string {
	return fasthex.EncodeToString(v[:])
}

// MarshalText implements [encoding.TextMarshaler]. The raw bytes are hex
// encoded without canonicalization.
func (v MontgomeryPoint) MarshalText() ([]byte, error) {
	buf := make([]byte, fasthex.EncodedLen(len(v)))
	fasthex.Encode(buf, v[:])
	return buf, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *MontgomeryPoint) UnmarshalText(text []byte) error {
	if len(text) != fasthex.EncodedLen(len(v)) {
		return errors.Wrapf(ErrInvalidLength, "got %d hex digits", len(text))
	}
	var b MontgomeryPoint
	if _, err := fasthex.Decode(b[:], text); err != nil {
		return errors.Wrap(err, "montgomery25519: invalid point encoding")
	}
	*v = b
	return nil
}
