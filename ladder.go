package montgomery25519

import (
	"iter"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/montgomery25519/field"
)

// ladder returns [k]P in projective coordinates where u is the affine
// u-coordinate of P and bits are the bits of k as 0 or 1, most significant first.
//
// The sequence of operations depends only on the number of bits.
func ladder[O ladderOperations](u *field.Element, bits iter.Seq[int]) projectivePoint {
	var ops O
	var x0, x1 projectivePoint
	defer func() { x1 = projectivePoint{} }()

	x0.identity()
	x1.U.Set(u)
	x1.W.One()

	prev := 0
	for cur := range bits {
		ops.Swap(&x0, &x1, prev^cur)
		ops.Step(&x0, &x1, u)
		prev = cur
	}
	ops.Swap(&x0, &x1, prev)

	return x0
}

// MultBitsBE sets v = [k]q, where bits yields the bits of k most significant
// first, and returns v. Leading zero bits are allowed and do not change the
// result, but the running time depends on the number of bits yielded.
func (v *MontgomeryPoint) MultBitsBE(q *MontgomeryPoint, bits iter.Seq[bool]) *MontgomeryPoint {
	return v.multBitsBE(q, func(yield func(int) bool) {
		for bit := range bits {
			if !yield(b2i(bit)) {
				return
			}
		}
	})
}

// multBitsBE is [MontgomeryPoint.MultBitsBE] over bits given as 0 or 1.
func (v *MontgomeryPoint) multBitsBE(q *MontgomeryPoint, bits iter.Seq[int]) *MontgomeryPoint {
	var u field.Element
	x0 := ladder[constantTimeOperations](q.element(&u), bits)
	defer func() { x0 = projectivePoint{} }()
	return x0.affine(v)
}

// ScalarMult sets v = [s]q, and returns v.
//
// The ladder runs over the 255 low bits of the canonical encoding of s.
func (v *MontgomeryPoint) ScalarMult(s *edwards25519.Scalar, q *MontgomeryPoint) *MontgomeryPoint {
	b := [32]byte(s.Bytes())
	defer clear(b[:])
	return v.multBitsBE(q, bitsBE(b[:], 255))
}

// ScalarMultClamped sets v = [clamp(b)]q, and returns v. clamp is the X25519
// scalar decoding of RFC 7748: the result matches X25519(b, q).
func (v *MontgomeryPoint) ScalarMultClamped(b *[32]byte, q *MontgomeryPoint) *MontgomeryPoint {
	k := clampInteger(*b)
	defer clear(k[:])
	return v.multBitsBE(q, bitsBE(k[:], 255))
}

// ScalarBaseMult sets v = [s]B where B is the base point, and returns v.
func (v *MontgomeryPoint) ScalarBaseMult(s *edwards25519.Scalar) *MontgomeryPoint {
	p := new(edwards25519.Point).ScalarBaseMult(s)
	return v.SetEdwards(p)
}

// ScalarBaseMultClamped sets v = [clamp(b)]B where B is the base point, and returns v.
//
// The clamped integer is reduced modulo the group order, which gives the same
// point since B has prime order.
func (v *MontgomeryPoint) ScalarBaseMultClamped(b *[32]byte) *MontgomeryPoint {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(b[:])
	if err != nil {
		panic(err)
	}
	defer s.Set(edwards25519.NewScalar())
	return v.ScalarBaseMult(s)
}
