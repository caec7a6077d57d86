package montgomery25519

import "github.com/AlexanderYastrebov/montgomery25519/field"

// projectivePoint4 holds four projective points, one per lane.
type projectivePoint4 struct {
	U, W field.Reduced4
}

// ladderState4 is the secret state of a batched ladder: the two running
// points, the difference point and the temporaries of one step.
type ladderState4 struct {
	x0, x1 projectivePoint4
	d      field.Reduced4

	t field.Unreduced4

	t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11, t12, t13, t15 field.Reduced4
}

// ScalarMultClampedBatch sets dst[i] = [clamp(scalars[i])]points[i] for four
// independent lanes using b, and returns dst. The result equals four calls to
// [MontgomeryPoint.ScalarMultClamped].
//
// All four ladders run in lock-step over 255 bits: conditional swaps are
// applied per lane with masks, and every step is one batched
// differential add-and-double. It does not allocate.
func ScalarMultClampedBatch(b field.Batcher, dst *[4]MontgomeryPoint, scalars *[4][32]byte, points *[4]MontgomeryPoint) *[4]MontgomeryPoint {
	var k [4][32]byte
	for j := range k {
		k[j] = clampInteger(scalars[j])
	}
	defer clear(k[:])

	var u [4]field.Element
	for j := range u {
		points[j].element(&u[j])
	}

	var s ladderState4
	defer func() { s = ladderState4{} }()

	b.Reduce(&s.d, s.t.Pack(&u[0], &u[1], &u[2], &u[3]))
	b.Reduce(&s.x0.U, s.t.Pack(_1, _1, _1, _1))
	b.Reduce(&s.x0.W, s.t.Pack(_0, _0, _0, _0))
	s.x1.U = s.d
	s.x1.W = s.x0.U

	var prev [4]int
	for i := 254; i >= 0; i-- {
		var swap [4]int
		for j := range k {
			cur := int(k[j][i/8]>>(i%8)) & 1
			swap[j] = prev[j] ^ cur
			prev[j] = cur
		}
		s.x0.swap(&s.x1, &swap)
		s.differentialAddAndDouble(b)
	}
	s.x0.swap(&s.x1, &prev)

	U, W := s.x0.U.Unreduced().Split(), s.x0.W.Unreduced().Split()
	defer func() { U, W = [4]field.Element{}, [4]field.Element{} }()
	affine4(dst, &U, &W)
	return dst
}

func (p *projectivePoint4) swap(q *projectivePoint4, cond *[4]int) {
	p.U.Swap(&q.U, cond)
	p.W.Swap(&q.W, cond)
}

// differentialAddAndDouble runs the single-lane [differentialAddAndDouble]
// on four lanes, with P = s.x0, Q = s.x1 and the affine difference s.d.
func (s *ladderState4) differentialAddAndDouble(b field.Batcher) {
	P, Q, t := &s.x0, &s.x1, &s.t

	b.Reduce(&s.t0, t.Add(&P.U, &P.W))
	b.Reduce(&s.t1, t.Subtract(&P.U, &P.W))
	b.Reduce(&s.t2, t.Add(&Q.U, &Q.W))
	b.Reduce(&s.t3, t.Subtract(&Q.U, &Q.W))

	b.Multiply(t, &s.t0, &s.t0)
	b.Reduce(&s.t4, t)
	b.Multiply(t, &s.t1, &s.t1)
	b.Reduce(&s.t5, t)

	b.Reduce(&s.t6, t.Subtract(&s.t4, &s.t5))

	b.Multiply(t, &s.t0, &s.t3)
	b.Reduce(&s.t7, t)
	b.Multiply(t, &s.t1, &s.t2)
	b.Reduce(&s.t8, t)

	b.Reduce(&s.t9, t.Add(&s.t7, &s.t8))
	b.Reduce(&s.t10, t.Subtract(&s.t7, &s.t8))

	b.Multiply(t, &s.t9, &s.t9)
	b.Reduce(&s.t11, t)
	b.Multiply(t, &s.t10, &s.t10)
	b.Reduce(&s.t12, t)

	b.MultiplySmall(t, &s.t6, [4]uint32{aPlus2Over4, aPlus2Over4, aPlus2Over4, aPlus2Over4})
	b.Reduce(&s.t13, t)

	b.Multiply(t, &s.t4, &s.t5)
	b.Reduce(&P.U, t)
	b.Reduce(&s.t15, t.Add(&s.t13, &s.t5))
	b.Multiply(t, &s.t6, &s.t15)
	b.Reduce(&P.W, t)

	Q.U = s.t11
	b.Multiply(t, &s.d, &s.t12)
	b.Reduce(&Q.W, t)
}

// affine4 sets dst[i] = U[i]/W[i] with a single field inversion.
// Lanes with W = 0 are set to u = 0.
func affine4(dst *[4]MontgomeryPoint, U, W *[4]field.Element) {
	for j := range W {
		isZero := W[j].Equal(_0)
		W[j].Select(_1, &W[j], isZero)
		U[j].Select(_0, &U[j], isZero)
	}

	var scratch [4]field.Element
	invert(W[:], scratch[:])

	var u field.Element
	for j := range dst {
		u.Multiply(&U[j], &W[j])
		u.FillBytes(dst[j][:])
	}
}

// invert calculates a[i] = 1/a[i] using b as a scratch buffer.
// All a[i] must be non-zero.
//
// It uses:
//
//	3*(n-1) multiplications
//	1 invert = ~265 multiplications
//
// https://en.wikipedia.org/wiki/Modular_multiplicative_inverse#Multiple_inverses
func invert(a, b []field.Element) {
	var t field.Element
	n := len(a)
	pa := new(field.Element).Set(&a[0]) // a[0]*a[1]*...*a[n-1]
	for i := 1; i < n; i++ {
		b[i].Set(pa)
		pa.Multiply(pa, &a[i])
	}

	paInv := new(field.Element).Invert(pa)

	for i := n - 1; i > 0; i-- {
		t.Multiply(paInv, &b[i])
		paInv.Multiply(paInv, &a[i])
		a[i].Set(&t)
	}
	a[0].Set(paInv)
}
