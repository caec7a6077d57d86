package montgomery25519

import "github.com/AlexanderYastrebov/montgomery25519/field"

// projectivePoint is a point on the u-line in projective coordinates, u = U/W.
// The identity is (1:0).
type projectivePoint struct {
	U, W field.Element
}

func (p *projectivePoint) identity() *projectivePoint {
	p.U.One()
	p.W.Zero()
	return p
}

// swap swaps p and q if cond == 1 or leaves them unchanged if cond == 0.
func (p *projectivePoint) swap(q *projectivePoint, cond int) {
	p.U.Swap(&q.U, cond)
	p.W.Swap(&q.W, cond)
}

// affine sets v to U/W, and returns v. The identity maps to u = 0.
func (p *projectivePoint) affine(v *MontgomeryPoint) *MontgomeryPoint {
	var u field.Element
	u.Invert(&p.W) // 1/0 = 0
	u.Multiply(&p.U, &u)
	u.FillBytes(v[:])
	return v
}

// differentialAddAndDouble sets P = [2]P and Q = P + Q given the affine
// u-coordinate of P - Q.
//
// Algorithm 8 of https://eprint.iacr.org/2017/212.pdf
//
// Complexity: 5M + 4S + 1m + 8A
func differentialAddAndDouble(P, Q *projectivePoint, affinePmQ *field.Element) {
	var t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11, t12, t13, t15 field.Element

	t0.Add(&P.U, &P.W)
	t1.Subtract(&P.U, &P.W)
	t2.Add(&Q.U, &Q.W)
	t3.Subtract(&Q.U, &Q.W)

	t4.Square(&t0) // (U_P + W_P)^2
	t5.Square(&t1) // (U_P - W_P)^2

	t6.Subtract(&t4, &t5) // 4 U_P W_P

	t7.Multiply(&t0, &t3) // (U_P + W_P) (U_Q - W_Q)
	t8.Multiply(&t1, &t2) // (U_P - W_P) (U_Q + W_Q)

	t9.Add(&t7, &t8)       // 2 (U_P U_Q - W_P W_Q)
	t10.Subtract(&t7, &t8) // 2 (W_P U_Q - U_P W_Q)

	t11.Square(&t9)  // 4 (U_P U_Q - W_P W_Q)^2
	t12.Square(&t10) // 4 (W_P U_Q - U_P W_Q)^2

	t13.Mult32(&t6, aPlus2Over4) // (A + 2) U_P W_P

	P.U.Multiply(&t4, &t5) // ((U_P + W_P)(U_P - W_P))^2 = (U_P^2 - W_P^2)^2
	t15.Add(&t13, &t5)     // (U_P - W_P)^2 + (A + 2) U_P W_P
	P.W.Multiply(&t6, &t15)

	Q.U.Set(&t11)
	Q.W.Multiply(affinePmQ, &t12) // U_D * 4 (W_P U_Q - U_P W_Q)^2
}
