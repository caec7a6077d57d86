package montgomery25519

import "github.com/AlexanderYastrebov/montgomery25519/field"

// SetElligator2 sets v to the Elligator2 image of r, and returns v.
//
// The result is always on curve25519. r and -r map to the same point,
// r = 0 maps to u = 0.
//
// https://www.rfc-editor.org/rfc/rfc9380.html#section-6.7.1
func (v *MontgomeryPoint) SetElligator2(r *field.Element) *MontgomeryPoint {
	var d, t, eps, u field.Element

	// d = -A / (1 + 2r^2), the denominator is never zero since -1/2 is not square
	d.Square2(r)
	d.Add(_1, &d)
	d.Invert(&d)
	d.Multiply(_NegA, &d)

	// eps = d^3 + A*d^2 + d = d * (d^2 + A*d + 1)
	t.Square(&d)
	eps.Multiply(_A, &d)
	eps.Add(&eps, &t)
	eps.Add(&eps, _1)
	eps.Multiply(&d, &eps)

	_, isSquare := t.SqrtRatio(&eps, _1)

	// u = d if eps is square, -d - A otherwise
	u.Select(_0, _A, isSquare)
	u.Add(&d, &u)
	u.CondNegate(&u, 1-isSquare)

	u.FillBytes(v[:])
	return v
}
