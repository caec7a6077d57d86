package field

// vec is four 64-bit lanes, the shape of one 256-bit vector register.
type vec [4]uint64

// Unreduced4 is a vector of four field elements whose limbs may be as large
// as 2^64, as produced by Add, Subtract and the Batcher multiplications.
//
// Limbs are stored limb-major: l[i] holds limb i of all four lanes.
type Unreduced4 struct {
	l [5]vec
}

// Reduced4 is a vector of four field elements whose limbs are at most
// 2^51 + 2^18, which is below the 52-bit input width of the multiply-accumulate
// primitives. Only Batcher.Reduce produces a Reduced4 from arbitrary limbs.
type Reduced4 struct {
	l [5]vec
}

// NewUnreduced4 packs four field elements into an Unreduced4.
func NewUnreduced4(x0, x1, x2, x3 *Element) *Unreduced4 {
	return new(Unreduced4).Pack(x0, x1, x2, x3)
}

// Pack sets z to the four field elements, and returns z.
func (z *Unreduced4) Pack(x0, x1, x2, x3 *Element) *Unreduced4 {
	for j, x := range [4]*Element{x0, x1, x2, x3} {
		z.setLane(j, x)
	}
	return z
}

// Split returns the four lanes of z as field elements. Split is the exact
// inverse of Pack.
func (z *Unreduced4) Split() (out [4]Element) {
	for j := range out {
		out[j] = z.lane(j)
	}
	return out
}

func (z *Unreduced4) lane(j int) Element {
	return Element{z.l[0][j], z.l[1][j], z.l[2][j], z.l[3][j], z.l[4][j]}
}

func (z *Unreduced4) setLane(j int, x *Element) {
	z.l[0][j] = x.l0
	z.l[1][j] = x.l1
	z.l[2][j] = x.l2
	z.l[3][j] = x.l3
	z.l[4][j] = x.l4
}

// Unreduced returns x viewed as an Unreduced4. No data is copied.
func (x *Reduced4) Unreduced() *Unreduced4 {
	return (*Unreduced4)(x)
}

// Add sets z = x + y lane-wise, and returns z.
func (z *Unreduced4) Add(x, y *Reduced4) *Unreduced4 {
	for i := range z.l {
		for j := range z.l[i] {
			z.l[i][j] = x.l[i][j] + y.l[i][j]
		}
	}
	return z
}

// twoP is 2 * (2^255 - 19) in radix 2^51. Every limb exceeds the Reduced4
// bound, so adding it before subtracting a reduced value never underflows.
var twoP = [5]uint64{0xFFFFFFFFFFFDA, 0xFFFFFFFFFFFFE, 0xFFFFFFFFFFFFE, 0xFFFFFFFFFFFFE, 0xFFFFFFFFFFFFE}

// Subtract sets z = x - y lane-wise, and returns z.
func (z *Unreduced4) Subtract(x, y *Reduced4) *Unreduced4 {
	for i := range z.l {
		for j := range z.l[i] {
			z.l[i][j] = (x.l[i][j] + twoP[i]) - y.l[i][j]
		}
	}
	return z
}

// Select sets each lane j of x to the lane of a if cond[j] == 1,
// and to the lane of b if cond[j] == 0, and returns x.
func (x *Reduced4) Select(a, b *Reduced4, cond *[4]int) *Reduced4 {
	var m vec
	for j := range m {
		m[j] = mask64Bits(cond[j])
	}
	for i := range x.l {
		for j := range x.l[i] {
			x.l[i][j] = (m[j] & a.l[i][j]) | (^m[j] & b.l[i][j])
		}
	}
	return x
}

// Swap swaps lane j of x and y if cond[j] == 1, and leaves it unchanged if cond[j] == 0.
func (x *Reduced4) Swap(y *Reduced4, cond *[4]int) {
	var m vec
	for j := range m {
		m[j] = mask64Bits(cond[j])
	}
	for i := range x.l {
		for j := range x.l[i] {
			t := m[j] & (x.l[i][j] ^ y.l[i][j])
			x.l[i][j] ^= t
			y.l[i][j] ^= t
		}
	}
}
