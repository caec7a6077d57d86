package field

import (
	"sync"

	"github.com/containerd/log"
)

// Batcher selects the backend that multiplies four independent field
// elements at once.
//
// Outputs are Unreduced4 and must go through Reduce before they are used as
// multiplication inputs again. A Batcher is a plain value: methods dispatch
// statically on it, so operands stay on the caller's stack.
type Batcher uint8

const (
	// SerialBatcher computes every lane with the scalar Element code.
	SerialBatcher Batcher = iota
	// MADD52Batcher follows the schedule of the 52-bit multiply-accumulate
	// vector instructions (VPMADD52LUQ / VPMADD52HUQ): every limb product is
	// split at bit 52, and since limbs are in radix 2^51 the high halves are
	// doubled. It runs on the instructions when the CPU has AVX-512 IFMA and VL,
	// and is emulated otherwise.
	MADD52Batcher
)

var defaultBatcher = sync.OnceValue(func() Batcher {
	b := SerialBatcher
	if hasMADD52 {
		b = MADD52Batcher
	}
	log.L.WithField("backend", b.Name()).Debug("field: selected batch backend")
	return b
})

// DefaultBatcher returns MADD52Batcher if the running CPU implements the
// 52-bit multiply-accumulate instructions, and SerialBatcher otherwise.
func DefaultBatcher() Batcher {
	return defaultBatcher()
}

func (b Batcher) Name() string {
	switch b {
	case SerialBatcher:
		return "serial"
	case MADD52Batcher:
		return "madd52"
	}
	return "unknown"
}

// Multiply sets z = x * y lane-wise.
func (b Batcher) Multiply(z *Unreduced4, x, y *Reduced4) {
	if b == MADD52Batcher {
		madd52Multiply(z, x, y)
		return
	}
	serialMultiply(z, x, y)
}

// MultiplySmall sets lane j of z to lane j of x times s[j].
func (b Batcher) MultiplySmall(z *Unreduced4, x *Reduced4, s [4]uint32) {
	if b == MADD52Batcher {
		madd52MultiplySmall(z, x, s)
		return
	}
	serialMultiplySmall(z, x, s)
}

// Reduce propagates carries so that every limb of z fits the Reduced4 bound.
// Carry propagation is the same for every backend.
func (b Batcher) Reduce(z *Reduced4, x *Unreduced4) {
	var c, r [5]vec
	for i := range c {
		for j := range c[i] {
			c[i][j] = x.l[i][j] >> 51
			r[i][j] = x.l[i][j] & maskLow51Bits
		}
	}
	// c_4 < 2^13, so limb 0 stays below 2^51 + 2^18.
	for j := range z.l[0] {
		z.l[0][j] = r[0][j] + c[4][j]*19
	}
	for i := 1; i < 5; i++ {
		for j := range z.l[i] {
			z.l[i][j] = r[i][j] + c[i-1][j]
		}
	}
}

func serialMultiply(z *Unreduced4, x, y *Reduced4) {
	var r [4]Element
	for j := range r {
		a, b := x.Unreduced().lane(j), y.Unreduced().lane(j)
		feMul(&r[j], &a, &b)
	}
	z.Pack(&r[0], &r[1], &r[2], &r[3])
}

func serialMultiplySmall(z *Unreduced4, x *Reduced4, s [4]uint32) {
	var r [4]Element
	for j := range r {
		a := x.Unreduced().lane(j)
		r[j].Mult32(&a, s[j])
	}
	z.Pack(&r[0], &r[1], &r[2], &r[3])
}

const maskLow52Bits uint64 = (1 << 52) - 1

// madd52lo sets z += lo52(lo52(x) * lo52(y)) lane-wise.
func madd52lo(z, x, y *vec) {
	for j := range z {
		z[j] += ((x[j] & maskLow52Bits) * (y[j] & maskLow52Bits)) & maskLow52Bits
	}
}

// madd52hi sets z += (lo52(x) * lo52(y)) >> 52 lane-wise.
func madd52hi(z, x, y *vec) {
	for j := range z {
		p := mul64(x[j]&maskLow52Bits, y[j]&maskLow52Bits)
		z[j] += p.Hi<<(64-52) | p.Lo>>52
	}
}

func madd52MultiplyGeneric(z *Unreduced4, x, y *Reduced4) {
	// lo[k] accumulates lo52(x_i y_j) for i+j = k and hi[k] accumulates
	// hi52(x_i y_j) for i+j = k-1. Each column holds at most five terms below
	// 2^52, so no accumulator exceeds 2^55.
	var lo, hi [10]vec
	for i := range 5 {
		for j := range 5 {
			madd52lo(&lo[i+j], &x.l[i], &y.l[j])
			madd52hi(&hi[i+j+1], &x.l[i], &y.l[j])
		}
	}

	// Column k has weight 2^(51k) and hi terms carry an extra 2^52 = 2 * 2^51,
	// so Z_k = lo_k + 2 hi_k < 2^57. Folding columns 5..9 onto 0..4 with
	// 2^255 = 19 leaves limbs below 2^63.
	for k := range 5 {
		for j := range z.l[k] {
			lo0 := lo[k][j] + 2*hi[k][j]
			lo5 := lo[k+5][j] + 2*hi[k+5][j]
			z.l[k][j] = lo0 + 19*lo5
		}
	}
}

func madd52MultiplySmall(z *Unreduced4, x *Reduced4, s [4]uint32) {
	sv := vec{uint64(s[0]), uint64(s[1]), uint64(s[2]), uint64(s[3])}

	var lo, hi [5]vec
	for i := range 5 {
		madd52lo(&lo[i], &sv, &x.l[i])
		madd52hi(&hi[i], &sv, &x.l[i])
	}

	// hi_i moves to limb i+1 doubled, and hi_4 wraps to limb 0 times 19.
	// hi_i < 2^33, so every limb stays below 2^53.
	for j := range z.l[0] {
		z.l[0][j] = lo[0][j] + 38*hi[4][j]
	}
	for i := 1; i < 5; i++ {
		for j := range z.l[i] {
			z.l[i][j] = lo[i][j] + 2*hi[i-1][j]
		}
	}
}
