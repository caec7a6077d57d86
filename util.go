package montgomery25519

import (
	"encoding/binary"
	"iter"

	"github.com/AlexanderYastrebov/montgomery25519/field"
)

func fieldElementFromUint64(n uint64) *field.Element {
	var nb [8]byte
	binary.LittleEndian.PutUint64(nb[:], n)
	return fieldElementFromBytes(nb[:])
}

func fieldElementFromBytes(x []byte) *field.Element {
	var buf [32]byte
	copy(buf[:], x)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}

// bitsBE yields the n low bits of the little-endian integer b as 0 or 1,
// most significant first. Bits beyond len(b) are zero.
func bitsBE(b []byte, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := n - 1; i >= 0; i-- {
			var bit int
			if i/8 < len(b) {
				bit = int(b[i/8]>>(i%8)) & 1
			}
			if !yield(bit) {
				return
			}
		}
	}
}

// b2i converts a boolean to 0 or 1.
func b2i(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}

// clampInteger applies the X25519 "decodeScalar25519" clamping to b:
// clears the three low bits and bit 255 and sets bit 254.
// The result is an integer, it is not reduced modulo the group order.
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-5
func clampInteger(b [32]byte) [32]byte {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
	return b
}
