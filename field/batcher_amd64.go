//go:build amd64 && gc && !purego

package field

import "golang.org/x/sys/cpu"

var hasMADD52 = cpu.X86.HasAVX512IFMA && cpu.X86.HasAVX512VL

// madd52MultiplyAVX512 sets z = x * y with VPMADD52LUQ and VPMADD52HUQ.
//
//go:noescape
func madd52MultiplyAVX512(z *Unreduced4, x, y *Reduced4)

func madd52Multiply(z *Unreduced4, x, y *Reduced4) {
	if hasMADD52 {
		madd52MultiplyAVX512(z, x, y)
		return
	}
	madd52MultiplyGeneric(z, x, y)
}
