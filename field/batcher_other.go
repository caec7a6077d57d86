//go:build !amd64 || !gc || purego

package field

const hasMADD52 = false

func madd52Multiply(z *Unreduced4, x, y *Reduced4) {
	madd52MultiplyGeneric(z, x, y)
}
