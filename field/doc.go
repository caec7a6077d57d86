// Package field implements constant-time arithmetic modulo 2^255-19.
//
// [Element] type API is the same as [filippo.io/edwards25519/field.Element]
// with a few additions needed by the Montgomery ladder and Elligator2
// (Square2, CondNegate).
//
// Elements are kept in radix 2^51 with five 64-bit limbs. Every operation
// leaves the limbs "lightly reduced", i.e. below 2^52, and only Bytes and
// Equal compute the unique canonical representative.
//
// The package also provides a 4-lane batched representation ([Unreduced4],
// [Reduced4]) and the [Batcher] contract used to run four independent
// multiplications in lock-step. [MADD52Batcher] follows the schedule of
// 52-bit multiply-accumulate vector instructions, [SerialBatcher] computes
// each lane with the scalar code and serves as the reference.
package field
