package core

import "math/bits"

// The 64-bit variants replace division by the calendar cycle constants with a
// 64x64->128 multiply, keeping only the high word. Go exposes the native
// widening multiply through math/bits; these wrappers give the variants a
// single primitive to lean on, plus a portable two-multiply emulation used to
// document (and test) the contract on targets without a fused instruction.

// Mul64Hi returns the high 64 bits of the full 128-bit product a*b.
func Mul64Hi(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

// Mul64 returns both halves of the 128-bit product a*b.
func Mul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// mul64HiEmul computes the high word of a*b from four 32x32->64 partial
// products with carry propagation. Equivalent to Mul64Hi for all inputs.
func mul64HiEmul(a, b uint64) uint64 {
	const mask = 1<<32 - 1

	aHi, aLo := a>>32, a&mask
	bHi, bLo := b>>32, b&mask

	t := aLo * bLo
	carry := t >> 32

	t = aHi*bLo + carry
	w1 := t & mask
	w2 := t >> 32

	t = aLo*bHi + w1
	return aHi*bHi + w2 + t>>32
}
