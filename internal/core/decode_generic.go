//go:build !arm64

package core

// Away from arm64, branching early on the remainder to pick a phase constant
// beats the extra multiply, and the larger scale buys a power-of-two divisor.

func decodeBackward(rem uint32) (month, day, bump uint32) {
	return decodeBackwardPre(rem)
}

func fast64Decode(yrsMod4 uint32, low uint64) (month, day, bump uint32) {
	return fast64DecodePre(yrsMod4, low)
}

func ordinalDecode(ordinal uint32, leap bool) (month, day uint32) {
	return ordinalDecodeScaled(ordinal, leap, 2)
}
