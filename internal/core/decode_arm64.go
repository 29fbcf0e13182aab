//go:build arm64

package core

// On arm64 the wide multiply is cheap, so the decode steps take the
// unconditional-constant forms with a post-hoc month correction.

func decodeBackward(rem uint32) (month, day, bump uint32) {
	return decodeBackwardPost(rem)
}

func fast64Decode(yrsMod4 uint32, low uint64) (month, day, bump uint32) {
	return fast64DecodePost(yrsMod4, low)
}

func ordinalDecode(ordinal uint32, leap bool) (month, day uint32) {
	return ordinalDecodeScaled(ordinal, leap, 1)
}
