package core

// Fast64 is the wide backward-counting variant: 64-bit input, 64-bit year,
// with every division replaced by a multiply-high against a 64-bit
// fixed-point reciprocal. The year remainder never materializes as a day
// count; month and day are decoded straight from the low word of the year
// multiply, folding the leap structure in via yrs%4.

const (
	fast64Eras   = uint64(4726498270)
	fast64DShift = 146097*fast64Eras - 719469
	fast64YShift = 400*fast64Eras - 1

	// 2^64 * 4 / 146097 = 505054698555331.09
	fast64C1 = uint64(505054698555331)
	// 2^64 * 4 / 1461 = 50504432782230120.8
	fast64C2 = uint64(50504432782230121)
	// floor(2^64 / 2140), pre-scaled per decode path.
	fast64C3 = uint64(8619973866219416)
)

// Fast64MismatchUp and Fast64MismatchDown are the first rata-die values, in
// each direction from zero, where Fast64ToDate diverges from the oracle. They
// are fixed by the reciprocal derivation and pinned by regression tests; the
// valid domain is the open interval between them.
const (
	Fast64MismatchUp   = int64(690527217032722)
	Fast64MismatchDown = int64(-690527216974165)
)

// Fast64ToDate converts a rata die to a calendar date. Valid strictly
// between Fast64MismatchDown and Fast64MismatchUp.
func Fast64ToDate(n int64) Date64 {
	assertDomain(n > Fast64MismatchDown && n < Fast64MismatchUp, "fast64 rata die")

	rev := fast64DShift - uint64(n)
	cen := Mul64Hi(fast64C1, rev)
	jul := rev - cen/4 + cen

	hi, lo := Mul64(fast64C2, jul)
	yrs := fast64YShift - hi

	month, day, bump := fast64Decode(uint32(yrs%4), lo)
	return Date64{Year: int64(yrs) + int64(bump), Month: month, Day: day}
}

// fast64DecodePost decodes month/day from the low word of the year multiply
// with an unconditional phase and post-hoc month correction (arm64 form,
// scale 1: small constants).
func fast64DecodePost(yrsMod4 uint32, low uint64) (month, day, bump uint32) {
	ypt := uint32(Mul64Hi(24451, low))

	u := yrsMod4*16 + 30556 - ypt
	m := u / 2048
	d := uint32(Mul64Hi(fast64C3*32, uint64(u%2048)))

	month = m
	if m > 12 {
		bump = 1
		month = m - 12
	}
	return month, d + 1, bump
}

// fast64DecodePre branches on the year point first to pick the Jan/Feb phase
// (x86 form, scale 32: the divisor becomes 2^16).
func fast64DecodePre(yrsMod4 uint32, low uint64) (month, day, bump uint32) {
	ypt := uint32(Mul64Hi(24451*32, low))

	phase := uint32(30556 * 32)
	if ypt < 3952*32 {
		bump = 1
		phase = 5980 * 32
	}
	u := yrsMod4*(16*32) + phase - ypt
	month = u / (2048 * 32)
	d := uint32(Mul64Hi(fast64C3, uint64(u%(2048*32))))
	return month, d + 1, bump
}
