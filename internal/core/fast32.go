package core

// Fast32 counts days downward from a large forward-shifted anchor instead of
// upward from a negative one. That keeps the reciprocal-multiply operands
// non-negative over the whole domain, at the cost of inverting the sign of
// every derived quantity: the year counts down until a final negation against
// fast32L.

const (
	fast32Eras = 82
	// Anchor the reversed count at the end of the era span.
	fast32K = 146097*fast32Eras - 719162 - 307
	fast32L = 400*fast32Eras - 1
)

// Fast32MinYear and Fast32MaxYear bound the years the variant resolves
// exactly; the reversed day count stays within the reciprocals' validated
// span for this window.
const (
	Fast32MinYear = -65536
	Fast32MaxYear = 32799
)

// Fast32ToDate converts a rata die to a calendar date. Valid for dates in
// years [Fast32MinYear, Fast32MaxYear].
func Fast32ToDate(n int32) Date32 {
	rev := fast32K - uint32(n)

	// 2^47 * 4 / 146097 = 3853261555.14
	cen := uint32(uint64(rev) * 3853261555 >> 47)
	jul := rev + cen - cen/4
	// 2^40 * 4 / 1461 = 3010298775.5
	yrs := uint32(uint64(jul) * 3010298776 >> 40)
	rem := jul - yrs*1461/4

	month, day, bump := decodeBackward(rem)
	return Date32{Year: int32(fast32L - yrs + bump), Month: month, Day: day}
}

// decodeBackwardPost resolves month/day from a reversed within-year remainder
// using a single unconditional phase constant and a post-hoc month
// correction. Cheapest where 64-bit multiplies are cheap (arm64).
func decodeBackwardPost(rem uint32) (month, day, bump uint32) {
	u := 979360 - rem*2141
	m := u / 65536
	// 2^32 / 2141 = 2006056.97
	d := uint32(uint64(u%65536) * 2006057 >> 32)

	month = m
	if m > 12 {
		bump = 1
		month = m - 12
	}
	return month, d + 1, bump
}

// decodeBackwardPre branches on the remainder first to pick one of two phase
// constants, skipping the post-hoc correction. Cheaper where the early
// compare beats the extra multiply (x86).
func decodeBackwardPre(rem uint32) (month, day, bump uint32) {
	// Jan/Feb cutoff when counting backwards.
	phase := uint32(979360)
	if rem <= 59 {
		bump = 1
		phase = 192928
	}
	u := phase - rem*2141
	month = u / 65536
	d := uint32(uint64(u%65536) * 2006057 >> 32)
	return month, d + 1, bump
}
