package core

// MulShift64 trades the quadrupled-day fold for 128-bit multiplies: shifting
// the epoch by 307 instead of 306 removes the +3 century rounding, which lets
// the century multiply and shift merge into one multiply-high, and the year
// remainder falls out of the low word by one true division. Experimental:
// the domain below is what the harnesses have established, not a derivation.

const (
	mulShiftEras = 82
	mulShiftK    = 719162 + 146097*mulShiftEras + 307
	mulShiftL    = 400*mulShiftEras + 1
)

// MulShift64Min bounds the variant below; above, it holds through the top of
// the int32 range (sweeps pass to MaxInt32), though a derived upper bound is
// still pending.
const MulShift64Min = -int32(mulShiftK)

// MulShift64ToDate converts a rata die to a calendar date.
// Valid for n in [MulShift64Min, MaxInt32], per the note above.
func MulShift64ToDate(n int32) Date32 {
	d0 := uint32(n) + mulShiftK

	cen := uint32(Mul64Hi(fast64C1, uint64(d0)))
	// The 307 epoch shift costs this +365 but saves the century rounding.
	jul := d0 + 365 - cen/4 + cen

	hi, lo := Mul64(fast64C2, uint64(jul))
	yrs := uint32(hi)
	rem := uint32(lo / fast64C2)

	u := rem*2141 + 197913
	d := u % 65536 / 2141
	m := u / 65536

	bump := uint32(0)
	month := m
	if m > 12 {
		bump = 1
		month = m - 12
	}
	return Date32{Year: int32(yrs + bump - mulShiftL), Month: month, Day: d + 1}
}
