package core

// Joffe is the baseline division form of the fast conversion: the century
// and year still use true division (by 146097 and 1461), but the quadrupled
// day count folds the +3 rounding into a single expression, and month/day
// come from the Euclidean affine map N = 2141*rem + 197913.

const (
	joffeEras = 82
	// Rata-die shift: epoch day 0 lands 306 days past the March year start.
	joffeK = 719162 + 146097*joffeEras + 306
	joffeL = 400 * joffeEras
)

// JoffeMin and JoffeMax bound the valid inputs: the shifted day count must be
// non-negative, and the Julian-scaled count (the quadruple plus the century
// leap-day add-back) must fit in a uint32. Both edges are pinned by
// regression tests.
const (
	JoffeMin = -int32(joffeK)
	JoffeMax = int32(1061020353)
)

// JoffeToDate converts a rata die in [JoffeMin, JoffeMax] to a calendar date.
func JoffeToDate(n int32) Date32 {
	assertDomain(n >= JoffeMin && n <= JoffeMax, "joffe rata die")

	d0 := uint32(n) + joffeK

	qds := d0*4 + 3
	cen := qds / 146097
	// Add back the century leap days to map onto a uniform Julian count.
	jul := qds - (cen &^ 3) + cen*4
	yrs := jul / 1461
	rem := jul % 1461 / 4

	u := rem*2141 + 197913
	m := u / 65536
	d := u % 65536 / 2141

	bump := uint32(0)
	month := m
	if rem >= 306 {
		bump = 1
		month = m - 12
	}
	return Date32{Year: int32(yrs - joffeL + bump), Month: month, Day: d + 1}
}
