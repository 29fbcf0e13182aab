package core

// OrdinalDecode demonstrates the reverse ordinal problem: given
// (year, ordinal, leap), recover month and day with one affine map. The year
// splits into three phase regions, Jan-Feb / March-July / August-December,
// each with its own additive shift; comparing the ordinal against the Jan/Feb
// length (59+leap) and then the leap flag picks the region. The ratio 1071/2^15
// scales the month lengths so the divisor is a power of two; the generic path
// doubles it to make the divisor 2^16.

// ordinalDecodeScaled maps a 1-indexed ordinal to month and day.
// scale is 1 (small constants) or 2 (2^16 divisor).
func ordinalDecodeScaled(ordinal uint32, leap bool, scale uint32) (month, day uint32) {
	step := 1071 * scale
	divisor := scale << 15
	shift0 := divisor - 439*scale
	shift1 := shift0 + step
	shift2 := shift1 + step

	janFebLen := uint32(59)
	if leap {
		janFebLen++
	}
	shift := shift0
	if ordinal > janFebLen {
		if leap {
			shift = shift1
		} else {
			shift = shift2
		}
	}

	u := ordinal*step + shift
	return u / divisor, u%divisor/step + 1
}

// OrdinalDecodeToDate converts a rata die to a calendar date by way of an
// ordinal date: year, ordinal, and leap come from the Fast64 pipeline and
// only the ordinal decode above is new. Exists to measure the cost of
// carrying dates as ordinals; valid over the Fast64 domain.
func OrdinalDecodeToDate(n int64) Date64 {
	year, ordinal, leap := ordinalFromFast64(n)
	month, day := ordinalDecode(ordinal, leap)
	return Date64{Year: year, Month: month, Day: day}
}
