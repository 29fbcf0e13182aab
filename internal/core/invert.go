package core

// The inverse direction (calendar date -> rata die) is the same cheap
// pipeline for every fast variant, so it is factored once here: shift Jan/Feb
// into months 13/14 of the previous year, count year days with the leap-rule
// polynomial 365*y + y/4 - y/100 + y/400, add the affine month offset
// (979*m + phase)/32, add the day, subtract one calibration constant.

const (
	// invertEra biases years so the polynomial runs on non-negative values.
	invertEra = 14700

	invertYearShift = 400 * invertEra
	// invertCal = 719468 + 146097*14700 + 1.
	invertCal = 719468 + 146097*invertEra + 1
)

// ToRataDie32 converts a valid calendar date to its rata die. Valid while
// year+5880000 is non-negative and the true rata die fits in an int32; the
// result is unspecified otherwise.
func ToRataDie32(year int32, month, day uint32) int32 {
	assertDomain(month >= 1 && month <= 12, "month")
	assertDomain(day >= 1 && day <= 31, "day")

	bump := uint32(0)
	phase := int32(-2919)
	if month <= 2 {
		bump = 1
		phase = 8829
	}
	yrs := uint32(year) + invertYearShift - bump
	cen := yrs / 100

	// Split form of the leap polynomial; avoids overflowing the 1461*y/4
	// product early.
	yearDays := 365*yrs + yrs/4 - cen + cen/4
	monthDays := uint32((979*int32(month) + phase) / 32)

	return int32(yearDays + monthDays + day - invertCal)
}

// ToRataDie64 is the 64-bit widening of ToRataDie32, sharing the oracle's era
// bias so it covers every year the wide variants can produce.
func ToRataDie64(year int64, month, day uint32) int64 {
	return OracleToRataDie64(year, month, day)
}
