package core

// Reference oracle: the published Neri-Schneider conversion, widened to
// 64-bit intermediates so one implementation covers every domain the fast
// variants declare. It exists purely as ground truth for the differential
// harnesses and is deliberately left unoptimized.

const (
	// oracleEra shifts the input by a huge multiple of the 400-year cycle
	// (146097 days) so all intermediate arithmetic is non-negative.
	oracleEra = (uint64(1) << 61) / 146097

	oracleK = 719468 + 146097*oracleEra // rata-die shift
	oracleL = 400 * oracleEra           // year shift
)

// OracleMin64 and OracleMax64 bound the oracle's valid rata-die inputs: the
// shifted day count must stay non-negative and 4*N+3 must not wrap a uint64.
const (
	OracleMin64 = -int64(oracleK)
	OracleMax64 = int64(uint64(1)<<62 - 1 - oracleK)
)

// OracleToDate64 converts a rata die to a calendar date,
// valid for n in [OracleMin64, OracleMax64].
func OracleToDate64(n int64) Date64 {
	assertDomain(n >= OracleMin64 && n <= OracleMax64, "oracle rata die")

	// Rata-die shift.
	u := uint64(n) + oracleK

	// Century via scaled division by 146097.
	n1 := 4*u + 3
	c := n1 / 146097
	nc := uint32(n1 % 146097 / 4)

	// Year within century via the 2939745 reciprocal of 1461/4.
	n2 := 4*nc + 3
	p2 := uint64(2939745) * uint64(n2)
	z := uint32(p2 >> 32)
	ny := uint32(p2) / 2939745 / 4
	y := 100*c + uint64(z)

	// Month and day from the March-based remainder:
	// N = 2141*ny + 197913, month = N/65536, day = N%65536/2141.
	n3 := 2141*ny + 197913
	m := n3 / 65536
	d := n3 % 65536 / 2141

	// Jan/Feb belong to the next calendar year.
	j := uint64(0)
	month := m
	if ny >= 306 {
		j = 1
		month = m - 12
	}
	return Date64{Year: int64(y - oracleL + j), Month: month, Day: d + 1}
}

// OracleToRataDie64 converts a calendar date to its rata die. The date must
// be valid (1 <= month <= 12, 1 <= day <= DaysInMonth) and its rata die must
// lie within [OracleMin64, OracleMax64].
func OracleToRataDie64(year int64, month, day uint32) int64 {
	assertDomain(month >= 1 && month <= 12, "oracle month")

	// Jan/Feb count as months 13/14 of the previous year.
	bump := uint64(0)
	phase := int64(-2919)
	if month <= 2 {
		bump = 1
		phase = 8829
	}
	yrs := uint64(year) + oracleL - bump
	cen := yrs / 100

	yearDays := 365*yrs + yrs/4 - cen + cen/4
	monthDays := uint64((979*int64(month) + phase) / 32)

	return int64(yearDays + monthDays + uint64(day) - (oracleK + 1))
}

// OracleToDate converts a rata die to a calendar date, correct over the full
// signed 32-bit range.
func OracleToDate(n int32) Date32 {
	d := OracleToDate64(int64(n))
	return Date32{Year: int32(d.Year), Month: d.Month, Day: d.Day}
}

// OracleToRataDie converts a valid calendar date whose rata die fits in an
// int32.
func OracleToRataDie(year int32, month, day uint32) int32 {
	return int32(OracleToRataDie64(int64(year), month, day))
}
