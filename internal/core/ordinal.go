package core

// Ordinal variants derive year and day-of-year without ever decoding month
// and day. The year pipeline is the same as the conversion variants'; the
// ordinal falls straight out of the March-based remainder:
// Jan 1 sits at remainder 306, so rem >= 306 maps to rem-305 and the rest to
// rem+60(+1 in leap years). Ordinals are 1-indexed throughout.

const (
	ordTimeRSEras = 2500
	ordTimeRSK    = 719468 + 146097*ordTimeRSEras
	ordTimeRSL    = 400 * ordTimeRSEras
)

// OrdinalTimeRSMin and OrdinalTimeRSMax bound OrdinalTimeRS: the shifted day
// count must be non-negative and its quadruple must fit in a uint32.
const (
	OrdinalTimeRSMin = -int32(ordTimeRSK)
	OrdinalTimeRSMax = int32(1<<30 - 1 - ordTimeRSK)
)

// OrdinalTimeRS converts a rata die in [OrdinalTimeRSMin, OrdinalTimeRSMax]
// to an ordinal date, using the century-split year derivation with the
// 2939745 reciprocal and an inline mask leap test.
func OrdinalTimeRS(n int32) Ordinal32 {
	assertDomain(n >= OrdinalTimeRSMin && n <= OrdinalTimeRSMax, "timers rata die")

	u := uint32(n) + ordTimeRSK

	n1 := 4*u + 3
	c := n1 / 146097
	nc := n1 % 146097 / 4

	n2 := 4*nc + 3
	p2 := uint64(2939745) * uint64(n2)
	z := uint32(p2 >> 32)
	ny := uint32(p2) / 2939745 / 4
	y := 100*c + z

	j := ny >= 306
	year := int32(y - ordTimeRSL)
	if j {
		year++
	}

	mask := int32(3)
	if year%100 == 0 {
		mask = 15
	}
	leap := year&mask == 0

	var ordinal uint32
	if j {
		ordinal = ny - 305
	} else {
		ordinal = ny + 60
		if leap {
			ordinal++
		}
	}
	return Ordinal32{Year: year, Ordinal: ordinal, Leap: leap}
}

// OrdinalFast32 converts a rata die to an ordinal date, correct over the
// full int32 range. Year and remainder come from the bucketed era pipeline
// (see ErasToDate); the month/day decode is skipped entirely.
func OrdinalFast32(n int32) Ordinal32 {
	d0 := uint32(n) + 1<<31

	bucket := d0 >> 20
	days := d0 - erasBucketDays*bucket

	qds := days*4 + erasK
	cen := qds / 146097
	jul := qds - (cen &^ 3) + cen*4
	yrs := jul / 1461
	rem := jul % 1461 / 4

	j := rem >= 306
	year := int32(yrs + bucket*erasBucketYears - erasL)
	if j {
		year++
	}

	mask := int32(3)
	if year%100 == 0 {
		mask = 15
	}
	leap := year&mask == 0

	var ordinal uint32
	if j {
		ordinal = rem - 305
	} else {
		ordinal = rem + 60
		if leap {
			ordinal++
		}
	}
	return Ordinal32{Year: year, Ordinal: ordinal, Leap: leap}
}

// OrdinalRef32 is the oracle-backed ordinal reference: year from the oracle,
// ordinal by subtracting the year's first rata die, leap from the year
// length. Harness ground truth only; not intended to be fast.
func OrdinalRef32(n int32) Ordinal32 {
	d := OracleToDate(n)
	rd0 := OracleToRataDie(d.Year, 1, 1)
	rd1 := OracleToRataDie(d.Year+1, 1, 1)
	return Ordinal32{
		Year:    d.Year,
		Ordinal: uint32(n-rd0) + 1,
		Leap:    rd1-rd0 == 366,
	}
}

// ordinalFromFast64 derives (year, ordinal, leap) from the Fast64 pipeline,
// for rata dies within the Fast64 domain.
func ordinalFromFast64(n int64) (year int64, ordinal uint32, leap bool) {
	d := Fast64ToDate(n)
	rd0 := ToRataDie64(d.Year, 1, 1)
	rd1 := ToRataDie64(d.Year+1, 1, 1)
	return d.Year, uint32(n-rd0) + 1, rd1-rd0 == 366
}
