package core

// Eras is the forward-counting bucketed variant: the biased input splits into
// 2^20-day buckets, each spanning seven 400-year eras, and the within-bucket
// day count runs through the division pipeline. Covers the full int32 range
// with the quadrupled-day fold baked into the bucket constant.

const (
	erasK = (719162 + 306 - 3845)*4 + 3
	erasL = 14699 * 400

	erasBucketDays  = 7 * 146097
	erasBucketYears = 7 * 400
)

// ErasToDate converts a rata die to a calendar date, correct over the full
// int32 range.
func ErasToDate(n int32) Date32 {
	d0 := uint32(n) + 1<<31

	bucket := d0 >> 20
	days := d0 - erasBucketDays*bucket

	qds := days*4 + erasK
	cen := qds / 146097
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
	year := int32(yrs + bucket*erasBucketYears + bump - erasL)
	return Date32{Year: year, Month: month, Day: d + 1}
}
