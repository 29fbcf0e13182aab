package core

// Fast32Wide extends the backward-counting pipeline to the full signed
// 32-bit rata-die range with a bucketing step: a cheap shift partitions the
// biased input into buckets of 2^17 days, each inside one 400-year era, and
// the within-bucket remainder runs through the narrow fast path. Only the
// bucket width and the per-bucket day/year deltas differ from Fast32.

const (
	// Anchored one era above the bucket base: a 2^17-day bucket can trail
	// its era start by up to 116210 days, so the single-era anchor keeps
	// the reversed count non-negative even in the lowest buckets.
	fast32WideK = 146097*6 - 719162 - 307 + 3845
	// 14693 rather than 14696: the bucket fold-back supplies the rest.
	fast32WideL = 14693*400 + 1

	// One 400-year era per bucket when counting backwards.
	fast32WideBucketDays  = 146097
	fast32WideBucketYears = 400
)

// Fast32WideToDate converts a rata die to a calendar date, correct over the
// full int32 range.
func Fast32WideToDate(n int32) Date32 {
	d0 := uint32(n) + 1<<31

	bucket := d0 >> 17
	rev := bucket*fast32WideBucketDays - d0 + fast32WideK

	// 2^47 * 4 / 146097 = 3853261555.14
	cen := uint32(uint64(rev) * 3853261555 >> 47)
	jul := rev + cen - cen/4
	// 2^40 * 4 / 1461 = 3010298775.5
	yrs := uint32(uint64(jul) * 3010298776 >> 40)
	rem := jul - yrs*1461/4

	month, day, bump := decodeBackward(rem)
	year := int32(fast32WideBucketYears*bucket - fast32WideL - yrs + bump)
	return Date32{Year: year, Month: month, Day: day}
}
