package core

// Offsets is the table-driven era variant: the top three bits of the raw
// input select one of eight 3674-era windows, and a 16-entry table supplies
// the matching day and year shifts. The window straddling the int32 wrap
// (bucket 4) folds the 2^32 bias into its day entry.

var offsetTable = [16]int32{
	// [0:8] day shifts: 719468 + 14696*146097 - k*3674*146097.
	719468,      // k = 4
	-536040910,  // k = 5
	-1072801288, // k = 6
	-1609561666, // k = 7
	-2147206316, // k = 0, minus 2^32
	1611000602,  // k = 1
	1074240224,  // k = 2
	537479846,   // k = 3

	// [8:16] year shifts: 14696*400 - k*3674*400.
	0,        // k = 4
	-1469600, // k = 5
	-2939200, // k = 6
	-4408800, // k = 7
	5878400,  // k = 0
	4408800,  // k = 1
	2939200,  // k = 2
	1469600,  // k = 3
}

// OffsetsToDate converts a rata die to a calendar date, correct over the
// full int32 range.
func OffsetsToDate(n int32) Date32 {
	bucket := uint32(n) >> 29 // 0..7

	dayOff := uint32(offsetTable[bucket])
	yearOff := uint32(offsetTable[bucket+8])

	days := uint32(n) + dayOff

	qds := days*4 + 3
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
	return Date32{Year: int32(yrs - yearOff + bump), Month: month, Day: d + 1}
}
