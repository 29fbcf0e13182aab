package core_test

import (
	"math"
	"testing"

	"fastdate/internal/core"
	"fastdate/internal/util"
)

func TestOrdinalKnown(t *testing.T) {
	cases := []struct {
		n int32
		o core.Ordinal32
	}{
		{0, core.Ordinal32{Year: 1970, Ordinal: 1}},
		{364, core.Ordinal32{Year: 1970, Ordinal: 365}},
		{10957, core.Ordinal32{Year: 2000, Ordinal: 1, Leap: true}},
		{11016, core.Ordinal32{Year: 2000, Ordinal: 60, Leap: true}}, // Feb 29
		{11017, core.Ordinal32{Year: 2000, Ordinal: 61, Leap: true}},
		{11322, core.Ordinal32{Year: 2000, Ordinal: 366, Leap: true}},
		{19722, core.Ordinal32{Year: 2023, Ordinal: 365}},
		{-25509, core.Ordinal32{Year: 1900, Ordinal: 59}}, // Feb 28, not leap
	}
	for _, tc := range cases {
		if got := core.OrdinalRef32(tc.n); got != tc.o {
			t.Errorf("OrdinalRef32(%d) = %v, want %v", tc.n, got, tc.o)
		}
		if got := core.OrdinalFast32(tc.n); got != tc.o {
			t.Errorf("OrdinalFast32(%d) = %v, want %v", tc.n, got, tc.o)
		}
		if got := core.OrdinalTimeRS(tc.n); got != tc.o {
			t.Errorf("OrdinalTimeRS(%d) = %v, want %v", tc.n, got, tc.o)
		}
	}
}

func ordinalWindow(t *testing.T, name string, fn func(int32) core.Ordinal32, lo, hi int32) {
	t.Helper()
	for n := lo; ; n++ {
		if got, want := fn(n), core.OrdinalRef32(n); got != want {
			t.Fatalf("%s(%d) = %v, want %v", name, n, got, want)
		}
		if n == hi {
			break
		}
	}
}

func TestOrdinalFast32Windows(t *testing.T) {
	centers := []int64{0, 11016, -25509, 146097, -146097, math.MinInt32, math.MaxInt32}
	const radius = 1500
	for _, c := range centers {
		lo := c - radius
		if lo < math.MinInt32 {
			lo = math.MinInt32
		}
		hi := c + radius
		if hi > math.MaxInt32 {
			hi = math.MaxInt32
		}
		ordinalWindow(t, "OrdinalFast32", core.OrdinalFast32, int32(lo), int32(hi))
	}
}

func TestOrdinalTimeRSWindows(t *testing.T) {
	centers := []int64{
		0, 11016, 146097,
		int64(core.OrdinalTimeRSMin),
		int64(core.OrdinalTimeRSMax),
	}
	const radius = 1500
	for _, c := range centers {
		lo := c - radius
		if lo < int64(core.OrdinalTimeRSMin) {
			lo = int64(core.OrdinalTimeRSMin)
		}
		hi := c + radius
		if hi > int64(core.OrdinalTimeRSMax) {
			hi = int64(core.OrdinalTimeRSMax)
		}
		ordinalWindow(t, "OrdinalTimeRS", core.OrdinalTimeRS, int32(lo), int32(hi))
	}
}

func TestOrdinalRandom(t *testing.T) {
	const count = 50000
	s := util.NewSampler(0x02d17a1)
	for i := 0; i < count; i++ {
		n := s.Int32InRange(math.MinInt32, math.MaxInt32)
		want := core.OrdinalRef32(n)
		if got := core.OrdinalFast32(n); got != want {
			t.Fatalf("OrdinalFast32(%d) = %v, want %v", n, got, want)
		}
		if n >= core.OrdinalTimeRSMin && n <= core.OrdinalTimeRSMax {
			if got := core.OrdinalTimeRS(n); got != want {
				t.Fatalf("OrdinalTimeRS(%d) = %v, want %v", n, got, want)
			}
		}
	}
}

// Ordinal agrees with the calendar decode over a dense span: the ordinal of a
// date equals the day count since December 31 of the prior year.
func TestOrdinalMatchesCalendar(t *testing.T) {
	for n := int32(-400 * 366); n <= 400*366; n++ {
		d := core.OracleToDate(n)
		o := core.OrdinalFast32(n)
		if o.Year != d.Year {
			t.Fatalf("rata die %d: ordinal year %d, calendar year %d", n, o.Year, d.Year)
		}
		start := core.OracleToRataDie(d.Year, 1, 1)
		if want := uint32(n-start) + 1; o.Ordinal != want {
			t.Fatalf("rata die %d: ordinal %d, want %d", n, o.Ordinal, want)
		}
		if o.Leap != core.IsLeap32(d.Year) {
			t.Fatalf("rata die %d: leap flag %v for year %d", n, o.Leap, d.Year)
		}
	}
}
