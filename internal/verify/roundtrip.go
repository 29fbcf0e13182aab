package verify

import (
	"fmt"

	"fastdate/internal/core"
)

// RoundTripDates enumerates every valid calendar date in years
// [yearLo, yearHi] and checks both round-trip directions: the date survives
// from(...) then to(...), and the rata die survives to(...) then from(...).
func RoundTripDates(to ToDate32, from FromDate, yearLo, yearHi int32) (uint64, error) {
	var checked uint64
	for y := yearLo; ; y++ {
		for m := uint32(1); m <= 12; m++ {
			last := core.DaysInMonth(y, m)
			for d := uint32(1); d <= last; d++ {
				n := from(y, m, d)
				got := to(n)
				if got != (core.Date32{Year: y, Month: m, Day: d}) {
					return checked, fmt.Errorf("date round trip: %d-%02d-%02d -> %d -> %v", y, m, d, n, got)
				}
				if back := from(got.Year, got.Month, got.Day); back != n {
					return checked, fmt.Errorf("rata die round trip: %d -> %v -> %d", n, got, back)
				}
				checked++
			}
		}
		if y == yearHi {
			break
		}
	}
	return checked, nil
}

// RoundTripDays checks from(to(n)) == n for every rata die in [lo, hi].
func RoundTripDays(to ToDate32, from FromDate, lo, hi int32) (uint64, error) {
	var checked uint64
	for n := lo; ; n++ {
		d := to(n)
		if back := from(d.Year, d.Month, d.Day); back != n {
			return checked, fmt.Errorf("rata die round trip: %d -> %v -> %d", n, d, back)
		}
		checked++
		if n == hi {
			break
		}
	}
	return checked, nil
}
