// Package core implements fast conversions between rata die day counts and
// proleptic Gregorian calendar dates.
//
// A rata die is a signed day count with day 0 = 1970-01-01. Every conversion
// in this package, including the reference oracle, uses that convention, so
// results from different variants are directly comparable.
//
// All conversions are pure integer arithmetic with no allocation and no true
// division in the hot paths; divisions by the calendar constants are
// replaced by multiplications against fixed-point reciprocals. Each fast
// variant is correct only over its documented input domain; outside it the
// result silently wraps (the verify package holds the harnesses that
// establish and defend the bounds).
package core

import "fmt"

// debugDate enables domain assertions in the conversion helpers. It must stay
// false in release builds: the variants are branch-minimal by design.
const debugDate = false

// Date32 is a Gregorian calendar date with a 32-bit year.
// Month is 1..12 and Day is 1..31, bounded by DaysInMonth.
type Date32 struct {
	Year  int32
	Month uint32
	Day   uint32
}

func (d Date32) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Wide converts d to a Date64.
func (d Date32) Wide() Date64 {
	return Date64{Year: int64(d.Year), Month: d.Month, Day: d.Day}
}

// Date64 is a Gregorian calendar date with a 64-bit year, produced by the
// wide variants whose rata-die domain exceeds int32.
type Date64 struct {
	Year  int64
	Month uint32
	Day   uint32
}

func (d Date64) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Ordinal32 is a year plus a 1-indexed day-of-year ordinal: 1..365, or 1..366
// when Leap is set.
type Ordinal32 struct {
	Year    int32
	Ordinal uint32
	Leap    bool
}

func (o Ordinal32) String() string {
	l := ""
	if o.Leap {
		l = " (leap)"
	}
	return fmt.Sprintf("%d-%03d%s", o.Year, o.Ordinal, l)
}

var daysPerMonth = [13]uint32{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of year.
// Used by the round-trip harnesses to enumerate valid dates.
func DaysInMonth(year int32, month uint32) uint32 {
	if month == 2 && IsLeap32(year) {
		return 29
	}
	return daysPerMonth[month]
}

func assertDomain(ok bool, what string) {
	if debugDate && !ok {
		panic("core: input outside declared domain: " + what)
	}
}
