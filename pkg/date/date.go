// Package date is the public face of the conversion family. It pins one
// recommended variant per width: the full-range bucketed variant for 32-bit
// rata dies and the backward-counting wide variant for 64-bit ones. Callers
// who want a specific variant or the harnesses use the internal packages.
//
// Rata die 0 is 1970-01-01 in the proleptic Gregorian calendar. Inputs
// outside the documented domains are not rejected; the result is unspecified.
package date

import "fastdate/internal/core"

// MinRataDie64 and MaxRataDie64 bound FromRataDie64: the first values beyond
// them in each direction are exactly where the wide variant's fixed-point
// approximation goes inexact.
const (
	MinRataDie64 = core.Fast64MismatchDown + 1
	MaxRataDie64 = core.Fast64MismatchUp - 1
)

// FromRataDie converts a rata die to (year, month, day), correct over the
// full int32 range.
func FromRataDie(n int32) (year int32, month, day uint32) {
	d := core.Fast32WideToDate(n)
	return d.Year, d.Month, d.Day
}

// ToRataDie converts a valid calendar date to its rata die. The date must be
// valid and its rata die must fit in an int32; no validation is performed.
func ToRataDie(year int32, month, day uint32) int32 {
	return core.ToRataDie32(year, month, day)
}

// FromRataDie64 converts a rata die in [MinRataDie64, MaxRataDie64] to
// (year, month, day).
func FromRataDie64(n int64) (year int64, month, day uint32) {
	d := core.Fast64ToDate(n)
	return d.Year, d.Month, d.Day
}

// ToRataDie64 converts a valid calendar date to its rata die.
func ToRataDie64(year int64, month, day uint32) int64 {
	return core.ToRataDie64(year, month, day)
}

// ToOrdinal converts a rata die to (year, day-of-year, leap), correct over
// the full int32 range. The ordinal is 1-indexed: 1..365, or 1..366 when
// leap is true.
func ToOrdinal(n int32) (year int32, ordinal uint32, leap bool) {
	o := core.OrdinalFast32(n)
	return o.Year, o.Ordinal, o.Leap
}

// IsLeap reports whether year is a Gregorian leap year, for any int32 year.
func IsLeap(year int32) bool {
	return core.IsLeap32(year)
}
