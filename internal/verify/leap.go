package verify

import (
	"math"

	"fastdate/internal/util"
)

// The leap harnesses compare a predicate against the textbook rule, which is
// trusted as ground truth and never replaced by a faster form here.

func leapNaive16(y int16) bool { return y%4 == 0 && (y%100 != 0 || y%400 == 0) }
func leapNaive32(y int32) bool { return y%4 == 0 && (y%100 != 0 || y%400 == 0) }
func leapNaive64(y int64) bool { return y%4 == 0 && (y%100 != 0 || y%400 == 0) }

// LeapRange16 sweeps the full int16 domain; returns the count checked and
// the first mismatching year, if any.
func LeapRange16(fn func(int16) bool) (uint64, *int16) {
	var checked uint64
	for y := int16(math.MinInt16); ; y++ {
		if fn(y) != leapNaive16(y) {
			bad := y
			return checked, &bad
		}
		checked++
		if y == math.MaxInt16 {
			break
		}
	}
	return checked, nil
}

// LeapRange32 sweeps years [lo, hi] against the textbook rule.
func LeapRange32(fn func(int32) bool, lo, hi int32) (uint64, *int32) {
	var checked uint64
	for y := lo; ; y++ {
		if fn(y) != leapNaive32(y) {
			bad := y
			return checked, &bad
		}
		checked++
		if y == hi {
			break
		}
	}
	return checked, nil
}

// LeapRangeU32 sweeps unsigned years [lo, hi].
func LeapRangeU32(fn func(uint32) bool, lo, hi uint32) (uint64, *uint32) {
	var checked uint64
	for y := lo; ; y++ {
		if fn(y) != leapNaive64(int64(y)) {
			bad := y
			return checked, &bad
		}
		checked++
		if y == hi {
			break
		}
	}
	return checked, nil
}

// LeapRange64 sweeps years [lo, hi] on the 64-bit predicate.
func LeapRange64(fn func(int64) bool, lo, hi int64) (uint64, *int64) {
	var checked uint64
	for y := lo; ; y++ {
		if fn(y) != leapNaive64(y) {
			bad := y
			return checked, &bad
		}
		checked++
		if y == hi {
			break
		}
	}
	return checked, nil
}

// LeapRandom64 samples count years uniformly from [lo, hi].
func LeapRandom64(fn func(int64) bool, lo, hi int64, count, seed uint64) (uint64, *int64) {
	s := util.NewSampler(seed)
	for i := uint64(0); i < count; i++ {
		y := s.Int64InRange(lo, hi)
		if fn(y) != leapNaive64(y) {
			bad := y
			return i, &bad
		}
	}
	return count, nil
}
