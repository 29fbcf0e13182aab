package core

// Constant-time leap-year predicates. The expensive part of the Gregorian
// rule is the century test year%100 == 0; each width replaces it with a bias
// into an unsigned domain, a multiply by a fixed-point reciprocal of 100, and
// a cutoff compare that isolates the zero residue class. The century flag
// then selects the final divisibility mask: 16 for century years (leap iff
// divisible by 400), 4 otherwise. The constant groups are per-width atomic
// units; they are not interchangeable.

// 16-bit constants found by exhaustive search over the int16 domain.
const (
	leap16Mul    = uint16(23593)
	leap16Cutoff = uint16(2622)
	leap16Bias   = uint16((1 << 15) / 100 * 100)
)

// IsLeap16 reports whether year is a Gregorian leap year.
// Total over the full int16 range.
func IsLeap16(year int16) bool {
	low := (uint16(year) + leap16Bias) * leap16Mul
	if low < leap16Cutoff {
		return year%16 == 0
	}
	return year%4 == 0
}

const (
	// Standard 32-bit reciprocal of 100: ceil(2^32 / 100) = 42949673.
	leap32Mul = uint32(1<<32/100) + 1
	// Isolates the %100 == 0 residue after bias and 32-bit wrap.
	leap32Cutoff = leap32Mul * 4
	// A multiple of 100 near 2^31, keeping residues aligned after bias.
	leap32Bias = leap32Mul / 2 * 100
)

// IsLeap32 reports whether year is a Gregorian leap year.
// Total over the full int32 range.
func IsLeap32(year int32) bool {
	low := (uint32(year) + leap32Bias) * leap32Mul
	if low < leap32Cutoff {
		return year%16 == 0
	}
	return year%4 == 0
}

// IsLeapU32 is the unsigned form of IsLeap32; no bias is needed.
func IsLeapU32(year uint32) bool {
	low := year * leap32Mul
	if low < leap32Cutoff {
		return year%16 == 0
	}
	return year%4 == 0
}

const (
	leap64Mul    = uint64(1106804644422573097)
	leap64Cutoff = uint64(737869762948382065)
	leap64Bias   = uint64((1 << 63) / 100 * 100)
)

// IsLeap64 reports whether year is a Gregorian leap year.
// Total over the full int64 range.
func IsLeap64(year int64) bool {
	low := (uint64(year) + leap64Bias) * leap64Mul
	if low < leap64Cutoff {
		return year%16 == 0
	}
	return year%4 == 0
}

// isLeapMask32 is the Neri-Schneider mask form: one signed century test
// selecting a power-of-two mask. Kept as a mid-speed cross-check.
func isLeapMask32(year int32) bool {
	mask := int32(3)
	if year%100 == 0 {
		mask = 15
	}
	return year&mask == 0
}

func isLeapMask64(year int64) bool {
	mask := int64(3)
	if year%100 == 0 {
		mask = 15
	}
	return year&mask == 0
}
