package core_test

import (
	"testing"

	"fastdate/internal/core"
	"fastdate/internal/verify"
)

func TestFast64KnownDates(t *testing.T) {
	for _, tc := range knownDates {
		if got := core.Fast64ToDate(int64(tc.n)); got != tc.d.Wide() {
			t.Errorf("Fast64ToDate(%d) = %v, want %v", tc.n, got, tc.d)
		}
	}
}

func TestFast64Windows(t *testing.T) {
	centers := []int64{
		0,
		11016,
		146097,
		-146097,
		1 << 32,
		-(1 << 32),
		core.Fast64MismatchUp - 1,
		core.Fast64MismatchDown + 1,
	}
	const radius = 1500
	for _, c := range centers {
		lo, hi := c-radius, c+radius
		if lo <= core.Fast64MismatchDown {
			lo = core.Fast64MismatchDown + 1
		}
		if hi >= core.Fast64MismatchUp {
			hi = core.Fast64MismatchUp - 1
		}
		if r := verify.Range64(core.Fast64ToDate, lo, hi, verify.Config{}); !r.OK() {
			t.Errorf("window around %d: %s", c, r)
		}
	}
}

// The valid domain ends exactly where the year reciprocal first rounds the
// wrong way; pin those two edges so a constant regression is caught.
func TestFast64DomainEdges(t *testing.T) {
	for _, edge := range []int64{core.Fast64MismatchUp, core.Fast64MismatchDown} {
		if got, want := core.Fast64ToDate(edge), core.OracleToDate64(edge); got == want {
			t.Errorf("Fast64ToDate(%d) = %v unexpectedly agrees with the oracle", edge, got)
		}
	}
	for _, inside := range []int64{core.Fast64MismatchUp - 1, core.Fast64MismatchDown + 1} {
		if got, want := core.Fast64ToDate(inside), core.OracleToDate64(inside); got != want {
			t.Errorf("Fast64ToDate(%d) = %v, want %v", inside, got, want)
		}
	}
}

func TestFast64Random(t *testing.T) {
	r := verify.RandomRange64(core.Fast64ToDate,
		core.Fast64MismatchDown+1, core.Fast64MismatchUp-1,
		200000, verify.Config{Seed: 0xfa5764})
	if !r.OK() {
		t.Errorf("%s", r)
	}
}

func TestOrdinalDecodeToDateWindows(t *testing.T) {
	centers := []int64{0, 11016, 146097, -146097, 1 << 33, -(1 << 33)}
	const radius = 1500
	for _, c := range centers {
		if r := verify.Range64(core.OrdinalDecodeToDate, c-radius, c+radius, verify.Config{}); !r.OK() {
			t.Errorf("window around %d: %s", c, r)
		}
	}
}

func TestOrdinalDecodeToDateRandom(t *testing.T) {
	r := verify.RandomRange64(core.OrdinalDecodeToDate,
		core.Fast64MismatchDown+1, core.Fast64MismatchUp-1,
		200000, verify.Config{Seed: 0x0dd1})
	if !r.OK() {
		t.Errorf("%s", r)
	}
}
