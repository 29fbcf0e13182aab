// Package verify implements the differential search harnesses: exhaustive,
// partitioned-parallel, and random sweeps that compare a conversion variant
// against the reference oracle over a chosen domain, reporting the first
// mismatch found and which partition produced it. Harness policy (worker
// count, early stop, progress) lives here; the core's contract is untouched.
package verify

import (
	"fmt"
	"runtime"

	"fastdate/internal/core"
)

// ToDate32 is a forward conversion under test.
type ToDate32 func(int32) core.Date32

// ToDate64 is a wide forward conversion under test.
type ToDate64 func(int64) core.Date64

// FromDate is an inverse conversion under test.
type FromDate func(year int32, month, day uint32) int32

// Config controls how a sweep executes.
type Config struct {
	// Workers is the number of parallel partitions; 0 means NumCPU.
	Workers int
	// Progress enables coarse progress printing for long sweeps.
	Progress bool
	// KeepGoing lets the remaining partitions run to completion after a
	// mismatch is found. The report still carries the smallest mismatch.
	KeepGoing bool
	// Seed drives the random sweeps; 0 means pick one (it is echoed in
	// failure output either way, so runs stay reproducible).
	Seed uint64
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Mismatch32 is a disagreement between a variant and the oracle.
type Mismatch32 struct {
	RataDie int32
	Got     core.Date32
	Want    core.Date32
}

// Mismatch64 is a disagreement on the wide pipeline.
type Mismatch64 struct {
	RataDie int64
	Got     core.Date64
	Want    core.Date64
}

// Report32 summarizes a 32-bit sweep. Partition is the index of the worker
// that produced the mismatch, or -1 for sequential sweeps.
type Report32 struct {
	Checked   uint64
	Partition int
	Mismatch  *Mismatch32
}

// OK reports whether the sweep found no mismatch.
func (r Report32) OK() bool { return r.Mismatch == nil }

func (r Report32) String() string {
	if r.OK() {
		return fmt.Sprintf("pass: %d values checked", r.Checked)
	}
	m := r.Mismatch
	return fmt.Sprintf("mismatch at rata die %d (partition %d): got %v, want %v after %d values",
		m.RataDie, r.Partition, m.Got, m.Want, r.Checked)
}

// Report64 summarizes a 64-bit sweep.
type Report64 struct {
	Checked   uint64
	Partition int
	Mismatch  *Mismatch64
}

// OK reports whether the sweep found no mismatch.
func (r Report64) OK() bool { return r.Mismatch == nil }

func (r Report64) String() string {
	if r.OK() {
		return fmt.Sprintf("pass: %d values checked", r.Checked)
	}
	m := r.Mismatch
	return fmt.Sprintf("mismatch at rata die %d (partition %d): got %v, want %v after %d values",
		m.RataDie, r.Partition, m.Got, m.Want, r.Checked)
}
