package util

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RandomSeed generates a seed for the samplers. The seed is the only state a
// failing random sweep needs to report to be reproducible.
func RandomSeed() uint64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Uint64()
}

// Sampler is a deterministic stream of 64-bit values: element i is the
// xxHash of (seed, i). Any worker can jump to an arbitrary index, so a
// partitioned sweep needs no shared generator state.
type Sampler struct {
	seed uint64
	next uint64
}

// NewSampler returns a sampler positioned at element 0.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{seed: seed}
}

// SampleAt returns element i of the stream for seed.
func SampleAt(seed, i uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], i)
	return xxhash.Sum64(buf[:])
}

// Next returns the next element of the stream.
func (s *Sampler) Next() uint64 {
	v := SampleAt(s.seed, s.next)
	s.next++
	return v
}

// Int64InRange returns the next element mapped into [lo, hi].
func (s *Sampler) Int64InRange(lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 { // full 64-bit range
		return int64(s.Next())
	}
	return lo + int64(s.Next()%span)
}

// Int32InRange returns the next element mapped into [lo, hi].
func (s *Sampler) Int32InRange(lo, hi int32) int32 {
	return int32(s.Int64InRange(int64(lo), int64(hi)))
}
