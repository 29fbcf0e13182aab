package verify

import (
	"sync"
	"sync/atomic"

	"fastdate/internal/core"
	"fastdate/internal/util"
)

// Range32 sweeps [lo, hi] sequentially, comparing fn against the oracle and
// stopping at the first mismatch.
func Range32(fn ToDate32, lo, hi int32, cfg Config) Report32 {
	span := uint64(int64(hi) - int64(lo) + 1)
	pl := util.NewProgressLogger(span, "sweep: ", cfg.Progress)
	defer pl.Finalize()

	var checked uint64
	for n := lo; ; n++ {
		if got, want := fn(n), core.OracleToDate(n); got != want {
			return Report32{Checked: checked, Partition: -1,
				Mismatch: &Mismatch32{RataDie: n, Got: got, Want: want}}
		}
		checked++
		pl.Log()
		if n == hi {
			break
		}
	}
	return Report32{Checked: checked, Partition: -1}
}

// Range64 is Range32 on the wide pipeline.
func Range64(fn ToDate64, lo, hi int64, cfg Config) Report64 {
	span := uint64(hi-lo) + 1
	pl := util.NewProgressLogger(span, "sweep: ", cfg.Progress)
	defer pl.Finalize()

	var checked uint64
	for n := lo; ; n++ {
		if got, want := fn(n), core.OracleToDate64(n); got != want {
			return Report64{Checked: checked, Partition: -1,
				Mismatch: &Mismatch64{RataDie: n, Got: got, Want: want}}
		}
		checked++
		pl.Log()
		if n == hi {
			break
		}
	}
	return Report64{Checked: checked, Partition: -1}
}

// stopMask throttles how often workers poll the shared stop flag.
const stopMask = 1<<12 - 1

// ParallelRange32 partitions [lo, hi] across workers. Each value is
// independent, so partitions share nothing but the stop flag; the report
// carries the smallest mismatch any partition found.
func ParallelRange32(fn ToDate32, lo, hi int32, cfg Config) Report32 {
	workers := cfg.workers()
	span := uint64(int64(hi) - int64(lo) + 1)
	if workers <= 1 || span < uint64(workers)*2 {
		return Range32(fn, lo, hi, cfg)
	}
	chunk := int64(span / uint64(workers))

	var (
		wg       sync.WaitGroup
		stop     atomic.Bool
		checked  atomic.Uint64
		mu       sync.Mutex
		best     *Mismatch32
		bestPart = -1
	)
	for w := 0; w < workers; w++ {
		wlo := int64(lo) + chunk*int64(w)
		whi := wlo + chunk - 1
		if w == workers-1 {
			whi = int64(hi)
		}
		wg.Add(1)
		go func(part int, wlo, whi int64) {
			defer wg.Done()
			var local uint64
			for n := wlo; n <= whi; n++ {
				if local&stopMask == 0 && stop.Load() {
					break
				}
				got, want := fn(int32(n)), core.OracleToDate(int32(n))
				local++
				if got != want {
					mu.Lock()
					if best == nil || int32(n) < best.RataDie {
						best = &Mismatch32{RataDie: int32(n), Got: got, Want: want}
						bestPart = part
					}
					mu.Unlock()
					if !cfg.KeepGoing {
						stop.Store(true)
					}
					break
				}
			}
			checked.Add(local)
		}(w, wlo, whi)
	}
	wg.Wait()
	return Report32{Checked: checked.Load(), Partition: bestPart, Mismatch: best}
}

// ParallelRange64 is ParallelRange32 on the wide pipeline.
func ParallelRange64(fn ToDate64, lo, hi int64, cfg Config) Report64 {
	workers := cfg.workers()
	span := uint64(hi-lo) + 1
	if workers <= 1 || span < uint64(workers)*2 {
		return Range64(fn, lo, hi, cfg)
	}
	chunk := int64(span / uint64(workers))

	var (
		wg       sync.WaitGroup
		stop     atomic.Bool
		checked  atomic.Uint64
		mu       sync.Mutex
		best     *Mismatch64
		bestPart = -1
	)
	for w := 0; w < workers; w++ {
		wlo := lo + chunk*int64(w)
		whi := wlo + chunk - 1
		if w == workers-1 {
			whi = hi
		}
		wg.Add(1)
		go func(part int, wlo, whi int64) {
			defer wg.Done()
			var local uint64
			// Break before incrementing so a partition ending at MaxInt64
			// cannot wrap.
			for n := wlo; ; n++ {
				if local&stopMask == 0 && stop.Load() {
					break
				}
				got, want := fn(n), core.OracleToDate64(n)
				local++
				if got != want {
					mu.Lock()
					if best == nil || n < best.RataDie {
						best = &Mismatch64{RataDie: n, Got: got, Want: want}
						bestPart = part
					}
					mu.Unlock()
					if !cfg.KeepGoing {
						stop.Store(true)
					}
					break
				}
				if n == whi {
					break
				}
			}
			checked.Add(local)
		}(w, wlo, whi)
	}
	wg.Wait()
	return Report64{Checked: checked.Load(), Partition: bestPart, Mismatch: best}
}

// RandomRange64 samples count rata dies uniformly from [lo, hi] using the
// deterministic sampler, comparing fn against the oracle.
func RandomRange64(fn ToDate64, lo, hi int64, count uint64, cfg Config) Report64 {
	seed := cfg.Seed
	if seed == 0 {
		seed = util.RandomSeed()
	}
	pl := util.NewProgressLogger(count, "random: ", cfg.Progress)
	defer pl.Finalize()

	s := util.NewSampler(seed)
	for i := uint64(0); i < count; i++ {
		n := s.Int64InRange(lo, hi)
		if got, want := fn(n), core.OracleToDate64(n); got != want {
			util.Log(true, "random sweep seed %d failed at element %d", seed, i)
			return Report64{Checked: i, Partition: -1,
				Mismatch: &Mismatch64{RataDie: n, Got: got, Want: want}}
		}
		pl.Log()
	}
	return Report64{Checked: count, Partition: -1}
}
