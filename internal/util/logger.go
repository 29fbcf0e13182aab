// Package util carries the harness-side plumbing: progress reporting for the
// long domain sweeps and deterministic random sampling. Nothing here is used
// by the conversion core itself.
package util

import (
	"fmt"
	"log"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger prints coarse progress for a long sweep. Updates are
// throttled so tight loops can call Log unconditionally.
type ProgressLogger struct {
	totalEvents    uint64
	prefix         string
	loggedEvents   uint64
	logStep        uint64
	nextEventToLog uint64
	enabled        bool
	startTime      time.Time
	lastUpdateTime time.Time
}

// NewProgressLogger creates a progress logger over totalEvents steps.
func NewProgressLogger(totalEvents uint64, prefix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		totalEvents: totalEvents,
		prefix:      prefix,
		enabled:     enable,
		startTime:   time.Now(),
	}
	steps := uint64(20) // 5% steps
	if totalEvents >= 100_000_000 {
		steps = 100 // 1% steps for the big sweeps
	}
	pl.logStep = (totalEvents + steps - 1) / steps
	if pl.logStep == 0 {
		pl.logStep = 1
	}
	if enable {
		pl.nextEventToLog = pl.logStep
	} else {
		pl.nextEventToLog = ^uint64(0)
	}
	return pl
}

// Log counts one event and prints when a step boundary is crossed.
func (pl *ProgressLogger) Log() {
	pl.loggedEvents++
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		pl.nextEventToLog += pl.logStep
		if pl.nextEventToLog > pl.totalEvents {
			pl.nextEventToLog = pl.totalEvents
		}
	}
}

// Add counts n events at once (parallel workers report in batches).
func (pl *ProgressLogger) Add(n uint64) {
	pl.loggedEvents += n
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		for pl.nextEventToLog <= pl.loggedEvents {
			pl.nextEventToLog += pl.logStep
		}
	}
}

// Finalize prints the 100% line with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents = pl.totalEvents
	pl.update(true)
}

func (pl *ProgressLogger) update(final bool) {
	if !pl.enabled {
		return
	}
	now := time.Now()
	if !final && now.Sub(pl.lastUpdateTime) < 100*time.Millisecond {
		return
	}
	pl.lastUpdateTime = now

	perc := uint64(0)
	if pl.totalEvents > 0 {
		perc = 100 * pl.loggedEvents / pl.totalEvents
	}
	fmt.Printf("\r%s%d%%", pl.prefix, perc)
	if final {
		fmt.Printf(" (%.2fs)\n", time.Since(pl.startTime).Seconds())
	}
}
