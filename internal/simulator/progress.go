package simulator

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// progressReporter logs throughput and time-remaining estimates at a
// fixed interval while workers chew through games. The clock is
// injected so tests can drive it.
type progressReporter struct {
	clock     quartz.Clock
	logger    *log.Logger
	interval  time.Duration
	total     int
	completed atomic.Uint64

	mu        sync.Mutex
	timer     *quartz.Timer
	stopped   bool
	start     time.Time
	lastTime  time.Time
	lastCount uint64
}

func newProgressReporter(clock quartz.Clock, logger *log.Logger, interval time.Duration, total int) *progressReporter {
	return &progressReporter{
		clock:    clock,
		logger:   logger.WithPrefix("progress"),
		interval: interval,
		total:    total,
	}
}

// GameDone records one completed game. Safe to call from any worker.
func (r *progressReporter) GameDone() {
	r.completed.Add(1)
}

// Start begins periodic reporting.
func (r *progressReporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start = r.clock.Now()
	r.lastTime = r.start
	r.timer = r.clock.AfterFunc(r.interval, r.report)
}

// Stop cancels any pending report.
func (r *progressReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// Finish logs the final throughput summary.
func (r *progressReporter) Finish() {
	r.mu.Lock()
	elapsed := r.clock.Since(r.start)
	r.mu.Unlock()

	completed := r.completed.Load()
	perSec := float64(completed) / elapsed.Seconds()
	r.logger.Info("simulation complete",
		"games", completed,
		"elapsed", elapsed.Round(time.Millisecond),
		"games_per_sec", int(perSec))
}

func (r *progressReporter) report() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}

	now := r.clock.Now()
	completed := r.completed.Load()
	window := now.Sub(r.lastTime).Seconds()
	if window > 0 {
		perSec := float64(completed-r.lastCount) / window
		pct := float64(completed) / float64(r.total) * 100
		var remaining time.Duration
		if perSec > 0 {
			remaining = time.Duration(float64(r.total-int(completed)) / perSec * float64(time.Second))
		}
		r.logger.Info("simulating",
			"completed", completed,
			"total", r.total,
			"pct", int(pct),
			"games_per_sec", int(perSec),
			"remaining", remaining.Round(time.Second))
	}
	r.lastTime = now
	r.lastCount = completed

	r.timer = r.clock.AfterFunc(r.interval, r.report)
}
