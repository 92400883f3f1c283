// Package metrics accumulates per-phase counters for the run report.
package metrics

import "time"

// Tally counts processed images and prediction errors for one phase and
// tracks the phase's wall-clock time.
type Tally struct {
	processed int
	errors    int
	started   time.Time
	elapsed   time.Duration
}

// Start marks the beginning of the phase.
func (t *Tally) Start() {
	t.started = time.Now()
}

// Stop freezes the phase's elapsed time.
func (t *Tally) Stop() {
	t.elapsed = time.Since(t.started)
}

// Record adds one prediction outcome.
func (t *Tally) Record(correct bool) {
	t.processed++
	if !correct {
		t.errors++
	}
}

// Processed returns the number of recorded outcomes.
func (t *Tally) Processed() int { return t.processed }

// Errors returns the number of mispredictions.
func (t *Tally) Errors() int { return t.errors }

// SuccessRate returns 100 × (1 − errors/processed), or 0 before any outcome
// is recorded.
func (t *Tally) SuccessRate() float64 {
	if t.processed == 0 {
		return 0
	}
	return 100 * (1 - float64(t.errors)/float64(t.processed))
}

// Elapsed returns the phase duration between Start and Stop.
func (t *Tally) Elapsed() time.Duration { return t.elapsed }

// ImagesPerSec returns the phase throughput, or 0 if no time has elapsed.
func (t *Tally) ImagesPerSec() float64 {
	if t.elapsed <= 0 {
		return 0
	}
	return float64(t.processed) / t.elapsed.Seconds()
}
