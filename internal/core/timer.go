package core

import "time"

// FixedStep paces solver updates at a steady ticks-per-second rate
// independent of the render frame rate. Field solvers care about this
// more than automata do: skipping or doubling integration steps changes
// the trajectory, not just the animation speed.
type FixedStep struct {
	step        time.Duration
	tps         int
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current target tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// ShouldStep reports whether the simulation should advance by one tick.
// The backlog is capped at a handful of steps so a stall in the host
// does not trigger a burst of catch-up integration.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if max := 4 * f.step; f.accumulator > max {
		f.accumulator = max
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
