// internal/utils/timer.go
package utils

import "math"

// TimerMode selects whether a Timer stops or wraps around when it completes.
type TimerMode uint8

const (
	Once TimerMode = iota
	Repeating
)

// Timer counts elapsed seconds up to a duration. Time is fed in explicitly
// through Tick so the owner decides what a frame is.
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	finished bool
	times    int // cycles completed during the last Tick
}

// NewTimer creates a timer of the given length in seconds.
func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{duration: seconds, mode: mode}
}

// Tick advances the timer by dt seconds. Negative deltas are treated as zero.
func (t *Timer) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if t.mode == Once && t.finished {
		t.times = 0
		return
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		t.times = 0
		t.finished = false
		return
	}

	t.finished = true
	if t.mode == Once {
		t.times = 1
		t.elapsed = t.duration
		return
	}
	if t.duration <= 0 {
		t.times = 1
		t.elapsed = 0
		return
	}
	t.times = int(t.elapsed / t.duration)
	t.elapsed = math.Mod(t.elapsed, t.duration)
}

// JustFinished reports whether the last Tick completed at least one cycle.
func (t *Timer) JustFinished() bool {
	return t.times > 0
}

// TimesFinishedThisTick returns how many cycles the last Tick completed.
// It can exceed one when a frame is longer than the duration.
func (t *Timer) TimesFinishedThisTick() int {
	return t.times
}

// Finished reports whether the timer has reached its duration. Repeating
// timers are finished only on the tick that wraps them.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the seconds accumulated in the current cycle.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the cycle length in seconds.
func (t *Timer) Duration() float64 {
	return t.duration
}

// Remaining returns the seconds left in the current cycle.
func (t *Timer) Remaining() float64 {
	return math.Max(t.duration-t.elapsed, 0)
}

// Reset rewinds the timer to the start of a cycle.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.times = 0
}

// Stopwatch accumulates elapsed seconds without a target.
type Stopwatch struct {
	elapsed float64
}

// Tick adds dt seconds. Negative deltas are ignored.
func (s *Stopwatch) Tick(dt float64) {
	if dt > 0 {
		s.elapsed += dt
	}
}

// Elapsed returns the accumulated seconds.
func (s *Stopwatch) Elapsed() float64 {
	return s.elapsed
}

// Reset sets the stopwatch back to zero.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
}
