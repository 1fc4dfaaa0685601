// Package countdown drives the timed word pick: three candidate words, a
// fixed time budget, and an automatic pick of the first candidate once the
// budget runs out.
package countdown

import (
	"errors"
	"math"
	"time"
)

// ErrIndex is returned when a candidate index is out of range.
var ErrIndex = errors.New("countdown: candidate index out of range")

// CandidateSet is the three words on offer. Index 0 is the default pick.
type CandidateSet [3]string

// Default is the word committed on timeout.
func (c CandidateSet) Default() string { return c[0] }

// Generate draws each candidate independently, so repeats are possible.
func Generate(draw func() string) CandidateSet {
	return CandidateSet{draw(), draw(), draw()}
}

// ShouldAutoAdvance reports whether elapsed is past the budget. The
// comparison is in milliseconds and strict.
func ShouldAutoAdvance(elapsed time.Duration, durationSeconds int) bool {
	return elapsed.Milliseconds() > int64(durationSeconds)*1000
}

// SecondsLeft is the displayed countdown. It is cosmetic and dips below zero
// near expiry; ShouldAutoAdvance is authoritative.
func SecondsLeft(elapsed time.Duration, durationSeconds int) int {
	return int(math.Round(float64(durationSeconds) - float64(elapsed.Milliseconds())/1000))
}

// Countdown is the state of one word stage instance. It only changes through
// Tick, Choose and Regenerate.
type Countdown struct {
	startTime  time.Time
	elapsed    time.Duration
	duration   int // seconds
	candidates CandidateSet

	draw func() string
	done bool
}

// New starts a countdown at now with freshly drawn candidates.
func New(now time.Time, durationSeconds int, draw func() string) *Countdown {
	return &Countdown{
		startTime:  now,
		duration:   durationSeconds,
		candidates: Generate(draw),
		draw:       draw,
	}
}

// Tick recomputes elapsed time from now. It returns the default candidate
// and true on the first tick past the budget, and never fires again after
// that or after a manual Choose.
func (c *Countdown) Tick(now time.Time) (string, bool) {
	if e := now.Sub(c.startTime); e > c.elapsed {
		c.elapsed = e
	}
	if c.done || !ShouldAutoAdvance(c.elapsed, c.duration) {
		return "", false
	}
	c.done = true
	return c.candidates.Default(), true
}

// Choose commits candidate i regardless of the clock.
func (c *Countdown) Choose(i int) (string, error) {
	if i < 0 || i >= len(c.candidates) {
		return "", ErrIndex
	}
	c.done = true
	return c.candidates[i], nil
}

// Regenerate replaces the whole candidate set. The clock keeps running from
// the original start time.
func (c *Countdown) Regenerate() {
	c.candidates = Generate(c.draw)
}

// SecondsLeft is the displayed value for the current elapsed time.
func (c *Countdown) SecondsLeft() int {
	return SecondsLeft(c.elapsed, c.duration)
}

func (c *Countdown) StartTime() time.Time     { return c.startTime }
func (c *Countdown) Elapsed() time.Duration   { return c.elapsed }
func (c *Countdown) Candidates() CandidateSet { return c.candidates }
func (c *Countdown) DurationSeconds() int     { return c.duration }

// Done reports whether a word has been committed.
func (c *Countdown) Done() bool { return c.done }
