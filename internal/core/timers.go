package core

import "sort"

// Timers is a single-threaded one-shot callback scheduler on a millisecond clock.
//
// The clock only moves when Advance is called, so a simulation that stops
// advancing also stops its timers. Callbacks run inside Advance, in due order,
// ties broken by scheduling order. A callback may schedule further timers; those
// fire in the same Advance call if already due.
type Timers struct {
	now     int64
	seq     uint64
	pending []*timer
}

type timer struct {
	due int64
	seq uint64
	fn  func()
}

// NewTimers returns an empty scheduler with the clock at zero.
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the current clock value in ms.
func (t *Timers) Now() int64 {
	return t.now
}

// After schedules fn to run once delayMs from now.
func (t *Timers) After(delayMs int64, fn func()) {
	if delayMs < 0 {
		delayMs = 0
	}
	t.seq++
	t.pending = append(t.pending, &timer{due: t.now + delayMs, seq: t.seq, fn: fn})
	sort.SliceStable(t.pending, func(i, j int) bool {
		a, b := t.pending[i], t.pending[j]
		if a.due != b.due {
			return a.due < b.due
		}
		return a.seq < b.seq
	})
}

// Advance moves the clock forward by elapsedMs and runs every timer now due.
func (t *Timers) Advance(elapsedMs int64) {
	t.now += elapsedMs
	for len(t.pending) > 0 && t.pending[0].due <= t.now {
		next := t.pending[0]
		t.pending = t.pending[1:]
		next.fn()
	}
}

// Pending returns the number of timers that have not fired yet.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Clear drops every pending timer. The clock keeps its value.
func (t *Timers) Clear() {
	t.pending = nil
}
