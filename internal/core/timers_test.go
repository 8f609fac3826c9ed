package core

import (
	"slices"
	"testing"
)

func TestTimersFireInDueOrder(t *testing.T) {
	tm := NewTimers()
	var fired []string
	tm.After(300, func() { fired = append(fired, "c") })
	tm.After(100, func() { fired = append(fired, "a") })
	tm.After(100, func() { fired = append(fired, "b") })

	tm.Advance(99)
	if len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}
	tm.Advance(1)
	if !slices.Equal(fired, []string{"a", "b"}) {
		t.Errorf("fired = %v, expected [a b]", fired)
	}
	tm.Advance(500)
	if !slices.Equal(fired, []string{"a", "b", "c"}) {
		t.Errorf("fired = %v, expected [a b c]", fired)
	}
	if tm.Pending() != 0 || tm.Now() != 600 {
		t.Errorf("Pending=%d Now=%d", tm.Pending(), tm.Now())
	}
}

func TestTimersChainedCallback(t *testing.T) {
	tm := NewTimers()
	count := 0
	tm.After(10, func() {
		count++
		tm.After(0, func() { count++ })
		tm.After(50, func() { count++ })
	})

	tm.Advance(20)
	if count != 2 {
		t.Errorf("count = %d, expected the zero-delay follow-up to fire too", count)
	}
	tm.Advance(49)
	if count != 2 {
		t.Errorf("count = %d, follow-up is due at 70", count)
	}
	tm.Advance(1)
	if count != 3 {
		t.Errorf("count = %d, expected 3", count)
	}
}

func TestTimersClear(t *testing.T) {
	tm := NewTimers()
	fired := false
	tm.After(10, func() { fired = true })
	tm.Advance(5)
	tm.Clear()
	tm.Advance(100)
	if fired {
		t.Error("cleared timer fired")
	}
	if tm.Now() != 105 {
		t.Errorf("Clear should keep the clock, Now = %d", tm.Now())
	}
}

func TestTimersNegativeDelay(t *testing.T) {
	tm := NewTimers()
	fired := false
	tm.After(-5, func() { fired = true })
	tm.Advance(0)
	if !fired {
		t.Error("negative delay should fire on the next Advance")
	}
}
