package tick

import (
	"testing"
	"time"
)

func TestFromDuration(t *testing.T) {
	got, err := FromDuration(1500 * time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1500 {
		t.Fatalf("ticks mismatch: want 1500, got %d", got)
	}
}

func TestFromDurationSubMillisecond(t *testing.T) {
	got, err := FromDuration(500 * time.Microsecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("sub-millisecond duration should truncate to 0, got %d", got)
	}
}

func TestFromDurationNegative(t *testing.T) {
	if _, err := FromDuration(-1 * time.Second); err == nil {
		t.Fatalf("expected error for negative duration")
	}
}

func TestVirtualSourceAdvance(t *testing.T) {
	var src VirtualSource
	if src.Now() != 0 {
		t.Fatalf("fresh virtual source should start at 0, got %d", src.Now())
	}
	src.Advance(10)
	src.Advance(5)
	if src.Now() != 15 {
		t.Fatalf("tick mismatch after advances: want 15, got %d", src.Now())
	}
	src.Set(100)
	if src.Now() != 100 {
		t.Fatalf("tick mismatch after set: want 100, got %d", src.Now())
	}
}

func TestTimerExpiry(t *testing.T) {
	var src VirtualSource
	timer := NewTimer(&src, 10)
	if timer.Expired() {
		t.Fatalf("timer expired before any time passed")
	}
	src.Advance(9)
	if timer.Expired() {
		t.Fatalf("timer expired one tick early")
	}
	src.Advance(1)
	if !timer.Expired() {
		t.Fatalf("timer not expired at its deadline")
	}
	src.Advance(100)
	if !timer.Expired() {
		t.Fatalf("expired timer un-expired")
	}
}

func TestTimerZeroDuration(t *testing.T) {
	var src VirtualSource
	src.Advance(42)
	timer := NewTimer(&src, 0)
	if !timer.Expired() {
		t.Fatalf("zero-duration timer should be expired immediately")
	}
}

func TestTimerDeadlineFromConstruction(t *testing.T) {
	var src VirtualSource
	src.Advance(50)
	timer := NewTimer(&src, 10)
	src.Advance(10)
	if !timer.Expired() {
		t.Fatalf("deadline should be measured from construction, not from 0")
	}
}

func TestZeroValueTimerExpired(t *testing.T) {
	var timer Timer
	if !timer.Expired() {
		t.Fatalf("zero-value timer should report expired")
	}
	var cycleTimer CycleTimer
	if !cycleTimer.Expired() {
		t.Fatalf("zero-value cycle timer should report expired")
	}
}

func TestCycleTimerExpiry(t *testing.T) {
	var src VirtualCycleSource
	timer := NewCycleTimer(&src, 1000)
	if timer.Expired() {
		t.Fatalf("cycle timer expired before any cycles passed")
	}
	src.Advance(999)
	if timer.Expired() {
		t.Fatalf("cycle timer expired early")
	}
	src.Advance(1)
	if !timer.Expired() {
		t.Fatalf("cycle timer not expired at its deadline")
	}
}

func TestSystemSourceMonotonic(t *testing.T) {
	var src SystemSource
	a := src.Now()
	b := src.Now()
	if b < a {
		t.Fatalf("system ticks went backwards: %d then %d", a, b)
	}
}
