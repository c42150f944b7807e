package core

import (
	"context"
	"testing"
	"time"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestScheduleRunsOnInterval(t *testing.T) {
	clock := newManualClock()
	s := NewSchedule(clock)
	runs := 0
	s.Every(time.Second, func() { runs++ })

	if n := s.Poll(); n != 0 || runs != 0 {
		t.Fatalf("task must not run before its first interval, ran %d", runs)
	}
	clock.Advance(999 * time.Millisecond)
	s.Poll()
	if runs != 0 {
		t.Fatalf("task ran early, runs=%d", runs)
	}
	clock.Advance(time.Millisecond)
	if n := s.Poll(); n != 1 || runs != 1 {
		t.Fatalf("expected one run at the deadline, got poll=%d runs=%d", n, runs)
	}
	clock.Advance(time.Second)
	s.Poll()
	if runs != 2 {
		t.Fatalf("expected second run, got %d", runs)
	}
}

func TestScheduleSkipsMissedTicks(t *testing.T) {
	clock := newManualClock()
	s := NewSchedule(clock)
	runs := 0
	s.Every(time.Second, func() { runs++ })

	clock.Advance(5500 * time.Millisecond)
	s.Poll()
	if runs != 1 {
		t.Fatalf("a late schedule should run once, ran %d", runs)
	}
	s.Poll()
	if runs != 1 {
		t.Fatalf("missed ticks must be skipped, ran %d", runs)
	}
	clock.Advance(time.Second)
	s.Poll()
	if runs != 2 {
		t.Fatalf("expected next run one interval after catching up, ran %d", runs)
	}
}

func TestScheduleCancel(t *testing.T) {
	clock := newManualClock()
	s := NewSchedule(clock)
	runs := 0
	task := s.Every(time.Second, func() { runs++ })
	task.Cancel()
	task.Cancel()

	clock.Advance(3 * time.Second)
	s.Poll()
	if runs != 0 {
		t.Fatalf("cancelled task ran %d times", runs)
	}
	if s.Pending() != 0 {
		t.Fatalf("cancelled task should be dropped, pending=%d", s.Pending())
	}
}

func TestScheduleTaskCancelledByEarlierTask(t *testing.T) {
	clock := newManualClock()
	s := NewSchedule(clock)
	var second Task
	secondRuns := 0
	s.Every(time.Second, func() { second.Cancel() })
	second = s.Every(time.Second, func() { secondRuns++ })

	clock.Advance(time.Second)
	s.Poll()
	if secondRuns != 0 {
		t.Fatalf("task cancelled earlier in the same poll must not run, ran %d", secondRuns)
	}
}

func TestScheduleRegisteredDuringPollWaits(t *testing.T) {
	clock := newManualClock()
	s := NewSchedule(clock)
	innerRuns := 0
	var once bool
	s.Every(time.Second, func() {
		if once {
			return
		}
		once = true
		s.Every(time.Second, func() { innerRuns++ })
	})

	clock.Advance(time.Second)
	s.Poll()
	if innerRuns != 0 {
		t.Fatalf("task registered during poll ran immediately")
	}
	if s.Pending() != 2 {
		t.Fatalf("expected two live tasks, got %d", s.Pending())
	}
	clock.Advance(time.Second)
	s.Poll()
	if innerRuns != 1 {
		t.Fatalf("expected inner task to run once, ran %d", innerRuns)
	}
}

func TestScheduleDefaultInterval(t *testing.T) {
	clock := newManualClock()
	s := NewSchedule(clock)
	runs := 0
	s.Every(0, func() { runs++ })
	clock.Advance(DefaultInterval - time.Nanosecond)
	s.Poll()
	if runs != 0 {
		t.Fatal("non-positive interval should fall back to DefaultInterval")
	}
	clock.Advance(time.Nanosecond)
	s.Poll()
	if runs != 1 {
		t.Fatalf("expected a run at DefaultInterval, got %d", runs)
	}
}

func TestScheduleRunStopsOnCancel(t *testing.T) {
	s := NewSchedule(nil)
	ctx, cancel := context.WithCancel(context.Background())
	s.Every(time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
