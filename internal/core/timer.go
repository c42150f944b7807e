package core

import (
	"context"
	"time"
)

// DefaultInterval is used when a task is registered with a non-positive interval.
const DefaultInterval = time.Second

// Clock supplies the current time to a Schedule.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Task is a handle to a registered repeating task.
type Task interface {
	// Cancel stops future runs. Calling it more than once is a no-op.
	Cancel()
}

// Scheduler registers repeating tasks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// Schedule runs repeating tasks at a steady interval. It never starts
// goroutines: due tasks run on whichever goroutine calls Poll.
type Schedule struct {
	clock Clock
	tasks []*scheduledTask
}

type scheduledTask struct {
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

func (t *scheduledTask) Cancel() { t.cancelled = true }

// NewSchedule constructs a Schedule reading time from clock. A nil clock
// means SystemClock.
func NewSchedule(clock Clock) *Schedule {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Schedule{clock: clock}
}

// Every registers fn to run once per interval, first one interval from now.
func (s *Schedule) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &scheduledTask{interval: interval, next: s.clock.Now().Add(interval), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending reports the number of live tasks.
func (s *Schedule) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Poll runs every task whose deadline has passed and returns how many ran.
// A task that fell more than one interval behind runs once and skips the
// ticks it missed. Tasks registered while polling first run on a later Poll.
func (s *Schedule) Poll() int {
	now := s.clock.Now()
	due := make([]*scheduledTask, len(s.tasks))
	copy(due, s.tasks)

	ran := 0
	for _, t := range due {
		if t.cancelled || now.Before(t.next) {
			continue
		}
		t.fn()
		ran++
		t.next = t.next.Add(t.interval)
		if !now.Before(t.next) {
			t.next = now.Add(t.interval)
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	return ran
}

// Run polls the schedule every resolution until ctx is done and returns
// ctx.Err().
func (s *Schedule) Run(ctx context.Context, resolution time.Duration) error {
	if resolution <= 0 {
		resolution = 10 * time.Millisecond
	}
	ticker := time.NewTicker(resolution)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Poll()
		}
	}
}
