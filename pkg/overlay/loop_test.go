package overlay

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	l := newUILoop()
	defer l.Close()

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		l.Submit(func() { got = append(got, i) })
	}
	l.sync()

	if len(got) != 10 {
		t.Fatalf("ran %d tasks, want 10", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task order %v, want ascending", got)
		}
	}
}

func TestLoopTasksNeverRunConcurrently(t *testing.T) {
	l := newUILoop()
	defer l.Close()

	var inFlight, overlaps int32
	for i := 0; i < 50; i++ {
		l.Submit(func() {
			if atomic.AddInt32(&inFlight, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
		})
	}
	l.sync()

	if overlaps != 0 {
		t.Errorf("observed %d overlapping executions", overlaps)
	}
}

func TestLoopSubmitAfter(t *testing.T) {
	l := newUILoop()
	defer l.Close()

	done := make(chan time.Time, 1)
	start := time.Now()
	l.SubmitAfter(30*time.Millisecond, func() { done <- time.Now() })

	select {
	case fired := <-done:
		if elapsed := fired.Sub(start); elapsed < 30*time.Millisecond {
			t.Errorf("fired after %v, want >= 30ms", elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("delayed task never ran")
	}
}

func TestLoopSubmitAfterZeroRunsImmediately(t *testing.T) {
	l := newUILoop()
	defer l.Close()

	ran := false
	l.SubmitAfter(0, func() { ran = true })
	l.sync()

	if !ran {
		t.Error("zero-delay task did not run")
	}
}

func TestLoopCloseDrainsQueuedTasks(t *testing.T) {
	l := newUILoop()

	var ran int32
	for i := 0; i < 20; i++ {
		l.Submit(func() { atomic.AddInt32(&ran, 1) })
	}
	l.Close()

	if got := atomic.LoadInt32(&ran); got != 20 {
		t.Errorf("ran %d tasks before close completed, want 20", got)
	}
}

func TestLoopSubmitAfterCloseIsDropped(t *testing.T) {
	l := newUILoop()
	l.Close()

	// Must not panic or block.
	l.Submit(func() { t.Error("task ran after close") })
	time.Sleep(10 * time.Millisecond)
}
