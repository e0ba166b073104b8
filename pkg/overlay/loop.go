package overlay

import (
	"sync"
	"time"
)

// uiLoop is the single UI-affinity execution context. Every mutation of the
// overlay instance and its visual tree happens on the one goroutine that
// drains this queue, so phases and callbacks never run concurrently with
// each other. Submitting never blocks the caller; the queue is unbounded.
type uiLoop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	quit   chan struct{}
	closed bool
	done   sync.WaitGroup
}

func newUILoop() *uiLoop {
	l := &uiLoop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
	l.done.Add(1)
	go l.run()
	return l
}

// Submit enqueues fn for execution on the loop goroutine in FIFO order.
// Tasks submitted after Close are dropped.
func (l *uiLoop) Submit(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// SubmitAfter schedules fn onto the loop once the delay elapses. The timer
// fires on its own goroutine and only resubmits; fn still runs on the loop.
func (l *uiLoop) SubmitAfter(delay time.Duration, fn func()) *time.Timer {
	if delay <= 0 {
		l.Submit(fn)
		return nil
	}
	return time.AfterFunc(delay, func() {
		l.Submit(fn)
	})
}

// Close stops the loop after the tasks already queued have run.
func (l *uiLoop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	close(l.quit)
	l.done.Wait()
}

// sync blocks until every task queued before the call has executed.
func (l *uiLoop) sync() {
	ch := make(chan struct{})
	l.Submit(func() { close(ch) })
	select {
	case <-ch:
	case <-l.quit:
	}
}

func (l *uiLoop) run() {
	defer l.done.Done()
	for {
		for {
			l.mu.Lock()
			if len(l.queue) == 0 {
				l.mu.Unlock()
				break
			}
			fn := l.queue[0]
			l.queue = l.queue[1:]
			l.mu.Unlock()

			fn()
		}

		select {
		case <-l.wake:
		case <-l.quit:
			// Drain what is left so completion callbacks still fire.
			l.mu.Lock()
			rest := l.queue
			l.queue = nil
			l.mu.Unlock()
			for _, fn := range rest {
				fn()
			}
			return
		}
	}
}
