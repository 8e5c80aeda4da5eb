// Package clock provides cancellable scheduled callbacks.
//
// Every component that animates over time schedules through a Scheduler
// instead of calling time.AfterFunc directly, so that tearing down the owner
// can stop every pending callback and tests can drive time by hand.
package clock

import (
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. After Stop returns on the scheduler's
	// goroutine the callback will not run again. Stop is idempotent.
	Stop()
}

// Scheduler schedules callbacks.
type Scheduler interface {
	// After runs fn once after d.
	After(d time.Duration, fn func()) Timer
	// Every runs fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}

// Loop runs posted tasks and timer callbacks one at a time on the goroutine
// that calls Run. It plays the role of a UI thread: nothing it runs needs
// locking against anything else it runs.
type Loop struct {
	tasks chan func()
	done  chan struct{}

	mu     sync.Mutex
	timers map[*loopTimer]struct{}
	closed bool
	once   sync.Once
}

// NewLoop creates a Loop whose task queue holds up to buffer pending tasks.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		tasks:  make(chan func(), buffer),
		done:   make(chan struct{}),
		timers: make(map[*loopTimer]struct{}),
	}
}

// Run executes tasks until Close is called. It must be called from exactly
// one goroutine.
func (l *Loop) Run() {
	for {
		select {
		case <-l.done:
			return
		case fn := <-l.tasks:
			// A task queued just before Close must not run after it.
			select {
			case <-l.done:
				return
			default:
			}
			fn()
		}
	}
}

// Post queues fn to run on the loop. It reports false if the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed once the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Close stops every outstanding timer and ends Run. Safe to call more than
// once and from any goroutine.
func (l *Loop) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		timers := l.timers
		l.timers = nil
		l.mu.Unlock()

		for t := range timers {
			t.cancel()
		}
		close(l.done)
	})
}

// Pending returns the number of timers that have not fired or been stopped.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

func (l *Loop) After(d time.Duration, fn func()) Timer {
	return l.schedule(d, 0, fn)
}

func (l *Loop) Every(d time.Duration, fn func()) Timer {
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(d, period time.Duration, fn func()) Timer {
	lt := &loopTimer{loop: l, period: period, fn: fn}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		lt.stopped = true
		return lt
	}
	l.timers[lt] = struct{}{}
	l.mu.Unlock()

	lt.mu.Lock()
	lt.t = time.AfterFunc(d, lt.fire)
	lt.mu.Unlock()
	return lt
}

func (l *Loop) forget(lt *loopTimer) {
	l.mu.Lock()
	if l.timers != nil {
		delete(l.timers, lt)
	}
	l.mu.Unlock()
}

type loopTimer struct {
	loop   *Loop
	period time.Duration
	fn     func()

	mu      sync.Mutex
	t       *time.Timer
	stopped bool
}

// fire runs on the runtime's timer goroutine and hands off to the loop.
func (lt *loopTimer) fire() {
	lt.loop.Post(lt.run)
}

func (lt *loopTimer) run() {
	lt.mu.Lock()
	if lt.stopped {
		lt.mu.Unlock()
		return
	}
	oneShot := lt.period == 0
	if oneShot {
		lt.stopped = true
	}
	lt.mu.Unlock()

	if oneShot {
		lt.loop.forget(lt)
	}
	lt.fn()

	if oneShot {
		return
	}
	lt.mu.Lock()
	if !lt.stopped {
		lt.t.Reset(lt.period)
	}
	lt.mu.Unlock()
}

func (lt *loopTimer) cancel() {
	lt.mu.Lock()
	lt.stopped = true
	if lt.t != nil {
		lt.t.Stop()
	}
	lt.mu.Unlock()
}

func (lt *loopTimer) Stop() {
	lt.cancel()
	lt.loop.forget(lt)
}
