package clock

import "time"

// Manual is a Scheduler whose time only moves when Advance is called.
// It is meant for tests and is not safe for concurrent use. Callbacks may
// schedule or stop timers.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed time since the scheduler was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) After(d time.Duration, fn func()) Timer {
	return m.add(d, 0, fn)
}

func (m *Manual) Every(d time.Duration, fn func()) Timer {
	return m.add(d, d, fn)
}

func (m *Manual) add(d, period time.Duration, fn func()) *manualTimer {
	m.seq++
	t := &manualTimer{at: m.now + d, period: period, fn: fn, seq: m.seq}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing due callbacks in deadline order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.next(target)
		if next == nil {
			break
		}
		m.now = next.at
		if next.period > 0 {
			next.at += next.period
		} else {
			next.stopped = true
		}
		next.fn()
	}
	m.now = target
	m.compact()
}

// Pending returns the number of live timers.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) next(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.at > limit {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}

type manualTimer struct {
	at      time.Duration
	period  time.Duration
	fn      func()
	seq     int
	stopped bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}
