// Package nameanim animates the hero name from its foreign-script rendering
// to the final name, one character at a time.
package nameanim

import (
	"strings"
	"time"

	"github.com/Zachkp/cyberfolio/internal/clock"
)

// Phase is a stage of the name animation. Phases only move forward.
type Phase int

const (
	Foreign Phase = iota
	Transitioning
	Final
)

func (p Phase) String() string {
	switch p {
	case Foreign:
		return "foreign"
	case Transitioning:
		return "transitioning"
	case Final:
		return "final"
	default:
		return "unknown"
	}
}

const (
	DefaultHold = 2000 * time.Millisecond
	DefaultStep = 100 * time.Millisecond
)

// Config describes the two renderings of the name and the pacing.
type Config struct {
	ForeignParts []string
	FinalName    string
	Hold         time.Duration // time spent showing the foreign rendering
	Step         time.Duration // time between revealed characters
}

// ForeignText is the foreign rendering shown during the first phase.
func (c Config) ForeignText() string {
	return strings.Join(c.ForeignParts, " ")
}

// Animator is the name animation state machine. All methods, and the
// OnFrame callback, run on the scheduler's goroutine.
type Animator struct {
	cfg   Config
	sched clock.Scheduler

	// OnFrame is called with the phase and the text to display each time
	// the displayed text changes.
	OnFrame func(Phase, string)

	phase   Phase
	text    string
	buf     []rune
	target  []rune
	cursor  int
	pending clock.Timer
	started bool
	stopped bool
}

// New creates an Animator. Zero Hold or Step fall back to the defaults.
func New(cfg Config, sched clock.Scheduler) *Animator {
	if cfg.Hold <= 0 {
		cfg.Hold = DefaultHold
	}
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	return &Animator{
		cfg:    cfg,
		sched:  sched,
		text:   cfg.ForeignText(),
		target: []rune(cfg.FinalName),
	}
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase { return a.phase }

// Text returns the currently displayed text.
func (a *Animator) Text() string { return a.text }

// Start publishes the foreign rendering and arms the hold timer. Calls
// after the first, or after Stop, do nothing.
func (a *Animator) Start() {
	if a.started || a.stopped {
		return
	}
	a.started = true
	a.publish()
	a.pending = a.sched.After(a.cfg.Hold, a.beginTransition)
}

// Stop cancels the pending timer. No frame is published after Stop.
func (a *Animator) Stop() {
	a.stopped = true
	a.cancel()
}

func (a *Animator) cancel() {
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
}

func (a *Animator) beginTransition() {
	if a.stopped {
		return
	}
	a.pending = nil
	a.phase = Transitioning
	a.buf = []rune(a.cfg.ForeignText())
	a.cursor = 0
	if len(a.target) == 0 {
		a.finish()
		return
	}
	a.pending = a.sched.Every(a.cfg.Step, a.step)
}

// step reveals one character. Foreign characters past the end of the final
// name stay in place until the final phase; a longer final name grows the
// buffer.
func (a *Animator) step() {
	if a.stopped || a.phase != Transitioning {
		return
	}
	r := a.target[a.cursor]
	if a.cursor < len(a.buf) {
		a.buf[a.cursor] = r
	} else {
		a.buf = append(a.buf, r)
	}
	a.cursor++

	if a.cursor >= len(a.target) {
		a.cancel()
		a.finish()
		return
	}
	a.text = string(a.buf)
	a.publish()
}

func (a *Animator) finish() {
	a.phase = Final
	a.text = a.cfg.FinalName
	a.buf = nil
	a.publish()
}

func (a *Animator) publish() {
	if a.OnFrame != nil {
		a.OnFrame(a.phase, a.text)
	}
}
