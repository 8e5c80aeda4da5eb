// Package typer cycles the hero tagline through a list of roles, erasing
// and typing one character at a time.
package typer

import (
	"time"

	"github.com/Zachkp/cyberfolio/internal/clock"
)

const (
	DefaultStroke = 50 * time.Millisecond
	DefaultPause  = 2000 * time.Millisecond
)

// Config lists the roles and the pacing.
type Config struct {
	Roles  []string
	Stroke time.Duration // time between typed or erased characters
	Pause  time.Duration // time a fully typed role stays on screen
}

type mode int

const (
	holding mode = iota
	erasing
	typing
)

// Typer is the role typing state machine. All methods, and the OnFrame
// callback, run on the scheduler's goroutine.
type Typer struct {
	cfg   Config
	sched clock.Scheduler
	roles [][]rune

	// OnFrame is called with the displayed text each time it changes.
	OnFrame func(string)

	mode    mode
	index   int
	text    []rune
	keep    int
	pending clock.Timer
	started bool
	stopped bool
}

// New creates a Typer. Zero Stroke or Pause fall back to the defaults.
func New(cfg Config, sched clock.Scheduler) *Typer {
	if cfg.Stroke <= 0 {
		cfg.Stroke = DefaultStroke
	}
	if cfg.Pause <= 0 {
		cfg.Pause = DefaultPause
	}
	t := &Typer{cfg: cfg, sched: sched}
	for _, r := range cfg.Roles {
		t.roles = append(t.roles, []rune(r))
	}
	if len(t.roles) > 0 {
		t.text = t.roles[0]
	}
	return t
}

// Text returns the displayed text.
func (t *Typer) Text() string { return string(t.text) }

// Start shows the first role and begins the cycle after its pause. It does
// nothing without roles, when already started, or after Stop.
func (t *Typer) Start() {
	if t.started || t.stopped || len(t.roles) == 0 {
		return
	}
	t.started = true
	t.publish()
	t.pending = t.sched.After(t.cfg.Pause, t.tick)
}

// Stop cancels the pending timer. No frame is published after Stop.
func (t *Typer) Stop() {
	t.stopped = true
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// tick advances one keystroke. Erasing stops at the prefix shared with the
// next role, so only the differing tail is retyped.
func (t *Typer) tick() {
	if t.stopped {
		return
	}
	t.pending = nil

	switch t.mode {
	case holding:
		t.index = (t.index + 1) % len(t.roles)
		t.keep = commonPrefix(t.text, t.roles[t.index])
		t.mode = erasing
		fallthrough
	case erasing:
		if len(t.text) > t.keep {
			t.text = t.text[:len(t.text)-1]
			t.publish()
		}
		if len(t.text) <= t.keep {
			t.mode = typing
		}
	case typing:
		goal := t.roles[t.index]
		if len(t.text) < len(goal) {
			t.text = goal[:len(t.text)+1]
			t.publish()
		}
		if len(t.text) == len(goal) {
			t.mode = holding
			t.pending = t.sched.After(t.cfg.Pause, t.tick)
			return
		}
	}
	t.pending = t.sched.After(t.cfg.Stroke, t.tick)
}

func (t *Typer) publish() {
	if t.OnFrame != nil {
		t.OnFrame(string(t.text))
	}
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
