// Package live runs the page's interactive behavior for one browser tab.
//
// The browser forwards UI events over a websocket; a Session applies them to
// the section tracker, cursor follower, mobile navigation, theme manager and
// name animator, and emits Patches for the page to apply. Everything a
// Session does happens on one scheduler goroutine.
package live

import (
	"log"
	"time"

	"github.com/Zachkp/cyberfolio/internal/clock"
	"github.com/Zachkp/cyberfolio/internal/cursor"
	"github.com/Zachkp/cyberfolio/internal/mobilenav"
	"github.com/Zachkp/cyberfolio/internal/nameanim"
	"github.com/Zachkp/cyberfolio/internal/section"
	"github.com/Zachkp/cyberfolio/internal/theme"
	"github.com/Zachkp/cyberfolio/internal/typer"
)

// Options configures a Session.
type Options struct {
	Name            nameanim.Config
	Roles           typer.Config
	PointerThrottle time.Duration
	ScrollThrottle  time.Duration

	// Store holds the visitor's theme preference; nil means none.
	Store theme.Store

	// OS is the color scheme the browser reported.
	OS theme.Signal

	// ReducedMotion leaves the roles on the first entry.
	ReducedMotion bool

	Logger *log.Logger
	Now    func() time.Time
}

// Session is the mounted page.
type Session struct {
	sched  clock.Scheduler
	emit   func(Patch)
	logger *log.Logger
	now    func() time.Time

	tracker  *section.Tracker
	follower *cursor.Follower
	nav      *mobilenav.Menu
	theme    *theme.Manager
	name     *nameanim.Animator
	roles    *typer.Typer
	trailing clock.Timer

	reducedMotion bool
	mounted       bool
	unmounted     bool
}

// NewSession wires the components. emit is called on the scheduler's
// goroutine for every patch.
func NewSession(opts Options, sched clock.Scheduler, emit func(Patch)) *Session {
	s := &Session{
		sched:         sched,
		emit:          emit,
		logger:        opts.Logger,
		now:           opts.Now,
		reducedMotion: opts.ReducedMotion,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.tracker = section.NewTracker()
	s.tracker.Throttle = opts.ScrollThrottle

	s.follower = cursor.New()
	s.follower.Throttle = opts.PointerThrottle

	s.nav = mobilenav.New()

	s.theme = theme.NewManager(opts.Store, opts.OS, sched, document{s})
	s.theme.SetLogger(s.logger)
	s.theme.OnChange = func(t theme.Theme) {
		s.send(Patch{Op: OpTheme, Value: string(t)})
	}

	s.name = nameanim.New(opts.Name, sched)
	s.name.OnFrame = func(p nameanim.Phase, text string) {
		s.send(Patch{Op: OpText, Target: TargetHeroName, Value: text, Phase: p.String()})
	}

	s.roles = typer.New(opts.Roles, sched)
	s.roles.OnFrame = func(text string) {
		s.send(Patch{Op: OpText, Target: TargetRoles, Value: text})
	}
	return s
}

// Mount resolves the theme, reports the initial active section and starts
// the name animation and, unless motion is reduced, the role typer.
func (s *Session) Mount() {
	if s.mounted || s.unmounted {
		return
	}
	s.mounted = true
	s.theme.Init()
	s.send(Patch{Op: OpActive, Value: s.tracker.Active()})
	s.name.Start()
	if !s.reducedMotion {
		s.roles.Start()
	}
}

// Unmount cancels every pending timer. Nothing is emitted afterwards.
func (s *Session) Unmount() {
	if s.unmounted {
		return
	}
	s.name.Stop()
	s.roles.Stop()
	if s.trailing != nil {
		s.trailing.Stop()
		s.trailing = nil
	}
	s.theme.Close()
	s.unmounted = true
}

// Handle applies one browser event.
func (s *Session) Handle(ev Event) {
	if s.unmounted {
		return
	}
	switch ev.Type {
	case EventScroll, EventResize:
		now := s.now()
		if s.tracker.Observe(now, ev.ScrollY, ev.ViewportHeight, ev.sections()) {
			s.send(Patch{Op: OpActive, Value: s.tracker.Active()})
		}
		s.armTrailingScroll(now)

	case EventPointer:
		if s.follower.Move(ev.X, ev.Y, s.now()) {
			s.sendCursor()
		}

	case EventHover:
		var changed bool
		switch ev.State {
		case "enter":
			changed = s.follower.Enter(ev.Target)
		case "leave":
			changed = s.follower.Leave()
		default:
			s.logger.Printf("live: unknown hover state %q", ev.State)
		}
		if changed {
			s.sendCursor()
		}

	case EventThemeToggle:
		s.theme.Toggle()

	case EventNav:
		s.handleNav(ev)

	default:
		s.logger.Printf("live: ignoring unknown event %q", ev.Type)
	}
}

func (s *Session) handleNav(ev Event) {
	var target string
	switch ev.Action {
	case "toggle":
		s.nav.Toggle()
	case "close":
		s.nav.Close()
	case "backdrop":
		s.nav.Backdrop()
	case "select":
		t, ok := s.nav.Select(ev.Target)
		if !ok {
			s.logger.Printf("live: unknown nav link %q", ev.Target)
			return
		}
		target = t
	case "key":
		t, consumed := s.nav.Key(ev.Key, ev.Shift)
		if !consumed {
			return
		}
		target = t
	default:
		s.logger.Printf("live: unknown nav action %q", ev.Action)
		return
	}

	state := s.nav.State()
	s.send(Patch{Op: OpNav, Nav: &state})
	if target != "" {
		s.send(Patch{Op: OpScrollTo, Value: target})
	}
}

// armTrailingScroll makes sure an observation dropped by the scroll
// throttle is applied once the window closes.
func (s *Session) armTrailingScroll(now time.Time) {
	wait, ok := s.tracker.Pending(now)
	if !ok || s.trailing != nil {
		return
	}
	s.trailing = s.sched.After(wait, func() {
		s.trailing = nil
		if s.tracker.Flush(s.now()) {
			s.send(Patch{Op: OpActive, Value: s.tracker.Active()})
		}
	})
}

func (s *Session) sendCursor() {
	f := s.follower.Frame()
	s.send(Patch{Op: OpCursor, Cursor: &f})
}

func (s *Session) send(p Patch) {
	if s.unmounted {
		return
	}
	s.emit(p)
}

// document turns theme manager writes into patches.
type document struct{ s *Session }

func (d document) SetAttribute(name, value string) {
	d.s.send(Patch{Op: OpAttr, Target: TargetRoot, Name: name, Value: value})
}

func (d document) AddClass(name string) {
	d.s.send(Patch{Op: OpClassAdd, Target: TargetBody, Name: name})
}

func (d document) RemoveClass(name string) {
	d.s.send(Patch{Op: OpClassRemove, Target: TargetBody, Name: name})
}
