package theme

import (
	"log"
	"time"

	"github.com/Zachkp/cyberfolio/internal/clock"
)

const (
	// TransitionClass is put on the body while colors animate.
	TransitionClass = "theme-transition"
	// TransitionDuration is how long TransitionClass stays on the body.
	TransitionDuration = 500 * time.Millisecond
)

// Document is the part of the page the manager writes to.
type Document interface {
	// SetAttribute sets an attribute on the root element.
	SetAttribute(name, value string)
	// AddClass and RemoveClass edit the body's class list.
	AddClass(name string)
	RemoveClass(name string)
}

// Load reads the stored preference and resolves it against the OS signal.
// Store errors are logged and treated as no preference.
func Load(store Store, os Signal, logger *log.Logger) Theme {
	t, _ := LoadSource(store, os, logger)
	return t
}

// LoadSource is Load that also reports which input decided.
func LoadSource(store Store, os Signal, logger *log.Logger) (Theme, Source) {
	if logger == nil {
		logger = log.Default()
	}
	if store == nil {
		return ResolveSource("", false, os)
	}
	v, ok, err := store.Get(Key)
	if err != nil {
		logger.Printf("Unable to read theme preference: %v", err)
		return ResolveSource("", false, os)
	}
	return ResolveSource(v, ok, os)
}

// Manager owns the theme for one page. It must be used from the
// scheduler's goroutine.
type Manager struct {
	store  Store
	os     Signal
	sched  clock.Scheduler
	doc    Document
	logger *log.Logger

	// OnChange receives the theme after Init and after every Toggle.
	OnChange func(Theme)

	theme   Theme
	ready   bool
	pending clock.Timer
}

// NewManager creates a manager. It is not ready until Init runs.
func NewManager(store Store, os Signal, sched clock.Scheduler, doc Document) *Manager {
	return &Manager{
		store:  store,
		os:     os,
		sched:  sched,
		doc:    doc,
		logger: log.Default(),
		theme:  Default,
	}
}

// SetLogger replaces the logger used for store failures.
func (m *Manager) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// Init resolves the starting theme and applies it to the document. Until it
// runs, Ready is false and the toggle control should not be shown.
func (m *Manager) Init() Theme {
	m.theme = Load(m.store, m.os, m.logger)
	m.doc.SetAttribute(Attribute, string(m.theme))
	m.ready = true
	m.notify()
	return m.theme
}

// Ready reports whether Init has run.
func (m *Manager) Ready() bool { return m.ready }

// Theme returns the current theme.
func (m *Manager) Theme() Theme { return m.theme }

// Toggle flips the theme, persists it, marks the body for the color
// transition and notifies OnChange. Before Init it does nothing.
func (m *Manager) Toggle() Theme {
	if !m.ready {
		return m.theme
	}
	m.theme = m.theme.Toggle()
	m.doc.SetAttribute(Attribute, string(m.theme))

	if m.store != nil {
		if err := m.store.Set(Key, string(m.theme)); err != nil {
			m.logger.Printf("Unable to save theme preference: %v", err)
		}
	}

	if m.pending != nil {
		m.pending.Stop()
	}
	m.doc.AddClass(TransitionClass)
	m.pending = m.sched.After(TransitionDuration, func() {
		m.pending = nil
		m.doc.RemoveClass(TransitionClass)
	})

	m.notify()
	return m.theme
}

// Close cancels a pending transition-class removal.
func (m *Manager) Close() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}

func (m *Manager) notify() {
	if m.OnChange != nil {
		m.OnChange(m.theme)
	}
}
