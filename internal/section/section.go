// Package section decides which page section is currently in view.
package section

import "time"

// Section IDs in document order.
const (
	Hero     = "hero"
	Projects = "projects"
	About    = "about"
	Contact  = "contact"
)

// Order is the fixed document order of the page sections.
var Order = []string{Hero, Projects, About, Contact}

// Section is a rendered page section and its top offset in page pixels.
// Present is false when the element was not found on the page.
type Section struct {
	ID      string  `json:"id"`
	Top     float64 `json:"top"`
	Present bool    `json:"present"`
}

// Track returns the section that should be highlighted for the given scroll
// position. The lookahead is a third of the viewport: scanning from the last
// section back, the first one whose top lies at or above the threshold wins,
// which favors the section about to take over the viewport. ok is false when
// no present section qualifies.
func Track(scrollY, viewportHeight float64, sections []Section) (id string, ok bool) {
	threshold := scrollY + viewportHeight/3
	for i := len(sections) - 1; i >= 0; i-- {
		s := sections[i]
		if !s.Present {
			continue
		}
		if s.Top <= threshold {
			return s.ID, true
		}
	}
	return "", false
}

// Arrange puts reported offsets into document order. Sections that were not
// reported are returned with Present false; unknown IDs are dropped.
func Arrange(offsets map[string]float64) []Section {
	out := make([]Section, len(Order))
	for i, id := range Order {
		top, ok := offsets[id]
		out[i] = Section{ID: id, Top: top, Present: ok}
	}
	return out
}

// Tracker holds the active section across scroll events.
type Tracker struct {
	// Throttle drops observations that arrive sooner than this after the
	// last accepted one. The latest dropped observation is kept for Flush.
	// Zero accepts everything.
	Throttle time.Duration

	active   string
	last     time.Time
	observed bool
	pending  *observation
}

type observation struct {
	scrollY, viewportHeight float64
	sections                []Section
}

// NewTracker starts with the hero section active.
func NewTracker() *Tracker {
	return &Tracker{active: Hero}
}

// Active returns the current active section ID.
func (t *Tracker) Active() string {
	return t.active
}

// Observe applies a scroll observation taken at the given time. It reports
// whether the active section changed. When nothing qualifies the previous
// active section is kept.
func (t *Tracker) Observe(at time.Time, scrollY, viewportHeight float64, sections []Section) bool {
	obs := &observation{scrollY: scrollY, viewportHeight: viewportHeight, sections: sections}
	if t.Throttle > 0 && t.observed && at.Sub(t.last) < t.Throttle {
		t.pending = obs
		return false
	}
	return t.accept(at, obs)
}

// Pending reports whether a dropped observation is waiting, and how long
// after at the throttle window closes.
func (t *Tracker) Pending(at time.Time) (time.Duration, bool) {
	if t.pending == nil {
		return 0, false
	}
	wait := t.Throttle - at.Sub(t.last)
	if wait < 0 {
		wait = 0
	}
	return wait, true
}

// Flush applies the latest dropped observation as if it arrived at at, so
// the final position of a scroll burst always counts. It reports whether
// the active section changed.
func (t *Tracker) Flush(at time.Time) bool {
	if t.pending == nil {
		return false
	}
	return t.accept(at, t.pending)
}

func (t *Tracker) accept(at time.Time, obs *observation) bool {
	t.pending = nil
	t.observed = true
	t.last = at

	id, ok := Track(obs.scrollY, obs.viewportHeight, obs.sections)
	if !ok || id == t.active {
		return false
	}
	t.active = id
	return true
}
