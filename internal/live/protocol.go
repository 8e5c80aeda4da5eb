package live

import (
	"github.com/Zachkp/cyberfolio/internal/cursor"
	"github.com/Zachkp/cyberfolio/internal/mobilenav"
	"github.com/Zachkp/cyberfolio/internal/section"
)

// Event types sent by the browser.
const (
	EventScroll      = "scroll"
	EventResize      = "resize"
	EventPointer     = "pointer"
	EventHover       = "hover"
	EventThemeToggle = "theme-toggle"
	EventNav         = "nav"
)

// Patch operations sent to the browser.
const (
	OpAttr        = "attr"
	OpClassAdd    = "class-add"
	OpClassRemove = "class-remove"
	OpText        = "text"
	OpActive      = "active"
	OpCursor      = "cursor"
	OpNav         = "nav"
	OpScrollTo    = "scroll-to"
	OpTheme       = "theme"
)

// Patch targets.
const (
	TargetRoot     = "root"
	TargetBody     = "body"
	TargetHeroName = "hero-name"
	TargetRoles    = "roles"
)

// Offset is a section position as measured by the browser.
type Offset struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// Event is a UI event forwarded from the page.
type Event struct {
	Type string `json:"type"`

	// scroll and resize
	ScrollY        float64  `json:"scrollY,omitempty"`
	ViewportHeight float64  `json:"viewportHeight,omitempty"`
	Sections       []Offset `json:"sections,omitempty"`

	// pointer
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// hover: Target is the hover kind, State is "enter" or "leave".
	// nav: Target is the link for "select".
	Target string `json:"target,omitempty"`
	State  string `json:"state,omitempty"`

	// nav
	Action string `json:"action,omitempty"`
	Key    string `json:"key,omitempty"`
	Shift  bool   `json:"shift,omitempty"`
}

// sections puts the reported offsets in document order.
func (e Event) sections() []section.Section {
	offsets := make(map[string]float64, len(e.Sections))
	for _, o := range e.Sections {
		offsets[o.ID] = o.Top
	}
	return section.Arrange(offsets)
}

// Patch is a change the page should apply.
type Patch struct {
	Op     string           `json:"op"`
	Target string           `json:"target,omitempty"`
	Name   string           `json:"name,omitempty"`
	Value  string           `json:"value,omitempty"`
	Phase  string           `json:"phase,omitempty"`
	Cursor *cursor.Frame    `json:"cursor,omitempty"`
	Nav    *mobilenav.State `json:"nav,omitempty"`
}
