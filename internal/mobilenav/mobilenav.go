// Package mobilenav is the state of the slide-out navigation drawer.
package mobilenav

import "github.com/Zachkp/cyberfolio/internal/section"

// Link is an entry in the drawer.
type Link struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Links are the drawer entries, one per page section.
var Links = []Link{
	{Label: "Home", Target: section.Hero},
	{Label: "Projects", Target: section.Projects},
	{Label: "About", Target: section.About},
	{Label: "Contact", Target: section.Contact},
}

// State is a snapshot of the drawer.
type State struct {
	Open bool `json:"open"`
	// Focus is the index of the focused link, -1 when the toggle button has
	// focus.
	Focus int `json:"focus"`
}

// Menu is the drawer. While open, keyboard focus is trapped inside the
// link list and Escape closes it.
type Menu struct {
	open  bool
	focus int
}

// New returns a closed menu.
func New() *Menu {
	return &Menu{focus: -1}
}

// State returns the current drawer state.
func (m *Menu) State() State {
	return State{Open: m.open, Focus: m.focus}
}

// Open reports whether the drawer is showing.
func (m *Menu) Open() bool { return m.open }

// Toggle opens or closes the drawer. Opening focuses the first link.
func (m *Menu) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.open = true
	m.focus = 0
}

// Close hides the drawer and returns focus to the toggle button.
func (m *Menu) Close() {
	m.open = false
	m.focus = -1
}

// Backdrop handles a click on the overlay.
func (m *Menu) Backdrop() {
	m.Close()
}

// Select follows a link and closes the drawer. It returns the section to
// scroll to, or false for an unknown link.
func (m *Menu) Select(target string) (string, bool) {
	for _, l := range Links {
		if l.Target == target {
			m.Close()
			return l.Target, true
		}
	}
	return "", false
}

// Key handles a key press while the drawer has focus and reports whether
// the key was consumed. Escape closes; Tab and Shift+Tab cycle through the
// links; Enter follows the focused link.
func (m *Menu) Key(key string, shift bool) (target string, consumed bool) {
	if !m.open {
		return "", false
	}
	switch key {
	case "Escape":
		m.Close()
		return "", true
	case "Tab":
		n := len(Links)
		if shift {
			m.focus = (m.focus - 1 + n) % n
		} else {
			m.focus = (m.focus + 1) % n
		}
		return "", true
	case "Enter":
		if m.focus < 0 || m.focus >= len(Links) {
			return "", false
		}
		t, _ := m.Select(Links[m.focus].Target)
		return t, true
	}
	return "", false
}
