// Package theme resolves, persists and toggles the light/dark preference.
package theme

import (
	"strings"
	"sync"
)

// Theme is the display mode.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	// Default applies when neither a stored preference nor an OS signal
	// is available.
	Default = Dark
)

const (
	// Key is the store key holding the preference.
	Key = "theme"
	// Attribute is set on the root element to the resolved theme.
	Attribute = "data-theme"
)

// Parse accepts exactly "dark" or "light".
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Signal is the operating system's color scheme preference as reported by
// the browser.
type Signal int

const (
	SignalUnknown Signal = iota
	SignalDark
	SignalLight
)

// SignalFromBool maps a "prefers dark" media query result to a Signal.
func SignalFromBool(prefersDark bool) Signal {
	if prefersDark {
		return SignalDark
	}
	return SignalLight
}

// SignalFromHint parses a Sec-CH-Prefers-Color-Scheme header value, which is
// a structured-field string such as `"dark"`.
func SignalFromHint(v string) Signal {
	v = strings.Trim(strings.TrimSpace(v), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return SignalDark
	case "light":
		return SignalLight
	}
	return SignalUnknown
}

// Source says where a resolved theme came from.
type Source string

const (
	SourceStored  Source = "stored"
	SourceOS      Source = "os"
	SourceDefault Source = "default"
)

// Resolve picks the theme: a valid stored preference first, then the OS
// signal, then Default.
func Resolve(persisted string, hasPersisted bool, os Signal) Theme {
	t, _ := ResolveSource(persisted, hasPersisted, os)
	return t
}

// ResolveSource is Resolve that also reports which input decided.
func ResolveSource(persisted string, hasPersisted bool, os Signal) (Theme, Source) {
	if hasPersisted {
		if t, ok := Parse(persisted); ok {
			return t, SourceStored
		}
	}
	switch os {
	case SignalDark:
		return Dark, SourceOS
	case SignalLight:
		return Light, SourceOS
	}
	return Default, SourceDefault
}

// Store is a string key-value store for preferences. Get reports ok false
// when the key is absent.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
