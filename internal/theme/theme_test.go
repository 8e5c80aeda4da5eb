package theme

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/Zachkp/cyberfolio/internal/clock"
)

type fakeDoc struct {
	attrs   map[string]string
	classes map[string]bool
	log     []string
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{attrs: map[string]string{}, classes: map[string]bool{}}
}

func (d *fakeDoc) SetAttribute(name, value string) {
	d.attrs[name] = value
	d.log = append(d.log, "attr "+name+"="+value)
}

func (d *fakeDoc) AddClass(name string) {
	d.classes[name] = true
	d.log = append(d.log, "+"+name)
}

func (d *fakeDoc) RemoveClass(name string) {
	delete(d.classes, name)
	d.log = append(d.log, "-"+name)
}

type brokenStore struct{}

var errStorage = errors.New("storage disabled")

func (brokenStore) Get(string) (string, bool, error) { return "", false, errStorage }
func (brokenStore) Set(string, string) error         { return errStorage }

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		persisted string
		has       bool
		os        Signal
		want      Theme
		source    Source
	}{
		{"no preference, os dark", "", false, SignalDark, Dark, SourceOS},
		{"no preference, os light", "", false, SignalLight, Light, SourceOS},
		{"stored light beats os dark", "light", true, SignalDark, Light, SourceStored},
		{"stored dark beats os light", "dark", true, SignalLight, Dark, SourceStored},
		{"nothing known", "", false, SignalUnknown, Dark, SourceDefault},
		{"invalid stored value ignored", "sepia", true, SignalLight, Light, SourceOS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.persisted, tt.has, tt.os); got != tt.want {
				t.Errorf("Resolve(%q, %v, %v) = %q, want %q", tt.persisted, tt.has, tt.os, got, tt.want)
			}
			if _, src := ResolveSource(tt.persisted, tt.has, tt.os); src != tt.source {
				t.Errorf("ResolveSource(%q, %v, %v) source = %q, want %q", tt.persisted, tt.has, tt.os, src, tt.source)
			}
		})
	}
}

func TestSignalFromHint(t *testing.T) {
	tests := map[string]Signal{
		`"dark"`:  SignalDark,
		`light`:   SignalLight,
		` "Dark"`: SignalDark,
		``:        SignalUnknown,
		`"no"`:    SignalUnknown,
	}
	for in, want := range tests {
		if got := SignalFromHint(in); got != want {
			t.Errorf("SignalFromHint(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestManagerInitFromStore(t *testing.T) {
	store := NewMemoryStore()
	store.Set(Key, "light")
	doc := newFakeDoc()
	m := NewManager(store, SignalDark, clock.NewManual(), doc)

	var seen []Theme
	m.OnChange = func(th Theme) { seen = append(seen, th) }

	if m.Ready() {
		t.Fatal("manager ready before Init")
	}
	if got := m.Init(); got != Light {
		t.Fatalf("Init = %q, want light", got)
	}
	if !m.Ready() {
		t.Error("manager not ready after Init")
	}
	if doc.attrs[Attribute] != "light" {
		t.Errorf("data-theme = %q, want light", doc.attrs[Attribute])
	}
	if len(seen) != 1 || seen[0] != Light {
		t.Errorf("OnChange calls = %v", seen)
	}
}

func TestManagerToggle(t *testing.T) {
	store := NewMemoryStore()
	doc := newFakeDoc()
	sched := clock.NewManual()
	m := NewManager(store, SignalDark, sched, doc)
	m.Init()

	var seen []Theme
	m.OnChange = func(th Theme) { seen = append(seen, th) }

	if got := m.Toggle(); got != Light {
		t.Fatalf("Toggle from dark = %q", got)
	}
	if v, _, _ := store.Get(Key); v != "light" {
		t.Errorf("persisted %q, want light", v)
	}
	if doc.attrs[Attribute] != "light" {
		t.Errorf("data-theme = %q", doc.attrs[Attribute])
	}
	if !doc.classes[TransitionClass] {
		t.Error("transition class not applied")
	}

	sched.Advance(TransitionDuration - time.Millisecond)
	if !doc.classes[TransitionClass] {
		t.Error("transition class removed early")
	}
	sched.Advance(time.Millisecond)
	if doc.classes[TransitionClass] {
		t.Error("transition class still present after 500ms")
	}
	if len(seen) != 1 || seen[0] != Light {
		t.Errorf("OnChange calls = %v", seen)
	}
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	store := NewMemoryStore()
	sched := clock.NewManual()
	m := NewManager(store, SignalLight, sched, newFakeDoc())
	orig := m.Init()

	m.Toggle()
	sched.Advance(100 * time.Millisecond)
	second := m.Toggle()

	if second != orig {
		t.Errorf("after two toggles got %q, want %q", second, orig)
	}
	if v, _, _ := store.Get(Key); v != string(second) {
		t.Errorf("persisted %q, want %q", v, second)
	}
	// The removal restarts from the second toggle.
	if sched.Pending() != 1 {
		t.Errorf("expected one pending removal, got %d", sched.Pending())
	}
}

func TestToggleBeforeInitIsIgnored(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, SignalLight, clock.NewManual(), newFakeDoc())
	m.Toggle()
	if _, ok, _ := store.Get(Key); ok {
		t.Error("toggle before Init persisted a value")
	}
}

func TestStoreFailuresAreLoggedNotRaised(t *testing.T) {
	var buf bytes.Buffer
	doc := newFakeDoc()
	m := NewManager(brokenStore{}, SignalLight, clock.NewManual(), doc)
	m.SetLogger(log.New(&buf, "", 0))

	if got := m.Init(); got != Light {
		t.Errorf("Init with broken store = %q, want OS signal light", got)
	}
	if got := m.Toggle(); got != Dark {
		t.Errorf("Toggle = %q, want dark", got)
	}
	out := buf.String()
	if !strings.Contains(out, "read theme") || !strings.Contains(out, "save theme") {
		t.Errorf("expected read and write failures logged, got %q", out)
	}
}

func TestCloseCancelsPendingRemoval(t *testing.T) {
	doc := newFakeDoc()
	sched := clock.NewManual()
	m := NewManager(NewMemoryStore(), SignalUnknown, sched, doc)
	m.Init()
	m.Toggle()
	m.Close()

	sched.Advance(time.Second)
	if sched.Pending() != 0 {
		t.Errorf("pending timers after Close: %d", sched.Pending())
	}
	for _, entry := range doc.log {
		if entry == "-"+TransitionClass {
			t.Error("class removed after Close")
		}
	}
}
