package section

import (
	"testing"
	"time"
)

func page(hero, projects, about, contact float64) []Section {
	return []Section{
		{ID: Hero, Top: hero, Present: true},
		{ID: Projects, Top: projects, Present: true},
		{ID: About, Top: about, Present: true},
		{ID: Contact, Top: contact, Present: true},
	}
}

func TestTrack(t *testing.T) {
	tests := []struct {
		name     string
		scrollY  float64
		viewport float64
		sections []Section
		want     string
		wantOK   bool
	}{
		{"top of page", 0, 900, page(0, 1000, 2000, 3000), Hero, true},
		{"projects via lookahead", 700, 600, page(0, 800, 1500, 2500), Projects, true},
		{"threshold equals top", 600, 600, page(0, 800, 1500, 2500), Projects, true},
		{"just short of projects", 599, 600, page(0, 800, 1500, 2500), Hero, true},
		{"bottom of page", 5000, 600, page(0, 800, 1500, 2500), Contact, true},
		{"nothing qualifies", 0, 300, page(200, 800, 1500, 2500), "", false},
		{
			"missing section skipped",
			1600, 600,
			[]Section{
				{ID: Hero, Top: 0, Present: true},
				{ID: Projects, Top: 800, Present: true},
				{ID: About, Present: false},
				{ID: Contact, Top: 2500, Present: true},
			},
			Projects, true,
		},
		{"empty page", 100, 600, nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Track(tt.scrollY, tt.viewport, tt.sections)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Track(%v, %v) = %q, %v; want %q, %v", tt.scrollY, tt.viewport, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// The selected section always has the greatest top at or below the threshold.
func TestTrackPicksGreatestQualifyingTop(t *testing.T) {
	sections := page(0, 640, 1710, 2900)
	for y := 0.0; y <= 4000; y += 37 {
		threshold := y + 720.0/3
		want := ""
		best := -1.0
		for _, s := range sections {
			if s.Top <= threshold && s.Top > best {
				best, want = s.Top, s.ID
			}
		}
		got, _ := Track(y, 720, sections)
		if got != want {
			t.Fatalf("scrollY=%v: got %q, want %q", y, got, want)
		}
	}
}

func TestArrange(t *testing.T) {
	got := Arrange(map[string]float64{About: 1200, Hero: 0, "footer": 9000})
	if len(got) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(got))
	}
	for i, id := range Order {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
	if !got[0].Present || got[1].Present || !got[2].Present || got[3].Present {
		t.Errorf("unexpected presence flags: %+v", got)
	}
}

func TestTrackerKeepsPreviousWhenNothingQualifies(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	if !tr.Observe(now, 700, 600, page(0, 800, 1500, 2500)) {
		t.Fatal("expected change to projects")
	}
	if tr.Active() != Projects {
		t.Fatalf("active = %q, want %q", tr.Active(), Projects)
	}
	if tr.Observe(now, 0, 300, page(500, 800, 1500, 2500)) {
		t.Error("expected no change when nothing qualifies")
	}
	if tr.Active() != Projects {
		t.Errorf("active = %q, want %q retained", tr.Active(), Projects)
	}
}

func TestTrackerThrottle(t *testing.T) {
	tr := NewTracker()
	tr.Throttle = 50 * time.Millisecond
	start := time.Now()

	tr.Observe(start, 0, 600, page(0, 800, 1500, 2500))
	if tr.Observe(start.Add(10*time.Millisecond), 5000, 600, page(0, 800, 1500, 2500)) {
		t.Fatal("throttled observation changed the active section")
	}
	if !tr.Observe(start.Add(60*time.Millisecond), 5000, 600, page(0, 800, 1500, 2500)) {
		t.Fatal("expected observation after throttle window to apply")
	}
	if tr.Active() != Contact {
		t.Errorf("active = %q, want %q", tr.Active(), Contact)
	}
}

func TestTrackerFlushAppliesLastDroppedObservation(t *testing.T) {
	tr := NewTracker()
	tr.Throttle = 50 * time.Millisecond
	start := time.Now()

	if _, ok := tr.Pending(start); ok {
		t.Fatal("pending before any observation")
	}
	tr.Observe(start, 0, 600, page(0, 800, 1500, 2500))
	tr.Observe(start.Add(10*time.Millisecond), 700, 600, page(0, 800, 1500, 2500))
	tr.Observe(start.Add(20*time.Millisecond), 1400, 600, page(0, 800, 1500, 2500))

	wait, ok := tr.Pending(start.Add(20 * time.Millisecond))
	if !ok || wait != 30*time.Millisecond {
		t.Fatalf("Pending = %v, %v; want 30ms, true", wait, ok)
	}
	if tr.Active() != Hero {
		t.Fatalf("active = %q before flush", tr.Active())
	}

	if !tr.Flush(start.Add(50 * time.Millisecond)) {
		t.Fatal("flush did not apply the dropped observation")
	}
	if tr.Active() != About {
		t.Errorf("active = %q, want the last dropped position %q", tr.Active(), About)
	}
	if _, ok := tr.Pending(start.Add(50 * time.Millisecond)); ok {
		t.Error("observation still pending after flush")
	}
	if tr.Flush(start.Add(60 * time.Millisecond)) {
		t.Error("second flush changed the active section")
	}
}
