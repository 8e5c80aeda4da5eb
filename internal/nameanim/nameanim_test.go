package nameanim

import (
	"testing"
	"time"

	"github.com/Zachkp/cyberfolio/internal/clock"
)

var heroName = Config{
	ForeignParts: []string{"弗兰克", "奥皮戈", "伊曼纽尔"},
	FinalName:    "Frank-Opigo A. Emmanuel",
}

type frame struct {
	phase Phase
	text  string
}

func record(a *Animator) *[]frame {
	var frames []frame
	a.OnFrame = func(p Phase, s string) { frames = append(frames, frame{p, s}) }
	return &frames
}

func TestPhaseTimeline(t *testing.T) {
	m := clock.NewManual()
	a := New(heroName, m)
	a.Start()

	if a.Phase() != Foreign || a.Text() != "弗兰克 奥皮戈 伊曼纽尔" {
		t.Fatalf("start: phase %v text %q", a.Phase(), a.Text())
	}

	m.Advance(1999 * time.Millisecond)
	if a.Phase() != Foreign {
		t.Fatalf("phase at 1999ms = %v, want foreign", a.Phase())
	}
	m.Advance(time.Millisecond)
	if a.Phase() != Transitioning {
		t.Fatalf("phase at 2000ms = %v, want transitioning", a.Phase())
	}

	n := len([]rune(heroName.FinalName))
	m.Advance(time.Duration(n-1) * DefaultStep)
	if a.Phase() != Transitioning {
		t.Fatalf("phase one step early = %v, want transitioning", a.Phase())
	}
	m.Advance(DefaultStep)
	if a.Phase() != Final || a.Text() != heroName.FinalName {
		t.Fatalf("phase %v text %q, want final %q", a.Phase(), a.Text(), heroName.FinalName)
	}
	if m.Pending() != 0 {
		t.Errorf("timers left after final: %d", m.Pending())
	}

	m.Advance(time.Minute)
	if a.Phase() != Final || a.Text() != heroName.FinalName {
		t.Errorf("final phase not stable: %v %q", a.Phase(), a.Text())
	}
}

func TestRevealOverwritesByIndex(t *testing.T) {
	m := clock.NewManual()
	a := New(heroName, m)
	frames := record(a)
	a.Start()
	m.Advance(DefaultHold + DefaultStep)

	got := (*frames)[len(*frames)-1]
	if got.phase != Transitioning || got.text != "F兰克 奥皮戈 伊曼纽尔" {
		t.Errorf("first reveal = %v %q", got.phase, got.text)
	}

	m.Advance(3 * DefaultStep)
	got = (*frames)[len(*frames)-1]
	if got.text != "Fran奥皮戈 伊曼纽尔" {
		t.Errorf("fourth reveal = %q", got.text)
	}
}

func TestLengthMismatch(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    []string
		steps   int
		wantEnd string
	}{
		{
			name:    "foreign longer keeps tail frozen",
			cfg:     Config{ForeignParts: []string{"xyz", "w"}, FinalName: "Abc"},
			want:    []string{"xyz w", "Ayz w", "Abz w", "Abc"},
			steps:   3,
			wantEnd: "Abc",
		},
		{
			name:    "final longer grows buffer",
			cfg:     Config{ForeignParts: []string{"x"}, FinalName: "abc"},
			want:    []string{"x", "a", "ab", "abc"},
			steps:   3,
			wantEnd: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := clock.NewManual()
			a := New(tt.cfg, m)
			frames := record(a)
			a.Start()
			m.Advance(DefaultHold + time.Duration(tt.steps)*DefaultStep)

			if len(*frames) != len(tt.want) {
				t.Fatalf("got %d frames %v, want %v", len(*frames), *frames, tt.want)
			}
			for i, w := range tt.want {
				if (*frames)[i].text != w {
					t.Errorf("frame %d = %q, want %q", i, (*frames)[i].text, w)
				}
			}
			if a.Phase() != Final || a.Text() != tt.wantEnd {
				t.Errorf("end = %v %q", a.Phase(), a.Text())
			}
		})
	}
}

func TestEmptyFinalNameFinishesAfterHold(t *testing.T) {
	m := clock.NewManual()
	a := New(Config{ForeignParts: []string{"名"}}, m)
	a.Start()
	m.Advance(DefaultHold)
	if a.Phase() != Final || a.Text() != "" {
		t.Errorf("got %v %q", a.Phase(), a.Text())
	}
}

func TestStopDuringEachPhase(t *testing.T) {
	for _, stopAt := range []time.Duration{0, time.Second, DefaultHold + 5*DefaultStep} {
		m := clock.NewManual()
		a := New(heroName, m)
		frames := record(a)
		a.Start()
		m.Advance(stopAt)

		before := len(*frames)
		phase := a.Phase()
		a.Stop()
		if m.Pending() != 0 {
			t.Errorf("stop at %v: %d timers still pending", stopAt, m.Pending())
		}
		m.Advance(time.Minute)
		if len(*frames) != before {
			t.Errorf("stop at %v: frames published after Stop", stopAt)
		}
		if a.Phase() != phase {
			t.Errorf("stop at %v: phase moved from %v to %v", stopAt, phase, a.Phase())
		}
	}
}

func TestStartIsIdempotent(t *testing.T) {
	m := clock.NewManual()
	a := New(heroName, m)
	a.Start()
	a.Start()
	if m.Pending() != 1 {
		t.Fatalf("expected exactly one timer, got %d", m.Pending())
	}
	m.Advance(DefaultHold)
	a.Start()
	if m.Pending() != 1 {
		t.Errorf("expected exactly one interval while transitioning, got %d", m.Pending())
	}
}
