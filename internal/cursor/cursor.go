// Package cursor tracks the pointer for the cursor follower element.
package cursor

import "time"

// Variant is the follower's visual style.
type Variant string

const (
	Default Variant = "default"
	Text    Variant = "text"
)

// DefaultThrottle is the minimum time between accepted pointer updates.
const DefaultThrottle = 10 * time.Millisecond

// Frame is what the follower element should render.
type Frame struct {
	Variant Variant `json:"variant"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Blend   string  `json:"blend,omitempty"`
}

type style struct {
	radius float64
	blend  string
}

var styles = map[Variant]style{
	Default: {radius: 15},
	Text:    {radius: 75, blend: "difference"},
}

// Follower holds the pointer position and the current variant.
type Follower struct {
	Throttle time.Duration

	x, y    float64
	variant Variant
	last    time.Time
	moved   bool
}

// New returns a follower parked off-screen.
func New() *Follower {
	return &Follower{Throttle: DefaultThrottle, x: -100, y: -100, variant: Default}
}

// Move records a pointer position. It reports false if the update was
// dropped by the throttle.
func (f *Follower) Move(x, y float64, at time.Time) bool {
	if f.moved && f.Throttle > 0 && at.Sub(f.last) < f.Throttle {
		return false
	}
	f.moved = true
	f.last = at
	f.x, f.y = x, y
	return true
}

// Enter switches to the text variant when the hovered target is text and
// reports whether the variant changed.
func (f *Follower) Enter(target string) bool {
	if Variant(target) != Text {
		return false
	}
	return f.set(Text)
}

// Leave resets to the default variant.
func (f *Follower) Leave() bool {
	return f.set(Default)
}

func (f *Follower) set(v Variant) bool {
	if f.variant == v {
		return false
	}
	f.variant = v
	return true
}

// Variant returns the current variant.
func (f *Follower) Variant() Variant { return f.variant }

// Frame returns the follower's top-left corner, centred on the pointer.
func (f *Follower) Frame() Frame {
	s := styles[f.variant]
	return Frame{
		Variant: f.variant,
		X:       f.x - s.radius,
		Y:       f.y - s.radius,
		Size:    s.radius * 2,
		Blend:   s.blend,
	}
}
