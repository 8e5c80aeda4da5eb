// Package particles generates the decorative hero background.
package particles

import (
	"fmt"
	"math/rand"
)

const (
	Count        = 30
	ReducedCount = 15

	// ReducedDuration is the fixed drift duration, in seconds, used when
	// the visitor prefers reduced motion.
	ReducedDuration = 30

	GridLines        = 8
	ReducedGridLines = 5
)

// Particle is a dot drifting across the hero. Positions are percentages of
// the container, Duration is in seconds.
type Particle struct {
	ID       int
	X        float64
	Y        float64
	Size     float64
	Duration float64
}

// Generate creates the particles for one page view.
func Generate(r *rand.Rand, reducedMotion bool) []Particle {
	n := Count
	if reducedMotion {
		n = ReducedCount
	}
	out := make([]Particle, n)
	for i := range out {
		p := Particle{
			ID:   i,
			X:    r.Float64() * 100,
			Y:    r.Float64() * 100,
			Size: r.Float64()*3 + 1,
		}
		if reducedMotion {
			p.Duration = ReducedDuration
		} else {
			p.Duration = r.Float64()*20 + 10
		}
		out[i] = p
	}
	return out
}

// Line is a grid line at Pos percent along its axis.
type Line struct {
	ID  string
	Pos float64
}

// Grid is the background grid.
type Grid struct {
	Horizontal []Line
	Vertical   []Line
}

// NewGrid spaces lines evenly along both axes.
func NewGrid(reducedMotion bool) Grid {
	n := GridLines
	if reducedMotion {
		n = ReducedGridLines
	}
	g := Grid{
		Horizontal: make([]Line, n),
		Vertical:   make([]Line, n),
	}
	step := 100 / float64(n+1)
	for i := 0; i < n; i++ {
		pos := float64(i+1) * step
		g.Horizontal[i] = Line{ID: fmt.Sprintf("h-%d", i), Pos: pos}
		g.Vertical[i] = Line{ID: fmt.Sprintf("v-%d", i), Pos: pos}
	}
	return g
}
