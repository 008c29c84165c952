package bricks

import (
	"math/rand"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Window is the sliding run of live segments, ordered bottom to top.
// Segments are appended at the tail as the camera approaches the top of the
// generated range and evicted from the head once they scroll out below.
type Window struct {
	segments []Segment
	rng      *rand.Rand
	level    config.LevelConfig
	width    float64
	bandH    float64
	nextID   int
}

// NewWindow creates an empty window generating bands width wide and bandH tall.
func NewWindow(rng *rand.Rand, level config.LevelConfig, width, bandH float64) *Window {
	return &Window{
		segments: make([]Segment, 0, 8),
		rng:      rng,
		level:    level,
		width:    width,
		bandH:    bandH,
		nextID:   1,
	}
}

// Reset clears the window, restarts ids at 1 and generates the seed segment
// whose band starts at world height y.
func (w *Window) Reset(y float64) {
	w.segments = w.segments[:0]
	w.nextID = 1
	w.push(y)
}

// push generates the next segment with its band starting at y.
func (w *Window) push(y float64) {
	seg := Generate(w.rng, core.Vec(0, y), core.Vec(w.width, w.bandH), w.nextID, w.level)
	w.nextID++
	w.segments = append(w.segments, seg)
}

// Advance generates ahead of and evicts behind the camera at scroll height.
// At most one segment is appended and one evicted per call; the append check
// runs first. The last remaining segment is never evicted.
func (w *Window) Advance(scroll, screenH float64) (generated, evicted bool) {
	if len(w.segments) == 0 {
		w.push(scroll + screenH)
		return true, false
	}

	tail := w.Tail()
	if tail.Bounds.Max.Y-scroll < screenH {
		w.push(tail.Bounds.Max.Y)
		generated = true
	}

	head := w.Head()
	if head.Bounds.Max.Y-scroll < 0 && len(w.segments) > 1 {
		// Shift down in place; the backing array is reused.
		copy(w.segments, w.segments[1:])
		w.segments[len(w.segments)-1] = Segment{}
		w.segments = w.segments[:len(w.segments)-1]
		evicted = true
	}

	return generated, evicted
}

// Head returns the lowest live segment. The window must not be empty.
func (w *Window) Head() *Segment {
	return &w.segments[0]
}

// Tail returns the highest live segment. The window must not be empty.
func (w *Window) Tail() *Segment {
	return &w.segments[len(w.segments)-1]
}

// Len returns the number of live segments.
func (w *Window) Len() int {
	return len(w.segments)
}

// Segments returns the live segments, bottom to top. Callers must not modify them.
func (w *Window) Segments() []Segment {
	return w.segments
}

// NextID returns the id the next generated segment will receive.
func (w *Window) NextID() int {
	return w.nextID
}

// IsHit reports whether body collides with anything in any live segment.
func (w *Window) IsHit(body core.AABB) bool {
	for i := range w.segments {
		if w.segments[i].IsHit(body) {
			return true
		}
	}
	return false
}
