// Package core provides fundamental types and utilities for the climber.
// It contains no Bubble Tea dependency so that game logic stays pure and testable.
package core

import "github.com/jakecoffman/cp"

// Vec builds a world-space vector.
func Vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

// AABB is an axis-aligned box in world space (y grows upward).
// Min and Max are derived from Position and Size and are kept in sync by every
// mutator, so queries never see stale bounds.
type AABB struct {
	Position cp.Vector
	Size     cp.Vector
	Min      cp.Vector
	Max      cp.Vector
}

// NewAABB creates a box anchored at pos (bottom-left corner) with the given size.
// Negative size components are clamped to zero.
func NewAABB(pos, size cp.Vector) AABB {
	b := AABB{Position: pos, Size: size}
	b.RecomputeBounds()
	return b
}

// RecomputeBounds sets Min = Position and Max = Position + Size.
func (b *AABB) RecomputeBounds() {
	if b.Size.X < 0 {
		b.Size.X = 0
	}
	if b.Size.Y < 0 {
		b.Size.Y = 0
	}
	b.Min = b.Position
	b.Max = b.Position.Add(b.Size)
}

// SetPosition moves the box and refreshes its bounds.
func (b *AABB) SetPosition(pos cp.Vector) {
	b.Position = pos
	b.RecomputeBounds()
}

// SetSize resizes the box and refreshes its bounds.
func (b *AABB) SetSize(size cp.Vector) {
	b.Size = size
	b.RecomputeBounds()
}

// Width returns the horizontal extent.
func (b AABB) Width() float64 {
	return b.Size.X
}

// Height returns the vertical extent.
func (b AABB) Height() float64 {
	return b.Size.Y
}

// Overlaps reports whether two boxes share interior area.
// The test is strict on every side: boxes that only touch along an edge do not
// overlap, which lets a body rest exactly on a boundary.
func (b AABB) Overlaps(other AABB) bool {
	return b.Max.X > other.Min.X && b.Min.X < other.Max.X &&
		b.Max.Y > other.Min.Y && b.Min.Y < other.Max.Y
}

// Rect represents an axis-aligned rectangle in screen cells (y grows downward).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
