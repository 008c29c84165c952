package core

import "testing"

func box(x, y, w, h float64) AABB {
	return NewAABB(Vec(x, y), Vec(w, h))
}

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        box(0, 0, 10, 10),
			b:        box(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        box(0, 0, 10, 10),
			b:        box(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        box(0, 0, 10, 10),
			b:        box(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        box(0, 0, 10, 10),
			b:        box(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching top edge",
			a:        box(0, 0, 10, 10),
			b:        box(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "touching corner",
			a:        box(0, 0, 10, 10),
			b:        box(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        box(0, 0, 20, 20),
			b:        box(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        box(0, 0, 10, 10),
			b:        box(9.999, 9.999, 10, 10),
			expected: true,
		},
		{
			name:     "degenerate point inside",
			a:        box(0, 0, 10, 10),
			b:        box(5, 5, 0, 0),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBBoundsFollowMutation(t *testing.T) {
	b := box(1, 2, 3, 4)
	if b.Min != Vec(1, 2) || b.Max != Vec(4, 6) {
		t.Fatalf("bounds = %v..%v, expected (1,2)..(4,6)", b.Min, b.Max)
	}

	b.SetPosition(Vec(10, 20))
	if b.Min != Vec(10, 20) || b.Max != Vec(13, 24) {
		t.Errorf("after SetPosition bounds = %v..%v", b.Min, b.Max)
	}

	b.SetSize(Vec(5, 5))
	if b.Max != Vec(15, 25) {
		t.Errorf("after SetSize Max = %v, expected (15,25)", b.Max)
	}

	b.SetSize(Vec(-1, 2))
	if b.Size.X != 0 || b.Max.X != b.Min.X {
		t.Errorf("negative width should clamp to zero, got size %v", b.Size)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
}
