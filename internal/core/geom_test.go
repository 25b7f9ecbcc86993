package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCentered(t *testing.T) {
	r := Centered(40, 12, 10, 4)
	if r.X != 35 || r.Y != 10 || r.W != 10 || r.H != 4 {
		t.Errorf("Centered(40, 12, 10, 4) = %+v", r)
	}
	if r.Right() != 45 || r.Bottom() != 14 {
		t.Errorf("edges = (%d, %d), expected (45, 14)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbsAndMax3(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Max3(1, -7, 3) != 3 {
		t.Errorf("Max3(1, -7, 3) = %d, expected 3", Max3(1, -7, 3))
	}
	if Max3(-1, -2, -3) != -1 {
		t.Errorf("Max3(-1, -2, -3) = %d, expected -1", Max3(-1, -2, -3))
	}
}
