package grid

import "testing"

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{3, 0}, 3},
		{Coord{0, 0}, Coord{0, -4}, 4},
		{Coord{2, 2}, Coord{4, 4}, 4},
		{Coord{-1, -1}, Coord{1, 1}, 4},
		{Coord{5, 3}, Coord{2, 7}, 7},
	}

	for _, tt := range tests {
		if got := Manhattan(tt.a, tt.b); got != tt.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// Distance is symmetric
		if got := Manhattan(tt.b, tt.a); got != tt.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestNeighbors4(t *testing.T) {
	got := Coord{2, 3}.Neighbors4()
	want := [4]Coord{{1, 3}, {3, 3}, {2, 2}, {2, 4}}
	if got != want {
		t.Errorf("Neighbors4 = %v, want %v", got, want)
	}

	for _, n := range got {
		if Manhattan(Coord{2, 3}, n) != 1 {
			t.Errorf("Neighbor %v is not adjacent", n)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Width: 5, Height: 3}

	inside := []Coord{{0, 0}, {4, 2}, {2, 1}}
	for _, c := range inside {
		if !r.Contains(c) {
			t.Errorf("Expected %v inside %dx%d rect", c, r.Width, r.Height)
		}
	}

	outside := []Coord{{-1, 0}, {0, -1}, {5, 0}, {0, 3}, {5, 3}}
	for _, c := range outside {
		if r.Contains(c) {
			t.Errorf("Expected %v outside %dx%d rect", c, r.Width, r.Height)
		}
	}
}

func TestSetOperations(t *testing.T) {
	s := NewSet(Coord{1, 1}, Coord{2, 2})

	if s.Len() != 2 {
		t.Fatalf("Expected 2 elements, got %d", s.Len())
	}
	if !s.Has(Coord{1, 1}) || !s.Has(Coord{2, 2}) {
		t.Error("Set missing inserted coordinates")
	}
	if s.Has(Coord{3, 3}) {
		t.Error("Set reports coordinate that was never added")
	}

	s.Add(Coord{1, 1}) // duplicate insert is a no-op
	if s.Len() != 2 {
		t.Errorf("Duplicate add changed length to %d", s.Len())
	}

	other := NewSet(Coord{2, 2}, Coord{1, 1})
	if !s.Equal(other) {
		t.Error("Sets with the same coordinates should be equal")
	}
	other.Add(Coord{0, 0})
	if s.Equal(other) {
		t.Error("Sets with different coordinates should not be equal")
	}
}
