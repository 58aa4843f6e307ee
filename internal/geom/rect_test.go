package geom

import "testing"

func TestAreaCoordsRowMajor(t *testing.T) {
	r := Rect{Y: 1, X: 2, H: 2, W: 3}
	want := []Point{
		{1, 2}, {1, 3}, {1, 4},
		{2, 2}, {2, 3}, {2, 4},
	}
	got := r.AreaCoords()
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAreaCoordsDegenerate(t *testing.T) {
	if got := (Rect{H: 0, W: 5}).AreaCoords(); got != nil {
		t.Errorf("zero-height rect produced %v", got)
	}
}

func TestPerimeterCoordsSkipOneOn5x5(t *testing.T) {
	// The 12 non-corner border cells of a 5x5, clockwise, starting next
	// to the top-left corner.
	r := Rect{Y: 0, X: 0, H: 5, W: 5}
	want := []Point{
		{0, 1}, {0, 2}, {0, 3},
		{1, 4}, {2, 4}, {3, 4},
		{4, 3}, {4, 2}, {4, 1},
		{3, 0}, {2, 0}, {1, 0},
	}
	got := r.PerimeterCoords(1)
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d: %v", len(got), len(want), got)
	}
	seen := make(map[Point]int)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d = %v, want %v", i, got[i], want[i])
		}
		seen[got[i]]++
	}
	for p, n := range seen {
		if n != 1 {
			t.Errorf("coord %v emitted %d times", p, n)
		}
	}
}

func TestPerimeterCoordsSkipZeroCountsCorners(t *testing.T) {
	r := Rect{Y: 0, X: 0, H: 4, W: 6}
	got := r.PerimeterCoords(0)
	// Full border of a 4x6: 2*6 + 2*4 - 4 corners counted once.
	if len(got) != 16 {
		t.Fatalf("got %d border cells, want 16", len(got))
	}
	seen := make(map[Point]bool)
	for _, p := range got {
		if seen[p] {
			t.Errorf("coord %v emitted twice", p)
		}
		seen[p] = true
	}
}

func TestPerimeterCoordsSingleRow(t *testing.T) {
	r := Rect{Y: 3, X: 1, H: 1, W: 4}
	got := r.PerimeterCoords(0)
	if len(got) != 4 {
		t.Fatalf("got %d cells, want 4: %v", len(got), got)
	}
}

func TestEnlargeCentersGrowth(t *testing.T) {
	r := Rect{Y: 5, X: 5, H: 4, W: 4}

	grown := r.Enlarge(2, 2)
	if grown != (Rect{Y: 4, X: 4, H: 6, W: 6}) {
		t.Errorf("Enlarge(2,2) = %+v", grown)
	}

	// Shrinking by (-2,-2) yields the interior one cell in from every side.
	interior := r.Enlarge(-2, -2)
	if interior != (Rect{Y: 6, X: 6, H: 2, W: 2}) {
		t.Errorf("Enlarge(-2,-2) = %+v", interior)
	}
}

func TestContains(t *testing.T) {
	r := Rect{Y: 2, X: 2, H: 3, W: 3}
	cases := []struct {
		y, x int
		want bool
	}{
		{2, 2, true},
		{4, 4, true},
		{5, 4, false},
		{4, 5, false},
		{1, 2, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.y, c.x); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.y, c.x, got, c.want)
		}
	}
}
