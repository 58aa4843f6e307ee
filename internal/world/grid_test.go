package world

import "testing"

func TestNewGridStartsEmpty(t *testing.T) {
	g := NewGrid(4, 6)
	if g.Height() != 4 || g.Width() != 6 {
		t.Fatalf("dimensions = %dx%d, want 4x6", g.Height(), g.Width())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if g.At(y, x) != TileEmpty {
				t.Errorf("cell (%d,%d) = %q, want empty", y, x, g.At(y, x))
			}
		}
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(3, 3)
	defer func() {
		if recover() == nil {
			t.Error("At outside bounds did not panic")
		}
	}()
	g.At(3, 0)
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5)
}

func TestWalkability(t *testing.T) {
	cases := []struct {
		tile Tile
		want bool
	}{
		{TileEmpty, false},
		{TileWall, false},
		{TileFloor, true},
		{TileDoor, true},
		{TileStart, true},
		{TileEnd, true},
	}
	for _, c := range cases {
		if got := c.tile.IsWalkable(); got != c.want {
			t.Errorf("IsWalkable(%q) = %v, want %v", c.tile, got, c.want)
		}
	}
}

func TestHasAdjacentFloor(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, TileFloor)

	for _, c := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		if !g.HasAdjacentFloor(c[0], c[1]) {
			t.Errorf("(%d,%d) should see adjacent floor", c[0], c[1])
		}
	}
	// Diagonals do not count, and corner checks must not panic while
	// probing neighbors outside the grid.
	if g.HasAdjacentFloor(0, 0) {
		t.Error("(0,0) is only diagonal to floor and should not match")
	}
}

func TestWalkableCoords(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 2, TileDoor)
	g.Set(2, 0, TileFloor)

	got := g.WalkableCoords()
	want := [][2]int{{0, 2}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d = %v, want %v", i, got[i], want[i])
		}
	}
}
