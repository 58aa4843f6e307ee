package world

import "testing"

func buildLevel() *Level {
	g := NewGrid(4, 5)
	g.Set(1, 1, TileWall)
	g.Set(1, 2, TileFloor)
	g.Set(1, 3, TileDoor)
	return NewLevel(g, 99, 1)
}

func TestLevelQueries(t *testing.T) {
	l := buildLevel()

	if l.Width() != 5 || l.Height() != 4 {
		t.Errorf("dimensions = %dx%d, want 4x5", l.Height(), l.Width())
	}
	if l.Seed() != 99 {
		t.Errorf("seed = %d, want 99", l.Seed())
	}
	if l.RoomsPlaced() != 1 {
		t.Errorf("rooms placed = %d, want 1", l.RoomsPlaced())
	}
	if !l.IsWall(1, 1) || !l.IsFloor(1, 2) {
		t.Error("wall/floor queries disagree with the grid")
	}
	if !l.IsWalkable(1, 3) {
		t.Error("door should be walkable")
	}
	if !l.HasAdjacentFloor(0, 2) {
		t.Error("(0,2) sits above floor")
	}
	if l.ID().String() == "" {
		t.Error("level has no id")
	}
}

func TestLevelOutOfBoundsReadsAreSafe(t *testing.T) {
	l := buildLevel()
	// The read-only surface returns empty rather than panicking, so the
	// rendering side can probe freely.
	if l.TileAt(-1, 0) != TileEmpty {
		t.Errorf("TileAt(-1,0) = %q, want empty", l.TileAt(-1, 0))
	}
	if l.IsWalkable(99, 99) {
		t.Error("out-of-bounds cell reported walkable")
	}
	if l.InBounds(4, 0) {
		t.Error("row 4 of a height-4 level reported in bounds")
	}
}

func TestLevelMarks(t *testing.T) {
	l := buildLevel()
	if l.HasMarks() {
		t.Error("marks set before SetMarks")
	}
	if y, x := l.Start(); y != -1 || x != -1 {
		t.Errorf("unset start = (%d,%d), want (-1,-1)", y, x)
	}

	l.SetMarks(1, 2, 1, 3)
	if !l.HasMarks() {
		t.Error("marks not recorded")
	}
	if y, x := l.End(); y != 1 || x != 3 {
		t.Errorf("end = (%d,%d), want (1,3)", y, x)
	}
}
