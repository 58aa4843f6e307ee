package generation

import (
	"testing"

	"github.com/samdwyer/roomcarver/internal/world"
)

func TestHallrayLength(t *testing.T) {
	g := world.NewGrid(3, 20)
	g.Set(1, 12, world.TileFloor)

	// (1,11) is the first floor-adjacent cell on the eastward ray.
	if got := hallrayLength(g, 1, 4, East); got != 7 {
		t.Errorf("length from x=4 = %d, want 7", got)
	}
	if got := hallrayLength(g, 1, 6, East); got != 5 {
		t.Errorf("length from x=6 = %d, want 5", got)
	}
	// Starting adjacent to floor needs no corridor.
	if got := hallrayLength(g, 1, 11, East); got != 0 {
		t.Errorf("length from adjacent cell = %d, want 0", got)
	}
}

func TestHallrayUnreachable(t *testing.T) {
	g := world.NewGrid(3, 20)
	g.Set(1, 12, world.TileFloor)

	// Walking west from x=4 exits the grid without meeting floor.
	if got := hallrayLength(g, 1, 4, West); got != hallrayUnreachable {
		t.Errorf("westward ray = %d, want unreachable", got)
	}
}

func TestIsValidHallrayBound(t *testing.T) {
	g := world.NewGrid(3, 20)
	g.Set(1, 12, world.TileFloor)

	// Nearest floor-adjacent cell 7 steps away: too far for maxLength 6.
	if isValidHallray(g, 1, 4, East, 6) {
		t.Error("7-step ray accepted with maxLength 6")
	}
	// 5 steps away: within bound.
	if !isValidHallray(g, 1, 6, East, 6) {
		t.Error("5-step ray rejected with maxLength 6")
	}
}

func TestPlaceHallray(t *testing.T) {
	g := world.NewGrid(3, 10)
	placeHallray(g, 1, 2, East, 3)

	for x := 2; x <= 5; x++ {
		if g.At(1, x) != world.TileFloor {
			t.Errorf("cell (1,%d) = %q, want floor", x, g.At(1, x))
		}
	}
	if g.At(1, 6) != world.TileEmpty {
		t.Errorf("cell past the ray end = %q, want empty", g.At(1, 6))
	}
}

func TestConnectorValidDirectAdjacency(t *testing.T) {
	g := world.NewGrid(3, 10)
	g.Set(1, 5, world.TileFloor)

	// maxHallway 0: only direct adjacency counts.
	if !connectorValid(g, 1, 4, East, 0) {
		t.Error("cell next to floor rejected")
	}
	if connectorValid(g, 1, 2, East, 0) {
		t.Error("cell two steps from floor accepted without hallways")
	}
	// With hallways allowed the same cell connects.
	if !connectorValid(g, 1, 2, East, 6) {
		t.Error("cell two steps from floor rejected with hallways")
	}
}
