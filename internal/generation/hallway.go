package generation

import (
	"math"

	"github.com/samdwyer/roomcarver/internal/world"
)

// hallrayUnreachable marks a ray that left the grid without ever standing
// next to existing floor.
const hallrayUnreachable = math.MaxInt

// hallrayLength walks from (y,x) in unit steps of dir and returns the
// step count at the first position that is 4-adjacent to existing floor.
// Step 0 is (y,x) itself, so a cell already next to floor needs no
// corridor at all.
func hallrayLength(g *world.Grid, y, x int, dir Dir) int {
	length := 0
	for g.InBounds(y, x) {
		if g.HasAdjacentFloor(y, x) {
			return length
		}
		y += dir.DY
		x += dir.DX
		length++
	}
	return hallrayUnreachable
}

// isValidHallray reports whether a corridor from (y,x) along dir reaches
// existing floor in fewer than maxLength steps.
func isValidHallray(g *world.Grid, y, x int, dir Dir, maxLength int) bool {
	return hallrayLength(g, y, x, dir) < maxLength
}

// placeHallray marks every cell from (y,x) through (y,x)+length*dir,
// inclusive, as floor.
func placeHallray(g *world.Grid, y, x int, dir Dir, length int) {
	for i := 0; i <= length; i++ {
		g.Set(y+i*dir.DY, x+i*dir.DX, world.TileFloor)
	}
}

// connectorValid reports whether a doorway at (y,x) opening toward dir
// can connect to existing floor: directly when maxHallway is zero, or
// through a corridor of fewer than maxHallway cells otherwise.
func connectorValid(g *world.Grid, y, x int, dir Dir, maxHallway int) bool {
	if maxHallway <= 0 {
		return g.HasAdjacentFloor(y, x)
	}
	return isValidHallray(g, y, x, dir, maxHallway)
}
