package world

import "fmt"

// Grid is the mutable tile array a generation run builds into. Its size is
// fixed at creation and every access is bounds-checked: indexing outside
// the grid is a programming error, so At and Set panic rather than return
// an error.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// NewGrid creates a grid of the given dimensions filled with TileEmpty.
func NewGrid(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("world: invalid grid dimensions %dx%d", height, width))
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileEmpty
		}
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (y,x) lies inside the grid.
func (g *Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.height && x >= 0 && x < g.width
}

// At returns the tile at (y,x). Panics if out of bounds.
func (g *Grid) At(y, x int) Tile {
	g.check(y, x)
	return g.tiles[y][x]
}

// Set writes the tile at (y,x). Panics if out of bounds.
func (g *Grid) Set(y, x int, t Tile) {
	g.check(y, x)
	g.tiles[y][x] = t
}

// IsWalkable reports whether (y,x) is in bounds and holds a walkable tile.
func (g *Grid) IsWalkable(y, x int) bool {
	return g.InBounds(y, x) && g.tiles[y][x].IsWalkable()
}

// HasAdjacentFloor reports whether any of the four orthogonal neighbors of
// (y,x) is walkable. This is the adjacency test behind door validity, so
// it is also what makes level connectivity emergent: a cell only counts
// as connectable if floor already exists next to it.
func (g *Grid) HasAdjacentFloor(y, x int) bool {
	return g.IsWalkable(y-1, x) || g.IsWalkable(y+1, x) ||
		g.IsWalkable(y, x-1) || g.IsWalkable(y, x+1)
}

// WalkableCoords returns every walkable coordinate in row-major order.
func (g *Grid) WalkableCoords() [][2]int {
	var coords [][2]int
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x].IsWalkable() {
				coords = append(coords, [2]int{y, x})
			}
		}
	}
	return coords
}

// String renders the grid one line per row, for dumps and test failures.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, g.tiles[y][x].Rune())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func (g *Grid) check(y, x int) {
	if !g.InBounds(y, x) {
		panic(fmt.Sprintf("world: grid access (%d,%d) outside %dx%d", y, x, g.height, g.width))
	}
}
