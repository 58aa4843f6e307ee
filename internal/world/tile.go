// Package world provides the level grid, its tile model, and the
// read-only level handed to consumers after generation.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileEmpty is unassigned space outside any room.
	TileEmpty Tile = ' '
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileDoor is the passable opening connecting a room to earlier floor.
	TileDoor Tile = '+'
	// TileStart marks the optional level entry cell.
	TileStart Tile = '<'
	// TileEnd marks the optional level exit cell.
	TileEnd Tile = '>'
)

// IsWalkable returns true if the tile can be walked on.
func (t Tile) IsWalkable() bool {
	switch t {
	case TileFloor, TileDoor, TileStart, TileEnd:
		return true
	}
	return false
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
