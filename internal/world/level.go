package world

import "github.com/google/uuid"

// Level is the finished, read-only map handed to consumers (renderer,
// exporter) once generation completes. It takes ownership of the grid;
// nothing mutates a Level after construction.
type Level struct {
	id          uuid.UUID
	seed        int64
	roomsPlaced int
	grid        *Grid
	startY      int
	startX      int
	endY        int
	endX        int
	hasMarks    bool
}

// NewLevel wraps a generated grid. The caller must not retain or mutate
// the grid afterwards.
func NewLevel(grid *Grid, seed int64, roomsPlaced int) *Level {
	return &Level{
		id:          uuid.New(),
		seed:        seed,
		roomsPlaced: roomsPlaced,
		grid:        grid,
		startY:      -1,
		startX:      -1,
		endY:        -1,
		endX:        -1,
	}
}

// SetMarks records the start/end cells chosen during generation. Called
// once by the engine before the level is published.
func (l *Level) SetMarks(startY, startX, endY, endX int) {
	l.startY, l.startX = startY, startX
	l.endY, l.endX = endY, endX
	l.hasMarks = true
}

// ID returns the level's unique identifier.
func (l *Level) ID() uuid.UUID { return l.id }

// Seed returns the seed the level was generated from.
func (l *Level) Seed() int64 { return l.seed }

// RoomsPlaced returns how many rooms were actually placed; this can be
// below the configured budget when late rooms found no valid position.
func (l *Level) RoomsPlaced() int { return l.roomsPlaced }

// Width returns the level width in cells.
func (l *Level) Width() int { return l.grid.Width() }

// Height returns the level height in cells.
func (l *Level) Height() int { return l.grid.Height() }

// InBounds reports whether (y,x) lies inside the level.
func (l *Level) InBounds(y, x int) bool { return l.grid.InBounds(y, x) }

// TileAt returns the tile at (y,x), or TileEmpty if out of bounds.
func (l *Level) TileAt(y, x int) Tile {
	if !l.grid.InBounds(y, x) {
		return TileEmpty
	}
	return l.grid.At(y, x)
}

// IsWalkable reports whether (y,x) can be walked on.
func (l *Level) IsWalkable(y, x int) bool { return l.grid.IsWalkable(y, x) }

// IsFloor reports whether (y,x) holds open floor.
func (l *Level) IsFloor(y, x int) bool { return l.TileAt(y, x) == TileFloor }

// IsWall reports whether (y,x) holds a wall.
func (l *Level) IsWall(y, x int) bool { return l.TileAt(y, x) == TileWall }

// HasAdjacentFloor reports whether a 4-neighbor of (y,x) is walkable.
func (l *Level) HasAdjacentFloor(y, x int) bool { return l.grid.HasAdjacentFloor(y, x) }

// HasMarks reports whether start/end cells were selected.
func (l *Level) HasMarks() bool { return l.hasMarks }

// Start returns the start cell, or (-1,-1) when marks were not requested.
func (l *Level) Start() (y, x int) { return l.startY, l.startX }

// End returns the end cell, or (-1,-1) when marks were not requested.
func (l *Level) End() (y, x int) { return l.endY, l.endX }

// String renders the level one line per row.
func (l *Level) String() string { return l.grid.String() }
