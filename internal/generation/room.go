// Package generation builds dungeon levels by sliding randomly generated
// rooms across a grid and placing them wherever their own connectivity
// rules allow. Rooms only validate against floor that already exists, so
// every level comes out fully connected without a separate graph pass.
package generation

import (
	"github.com/samdwyer/roomcarver/internal/rng"
	"github.com/samdwyer/roomcarver/internal/world"
)

// Room is a unit of level content with a fixed footprint. The engine
// slides the footprint over the grid, asking CanPlaceAt for every offset,
// then calls PlaceAt on one offset chosen at random.
type Room interface {
	// Height returns the footprint height in cells.
	Height() int
	// Width returns the footprint width in cells.
	Width() int
	// CanPlaceAt reports whether the room may be placed with its top-left
	// corner at (y,x). It must not mutate the grid. The engine only calls
	// it at offsets whose footprint lies fully inside the grid.
	CanPlaceAt(g *world.Grid, y, x int) bool
	// PlaceAt writes the room into the grid at (y,x). It may draw from
	// src, e.g. to pick which valid door to open. The engine only calls
	// it at offsets that passed CanPlaceAt, or on the force-placed first
	// room of a run.
	PlaceAt(src rng.Source, g *world.Grid, y, x int)
}

// RoomGen produces a freshly randomized Room. Size randomization is
// deferred to generation time so one generator can yield rooms of many
// sizes across a run.
type RoomGen func(src rng.Source) Room

// Dir is a unit step on the grid.
type Dir struct {
	DY, DX int
}

// The four cardinal directions. For a perimeter cell, the outward normal
// of its edge is one of these.
var (
	North = Dir{DY: -1, DX: 0}
	South = Dir{DY: 1, DX: 0}
	West  = Dir{DY: 0, DX: -1}
	East  = Dir{DY: 0, DX: 1}
)
