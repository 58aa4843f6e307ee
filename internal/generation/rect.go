package generation

import (
	"github.com/samdwyer/roomcarver/internal/geom"
	"github.com/samdwyer/roomcarver/internal/rng"
	"github.com/samdwyer/roomcarver/internal/world"
)

// RectRoom is a rectangular room: a wall border, an open interior, and a
// single door opened toward floor that already exists. With maxHallway
// set, the door may instead reach existing floor through a straight
// corridor of up to maxHallway cells.
type RectRoom struct {
	h, w       int
	maxHallway int
}

// NewRectRoom creates a rectangular room with the given footprint.
// Footprints smaller than 3x3 have no interior. maxHallway of zero means
// the door must touch existing floor directly.
func NewRectRoom(h, w, maxHallway int) *RectRoom {
	return &RectRoom{h: h, w: w, maxHallway: maxHallway}
}

// Height returns the footprint height.
func (r *RectRoom) Height() int { return r.h }

// Width returns the footprint width.
func (r *RectRoom) Width() int { return r.w }

// connector is a candidate doorway: a non-corner perimeter cell, the
// outward normal of its edge, and the corridor length needed to reach
// existing floor (zero when the cell touches floor directly).
type connector struct {
	y, x   int
	dir    Dir
	length int
}

// outwardNormal returns the direction pointing away from the room for a
// non-corner perimeter cell of bounds.
func outwardNormal(bounds geom.Rect, y, x int) Dir {
	switch {
	case y == bounds.Y:
		return North
	case y == bounds.Y+bounds.H-1:
		return South
	case x == bounds.X:
		return West
	default:
		return East
	}
}

// connectors returns every valid doorway for the room placed at (y,x).
func (r *RectRoom) connectors(g *world.Grid, y, x int) []connector {
	bounds := geom.Rect{Y: y, X: x, H: r.h, W: r.w}
	var cands []connector
	for _, p := range bounds.PerimeterCoords(1) {
		dir := outwardNormal(bounds, p.Y, p.X)
		if !connectorValid(g, p.Y, p.X, dir, r.maxHallway) {
			continue
		}
		length := 0
		if r.maxHallway > 0 {
			length = hallrayLength(g, p.Y, p.X, dir)
		}
		cands = append(cands, connector{y: p.Y, x: p.X, dir: dir, length: length})
	}
	return cands
}

// CanPlaceAt reports whether the room's footprint overlaps no walkable
// cell and at least one doorway can connect to existing floor.
func (r *RectRoom) CanPlaceAt(g *world.Grid, y, x int) bool {
	bounds := geom.Rect{Y: y, X: x, H: r.h, W: r.w}
	for _, p := range bounds.AreaCoords() {
		if g.IsWalkable(p.Y, p.X) {
			return false
		}
	}
	return len(r.connectors(g, y, x)) > 0
}

// PlaceAt writes the room: border walls, one door chosen uniformly among
// the valid connectors (plus its corridor when one is needed), then the
// interior floor. A force-placed room on an empty grid finds no valid
// connector and comes out doorless.
func (r *RectRoom) PlaceAt(src rng.Source, g *world.Grid, y, x int) {
	bounds := geom.Rect{Y: y, X: x, H: r.h, W: r.w}
	cands := r.connectors(g, y, x)

	for _, p := range bounds.PerimeterCoords(0) {
		g.Set(p.Y, p.X, world.TileWall)
	}
	if len(cands) > 0 {
		c := cands[rng.Intn(src, len(cands))]
		if c.length > 0 {
			placeHallray(g, c.y, c.x, c.dir, c.length)
		}
		g.Set(c.y, c.x, world.TileDoor)
	}
	for _, p := range bounds.Enlarge(-2, -2).AreaCoords() {
		g.Set(p.Y, p.X, world.TileFloor)
	}
}

// RandomRect returns a RoomGen producing rectangular rooms with height in
// [minH,maxH] and width in [minW,maxW].
func RandomRect(minH, maxH, minW, maxW, maxHallway int) RoomGen {
	return func(src rng.Source) Room {
		h := rng.Between(src, minH, maxH)
		w := rng.Between(src, minW, maxW)
		return NewRectRoom(h, w, maxHallway)
	}
}
