package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/roomcarver/internal/rng"
	"github.com/samdwyer/roomcarver/internal/world"
)

// Blueprint character set. Space is a placeholder for irregular
// silhouettes and never touches the grid.
const (
	bpWall   = '#'
	bpFloor  = '.'
	bpDoor   = '+' // internal door, placed unconditionally
	bpNorth  = 'N' // external doorway opening north
	bpSouth  = 'S'
	bpEast   = 'E'
	bpWest   = 'W'
	bpIgnore = ' '
)

// ErrEmptyBlueprint is returned for a blueprint with no rows or columns.
var ErrEmptyBlueprint = errors.New("generation: blueprint has no cells")

// TemplateRoom is a hand-authored room parsed from an ASCII blueprint.
// External doorway cells (N/S/E/W) must connect to existing floor,
// directly or through a corridor of up to maxHallway cells; doorways that
// cannot connect are sealed with wall at placement time. A parsed
// template is immutable and may be placed any number of times.
type TemplateRoom struct {
	rows       []string
	h, w       int
	maxHallway int
}

// ParseTemplate parses a multi-line blueprint. Every line must have the
// same length; the line count is the room height. Unknown characters and
// ragged or empty blueprints are configuration errors.
func ParseTemplate(blueprint string, maxHallway int) (*TemplateRoom, error) {
	blueprint = strings.Trim(blueprint, "\n")
	rows := strings.Split(blueprint, "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBlueprint
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("generation: blueprint row %d has %d cells, want %d", i, len(row), w)
		}
		for j, ch := range row {
			switch ch {
			case bpWall, bpFloor, bpDoor, bpNorth, bpSouth, bpEast, bpWest, bpIgnore:
			default:
				return nil, fmt.Errorf("generation: blueprint row %d col %d: unknown character %q", i, j, ch)
			}
		}
	}
	return &TemplateRoom{rows: rows, h: len(rows), w: w, maxHallway: maxHallway}, nil
}

// MustParseTemplate parses a blueprint, panicking on error. Use for
// compiled-in templates that must be well-formed for the program to run.
func MustParseTemplate(blueprint string, maxHallway int) *TemplateRoom {
	t, err := ParseTemplate(blueprint, maxHallway)
	if err != nil {
		panic(err)
	}
	return t
}

// Height returns the blueprint height.
func (t *TemplateRoom) Height() int { return t.h }

// Width returns the blueprint width.
func (t *TemplateRoom) Width() int { return t.w }

// doorDir maps an external doorway character to its outward direction.
func doorDir(ch byte) (Dir, bool) {
	switch ch {
	case bpNorth:
		return North, true
	case bpSouth:
		return South, true
	case bpEast:
		return East, true
	case bpWest:
		return West, true
	}
	return Dir{}, false
}

// CanPlaceAt reports whether no blueprint cell lands on existing walkable
// ground and at least one external doorway can connect to existing floor.
func (t *TemplateRoom) CanPlaceAt(g *world.Grid, y, x int) bool {
	connects := false
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			ch := t.rows[i][j]
			if ch == bpIgnore {
				continue
			}
			if g.IsWalkable(y+i, x+j) {
				return false
			}
			if dir, ok := doorDir(ch); ok && connectorValid(g, y+i, x+j, dir, t.maxHallway) {
				connects = true
			}
		}
	}
	return connects
}

// PlaceAt stamps the blueprint in two passes. Pass one resolves every
// external doorway against the grid as it stood before this call: a
// doorway that connects becomes a door (carving its corridor first), one
// that cannot is sealed with wall so the room has no gap. Pass two stamps
// walls, floors, and internal doors. Resolving doorways before laying any
// floor keeps the room from validating its doors against itself.
func (t *TemplateRoom) PlaceAt(_ rng.Source, g *world.Grid, y, x int) {
	// Judge every doorway against the pre-placement grid before writing
	// anything, so one doorway's fresh corridor cannot validate another.
	var doors, sealed []connector
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			dir, ok := doorDir(t.rows[i][j])
			if !ok {
				continue
			}
			c := connector{y: y + i, x: x + j, dir: dir}
			if !connectorValid(g, c.y, c.x, dir, t.maxHallway) {
				sealed = append(sealed, c)
				continue
			}
			if t.maxHallway > 0 {
				c.length = hallrayLength(g, c.y, c.x, dir)
			}
			doors = append(doors, c)
		}
	}
	for _, c := range sealed {
		g.Set(c.y, c.x, world.TileWall)
	}
	for _, c := range doors {
		if c.length > 0 {
			placeHallray(g, c.y, c.x, c.dir, c.length)
		}
		g.Set(c.y, c.x, world.TileDoor)
	}

	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			cy, cx := y+i, x+j
			switch t.rows[i][j] {
			case bpWall:
				g.Set(cy, cx, world.TileWall)
			case bpFloor:
				g.Set(cy, cx, world.TileFloor)
			case bpDoor:
				g.Set(cy, cx, world.TileDoor)
			}
		}
	}
}

// Blueprint returns a RoomGen that always yields this template.
func Blueprint(t *TemplateRoom) RoomGen {
	return func(rng.Source) Room { return t }
}
