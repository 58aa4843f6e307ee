package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcarver/internal/world"
)

// Renderer draws generated levels to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the level's tiles plus a status line underneath.
func (r *Renderer) Render(level *world.Level) {
	r.screen.Clear()

	for y := 0; y < level.Height(); y++ {
		for x := 0; x < level.Width(); x++ {
			tile := level.TileAt(y, x)
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile))
		}
	}

	status := fmt.Sprintf("seed %d | %d rooms | r: reroll  q: quit",
		level.Seed(), level.RoomsPlaced())
	r.renderLine(status, level.Height()+1)

	r.screen.Show()
}

// tileStyle returns the display style for a tile kind.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case world.TileStart:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case world.TileEnd:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// renderLine writes a single line of text at the given row.
func (r *Renderer) renderLine(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
