package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonpath/internal/world"
)

// PathRune is the overlay glyph drawn on cells the solved route crosses.
const PathRune = '*'

// Renderer handles drawing a dungeon and its solved route to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon with the route overlaid. Route cells are marked
// with PathRune except where they coincide with the start, exit, or a key,
// which stay visible underneath.
func (r *Renderer) Render(dungeon *world.Dungeon, route []world.Cell) {
	r.screen.Clear()

	onRoute := make(map[world.Cell]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}

	for row := 0; row < dungeon.Rows; row++ {
		for col := 0; col < dungeon.Cols; col++ {
			tile := dungeon.At(row, col)
			ch := tile.Rune()
			style := r.tileStyle(tile)
			if onRoute[world.Cell{Row: row, Col: col}] && tile == world.TileFloor {
				ch = PathRune
				style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			}
			r.screen.SetContent(col, row, ch, style)
		}
	}

	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch {
	case tile == world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case tile == world.TileStart:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case tile == world.TileExit:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case tile.IsKey():
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case tile.IsDoor():
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// RenderMessage displays a message on the given screen row, clearing the
// remainder of the line.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', style)
	}
	r.screen.Show()
}
