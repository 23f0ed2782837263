package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/maze"
)

// Renderer handles drawing a maze to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the maze centred on the screen with a caption under it.
// Mazes larger than the screen are pinned to the top-left and clipped.
func (r *Renderer) Render(m maze.Maze) {
	r.screen.Clear()

	left, top := r.origin(m)
	for y, row := range m.Grid {
		for x, cell := range row {
			r.screen.SetContent(left+x, top+y, cell.Rune(), r.getCellStyle(cell))
		}
	}

	r.RenderMessage(fmt.Sprintf("Viewing '%s' maze! Press q to close.", m.Name), left, top+len(m.Grid)+1)

	r.screen.Show()
}

// origin returns the top-left screen position of the maze. The caption and
// its blank spacer row count toward the height being centred.
func (r *Renderer) origin(m maze.Maze) (int, int) {
	w, h := r.screen.Size()
	left := max(0, (w-m.Width)/2)
	top := max(0, (h-(len(m.Grid)+2))/2)
	return left, top
}

// getCellStyle returns the appropriate style for a cell.
func (r *Renderer) getCellStyle(cell maze.Cell) tcell.Style {
	switch cell {
	case maze.Wall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case maze.Passage:
		return tcell.StyleDefault
	default:
		// Loaded files are not validated; show foreign bytes in red.
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

// RenderMessage displays a message starting at column x of row y.
func (r *Renderer) RenderMessage(msg string, x, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
