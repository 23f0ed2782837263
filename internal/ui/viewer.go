package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/maze"
)

// Viewer shows a maze full screen until the user closes it.
type Viewer struct {
	newScreen func() (*Screen, error)
}

// NewViewer returns a viewer on the terminal.
func NewViewer() *Viewer {
	return &Viewer{newScreen: NewScreen}
}

// NewViewerWith returns a viewer that draws on screens made by newScreen.
func NewViewerWith(newScreen func() (*Screen, error)) *Viewer {
	return &Viewer{newScreen: newScreen}
}

// View draws m and blocks until q, Esc or Ctrl-C is pressed, or ctx is done.
func (v *Viewer) View(ctx context.Context, m maze.Maze) error {
	if m.IsEmpty() {
		return maze.ErrNoMaze
	}

	screen, err := v.newScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	stop := context.AfterFunc(ctx, screen.Interrupt)
	defer stop()

	renderer := NewRenderer(screen)
	for {
		renderer.Render(m)

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		}
	}
	return false
}
