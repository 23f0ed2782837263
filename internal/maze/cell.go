// Package maze provides recursive-backtracker maze generation, text rendering
// and a binary on-disk format.
package maze

// Cell represents a single grid cell. Its value is the byte used both for
// display and for the on-disk grid.
type Cell byte

const (
	// Wall blocks movement.
	Wall Cell = '#'
	// Passage allows movement.
	Passage Cell = ' '
)

// IsPassage returns true if the cell can be walked on.
func (c Cell) IsPassage() bool {
	return c == Passage
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}
