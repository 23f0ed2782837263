package maze

import "strings"

// DefaultName is the name of a maze that has never been saved.
const DefaultName = "Unnamed"

// Maze is a rectangular grid of walls and passages.
// Grid is row-major: Grid[row][col]. An empty Grid means no maze is loaded.
type Maze struct {
	Width  int
	Height int
	Grid   [][]Cell
	Name   string
}

// New returns an empty maze with zero dimensions.
func New() Maze {
	return Maze{Name: DefaultName}
}

// NewSized returns a maze with the given dimensions and an empty grid.
func NewSized(width, height int) Maze {
	return Maze{Width: width, Height: height, Name: DefaultName}
}

// filled returns a maze of the given dimensions with every cell set to Wall.
func filled(width, height int) Maze {
	m := NewSized(width, height)
	m.Grid = make([][]Cell, height)
	for y := range m.Grid {
		m.Grid[y] = make([]Cell, width)
		for x := range m.Grid[y] {
			m.Grid[y][x] = Wall
		}
	}
	return m
}

// IsEmpty reports whether the maze has no grid.
func (m Maze) IsEmpty() bool {
	return len(m.Grid) == 0
}

// At returns the cell at the given position. Out of range positions are walls.
func (m Maze) At(row, col int) Cell {
	if row < 0 || row >= len(m.Grid) || col < 0 || col >= len(m.Grid[row]) {
		return Wall
	}
	return m.Grid[row][col]
}

// Clone returns a deep copy of the maze.
func (m Maze) Clone() Maze {
	c := m
	if m.Grid != nil {
		c.Grid = make([][]Cell, len(m.Grid))
		for y, row := range m.Grid {
			c.Grid[y] = append([]Cell(nil), row...)
		}
	}
	return c
}

// String returns the grid, one line per row, cells concatenated without separators.
func (m Maze) String() string {
	var b strings.Builder
	b.Grow(len(m.Grid) * (m.Width + 1))
	for _, row := range m.Grid {
		for _, c := range row {
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
