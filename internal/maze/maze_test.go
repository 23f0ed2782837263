package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMaze(t *testing.T) {
	m := New()
	assert.Zero(t, m.Width)
	assert.Zero(t, m.Height)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, "Unnamed", m.Name)

	sized := NewSized(11, 9)
	assert.Equal(t, 11, sized.Width)
	assert.Equal(t, 9, sized.Height)
	assert.True(t, sized.IsEmpty(), "caller fills the grid")
}

func TestMazeAt(t *testing.T) {
	m := filled(3, 3)
	m.Grid[1][2] = Passage

	assert.Equal(t, Passage, m.At(1, 2))
	assert.Equal(t, Wall, m.At(0, 0))
	assert.Equal(t, Wall, m.At(-1, 0))
	assert.Equal(t, Wall, m.At(1, 3))
	assert.Equal(t, Wall, New().At(0, 0))
}

func TestMazeCloneIsDeep(t *testing.T) {
	m := filled(3, 3)
	c := m.Clone()
	c.Grid[1][1] = Passage

	assert.Equal(t, Wall, m.Grid[1][1])
	assert.True(t, New().Clone().IsEmpty())
}

func TestMazeString(t *testing.T) {
	m := filled(3, 2)
	m.Grid[1][1] = Passage
	assert.Equal(t, "###\n# #\n", m.String())
}

func TestCell(t *testing.T) {
	assert.True(t, Passage.IsPassage())
	assert.False(t, Wall.IsPassage())
	assert.Equal(t, '#', Wall.Rune())
	assert.Equal(t, ' ', Passage.Rune())
}
