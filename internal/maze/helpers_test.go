package maze

import (
	"bytes"

	"github.com/zyedidia/generic/mapset"
)

type point struct {
	x, y int
}

func fixedSeed(seed int64) SeedSource {
	return func() int64 { return seed }
}

func newTestGenerator(out *bytes.Buffer, opts ...Option) *Generator {
	return NewGenerator(append([]Option{WithOutput(out)}, opts...)...)
}

// reachable flood-fills passages from (x, y) and returns the visited set.
func reachable(m Maze, x, y int) mapset.Set[point] {
	visited := mapset.New[point]()
	if m.At(y, x) != Passage {
		return visited
	}

	queue := []point{{x, y}}
	visited.Put(queue[0])
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range []point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			next := point{curr.x + d.x, curr.y + d.y}
			if m.At(next.y, next.x) == Passage && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited
}

func countPassages(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c == Passage {
			n++
		}
	}
	return n
}
