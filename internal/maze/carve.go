package maze

import "math/rand"

// step is a stride-2 move between lattice cells.
type step struct {
	dx, dy int
}

// Up, down, left, right. Moving two cells keeps a wall between parallel passages.
var steps = [4]step{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// frame is one level of the depth-first carve. order is the shuffled
// direction order for the cell and next is the index of the next one to try.
type frame struct {
	x, y  int
	order [4]int
	next  int
}

// carve runs a randomized depth-first carve from (x, y). It visits cells in
// the same order as the recursive formulation but keeps its own stack, so
// large mazes do not grow the goroutine stack.
func carve(m *Maze, x, y int, rng *rand.Rand) {
	stack := []frame{enter(m, x, y, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}

		s := steps[top.order[top.next]]
		top.next++

		nx, ny := top.x+s.dx, top.y+s.dy
		if interior(nx, m.Width) && interior(ny, m.Height) && m.Grid[ny][nx] == Wall {
			m.Grid[top.y+s.dy/2][top.x+s.dx/2] = Passage
			stack = append(stack, enter(m, nx, ny, rng))
		}
	}
}

// enter shuffles a fresh direction order for (x, y) and opens the cell.
func enter(m *Maze, x, y int, rng *rand.Rand) frame {
	f := frame{x: x, y: y, order: [4]int{0, 1, 2, 3}}
	rng.Shuffle(len(f.order), func(i, j int) {
		f.order[i], f.order[j] = f.order[j], f.order[i]
	})
	m.Grid[y][x] = Passage
	return f
}

// interior reports whether v lies strictly inside a border of the given size.
func interior(v, size int) bool {
	return v > 0 && v < size-1
}

// openEntranceAndExit opens the first passage found in row 1 through the top
// border, then opens a random passage of the second-to-last row through the
// bottom border. Both scans use odd columns only.
func openEntranceAndExit(m *Maze, rng *rand.Rand) {
	if m.Height < 2 {
		return
	}

	for x := 1; x < m.Width; x += 2 {
		if m.Grid[1][x] == Passage {
			m.Grid[0][x] = Passage
			break
		}
	}

	var exits []int
	for x := 1; x < m.Width; x += 2 {
		if m.Grid[m.Height-2][x] == Passage {
			exits = append(exits, x)
		}
	}
	if len(exits) == 0 {
		return
	}
	m.Grid[m.Height-1][exits[rng.Intn(len(exits))]] = Passage
}
