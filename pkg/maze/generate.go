package maze

import (
	"fmt"
	"math/rand"
)

// MaxGenerateCells bounds each dimension accepted by Generate.
const MaxGenerateCells = 500

// Generate builds a perfect maze (exactly one path between any two open
// cells) by randomized depth-first carving.
//
// cols and rows count corridor cells; the resulting grid is (2*rows+1) by
// (2*cols+1) including the surrounding wall. The start is the top-left
// corridor cell and the goal the bottom-right one. The same seed always
// produces the same maze.
func Generate(cols, rows int, seed int64) (*Maze, error) {
	if cols < 1 || rows < 1 || cols > MaxGenerateCells || rows > MaxGenerateCells {
		return nil, fmt.Errorf("%w: dimensions %dx%d out of range 1..%d", ErrInvalid, cols, rows, MaxGenerateCells)
	}

	height, width := 2*rows+1, 2*cols+1
	walls := make([][]bool, height)
	for r := range walls {
		walls[r] = make([]bool, width)
		for c := range walls[r] {
			walls[r][c] = true
		}
	}

	rng := rand.New(rand.NewSource(seed))
	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, cols)
	}

	type cell struct{ r, c int }
	stack := []cell{{0, 0}}
	visited[0][0] = true
	walls[1][1] = false

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []cell
		for _, a := range Actions {
			d := a.Delta()
			next := cell{cur.r + d.Row, cur.c + d.Col}
			if next.r >= 0 && next.r < rows && next.c >= 0 && next.c < cols && !visited[next.r][next.c] {
				options = append(options, next)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := options[rng.Intn(len(options))]
		visited[next.r][next.c] = true
		// Open the target cell and the wall between it and cur.
		walls[2*next.r+1][2*next.c+1] = false
		walls[cur.r+next.r+1][cur.c+next.c+1] = false
		stack = append(stack, next)
	}

	start := Point{Row: 1, Col: 1}
	goal := Point{Row: height - 2, Col: width - 2}
	return New(walls, start, goal)
}
