package maze

import (
	"errors"
	"testing"
)

func TestGenerate(t *testing.T) {
	m, err := Generate(8, 5, 42)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width() != 17 || m.Height() != 11 {
		t.Fatalf("size = %dx%d, want 17x11", m.Width(), m.Height())
	}
	if m.Start() != (Point{1, 1}) || m.Goal() != (Point{9, 15}) {
		t.Errorf("start/goal = %v/%v", m.Start(), m.Goal())
	}

	for c := 0; c < m.Width(); c++ {
		if !m.Wall(Point{0, c}) || !m.Wall(Point{m.Height() - 1, c}) {
			t.Fatalf("border open at column %d", c)
		}
	}
	for r := 0; r < m.Height(); r++ {
		if !m.Wall(Point{r, 0}) || !m.Wall(Point{r, m.Width() - 1}) {
			t.Fatalf("border open at row %d", r)
		}
	}
}

func TestGeneratePerfect(t *testing.T) {
	const cols, rows = 10, 7
	m, err := Generate(cols, rows, 7)
	if err != nil {
		t.Fatal(err)
	}

	// A spanning tree over cols*rows cells opens exactly cols*rows-1
	// connecting walls, so every open cell is reachable without loops.
	open := m.OpenCells()
	if want := cols*rows + cols*rows - 1; len(open) != want {
		t.Errorf("open cells = %d, want %d", len(open), want)
	}

	seen := map[Point]bool{m.Start(): true}
	queue := []Point{m.Start()}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, s := range m.Neighbors(p) {
			if !seen[s.State] {
				seen[s.State] = true
				queue = append(queue, s.State)
			}
		}
	}
	if len(seen) != len(open) {
		t.Errorf("reachable = %d, open = %d", len(seen), len(open))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := Generate(12, 12, 99)
	b, _ := Generate(12, 12, 99)
	c, _ := Generate(12, 12, 100)
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
	if a.String() == c.String() {
		t.Error("different seeds produced the same maze")
	}
}

func TestGenerateRejectsBadSizes(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 1}, {MaxGenerateCells + 1, 1}} {
		if _, err := Generate(dims[0], dims[1], 1); !errors.Is(err, ErrInvalid) {
			t.Errorf("Generate(%d, %d) error = %v, want ErrInvalid", dims[0], dims[1], err)
		}
	}
}

func TestGenerateSingleCell(t *testing.T) {
	m, err := Generate(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Start() != m.Goal() {
		t.Errorf("1x1 maze start %v != goal %v", m.Start(), m.Goal())
	}
}
