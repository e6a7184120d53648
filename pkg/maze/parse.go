package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	startRune = 'A'
	goalRune  = 'B'
	openRune  = ' '
	wallRune  = '#'
)

// Parse reads a maze in text form.
//
// Each line is one row. 'A' marks the start, 'B' the goal and ' ' an open
// cell; any other character is a wall. Lines shorter than the widest line are
// padded with open cells. The input must contain exactly one 'A' and exactly
// one 'B'. Trailing blank lines are ignored and CRLF line endings accepted.
func Parse(r io.Reader) (*Maze, error) {
	var lines [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrInvalid, len(lines)+1)
		}
		lines = append(lines, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalid)
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	walls := make([][]bool, len(lines))
	var starts, goals int
	var start, goal Point
	for r, line := range lines {
		row := make([]bool, width)
		for c, ch := range line {
			switch ch {
			case startRune:
				starts++
				start = Point{Row: r, Col: c}
			case goalRune:
				goals++
				goal = Point{Row: r, Col: c}
			case openRune:
			default:
				row[c] = true
			}
		}
		walls[r] = row
	}

	if starts != 1 {
		return nil, fmt.Errorf("%w: must have exactly one start point (found %d)", ErrInvalid, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: must have exactly one goal (found %d)", ErrInvalid, goals)
	}
	return New(walls, start, goal)
}

// ParseString parses a maze held in memory.
func ParseString(s string) (*Maze, error) {
	return Parse(strings.NewReader(s))
}

// Load reads and parses the maze file at path.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
