// Package maze models a 2D grid maze as a search problem.
//
// A [Maze] is read from a small text format:
//
//	#####B#
//	##### #
//	####  #
//	#### ##
//	     ##
//	A######
//
// 'A' is the start, 'B' the goal, ' ' an open cell; everything else is a
// wall. Moves are up, down, left and right with unit cost, reported by
// [Maze.Neighbors] in that order so that searches are deterministic.
//
// Maze implements search.Problem[Point, Action]:
//
//	m, err := maze.Load("maze1.txt")
//	if err != nil {
//	    return err
//	}
//	h, _ := m.Heuristic(maze.HeuristicManhattan)
//	res, err := search.Solve[maze.Point, maze.Action](m, search.AStar, h)
//
// [Generate] produces random perfect mazes for experiments.
package maze
