// Package pkg provides the core libraries for mazesearch.
//
// # Overview
//
// Mazesearch finds a path through a grid maze with one of four classic
// search strategies and shows how each of them explores the maze. All four
// share one engine; they differ only in the order their frontier hands out
// nodes. The pkg directory is organized into three main areas:
//
//  1. [search] - The generic engine and its frontier policies
//  2. [maze], [report], [render] - The maze domain and its outputs
//  3. [pipeline], [cache], [store], [server] - Orchestration and serving
//
// # Architecture
//
// The typical data flow:
//
//	Maze text (file, stdin, API request)
//	         ↓
//	    [maze] package (parse and validate the grid)
//	         ↓
//	    [search] package (DFS, BFS, greedy best-first or A*)
//	         ↓
//	    [report] package (path, explored cells, counters)
//	         ↓
//	    [render] package (txt, png, svg, dot, json)
//
// # Quick Start
//
// Solve a maze and print it with the path drawn in:
//
//	import (
//	    "github.com/matzehuels/mazesearch/pkg/maze"
//	    "github.com/matzehuels/mazesearch/pkg/render"
//	    "github.com/matzehuels/mazesearch/pkg/report"
//	    "github.com/matzehuels/mazesearch/pkg/search"
//	)
//
//	// 1. Parse the maze
//	m, _ := maze.ParseString("A  #\n#  B\n")
//
//	// 2. Run A* with the Manhattan distance
//	h, _ := m.Heuristic("manhattan")
//	res, err := search.Solve[maze.Point, maze.Action](m, search.AStar, h)
//
//	// 3. Convert and render
//	rep := report.FromResult(m, res, "manhattan")
//	txt, _ := render.Text(rep)
//
// The [pipeline] package wraps these steps with validation, caching and
// error codes, and is what the CLI and the HTTP API use.
//
// # Main Packages
//
// ## Engine
//
// [search] - Generic best-first search over any [search.Problem]. A
// [search.Searcher] removes one node per step so callers can watch the
// search unfold; [search.Solve] runs it to completion. The frontier is a
// stack, a queue or a priority queue keyed by h(n) or g(n)+h(n).
//
// ## Maze Domain
//
// [maze] - Grid mazes: the text format, moves, heuristics (Manhattan,
// Euclidean, zero) and a seeded generator of perfect mazes.
//
// [report] - The serializable outcome of one run.
//
// [render] - Text, PNG, Graphviz DOT and SVG renderings of a report.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching of reports and renderings. File
// backend for the CLI, Redis for the server, null cache for tests.
//
// [store] - Saved runs for the HTTP API. Memory, file and MongoDB backends.
//
// [config] - The TOML configuration file.
//
// [errors] - Coded errors shared by the CLI and the API.
//
// [observability] - Hooks for metrics and tracing.
//
// ## Serving
//
// [server] - The JSON HTTP API.
//
// [search]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/search
// [search.Problem]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/search#Problem
// [search.Searcher]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/search#Searcher
// [search.Solve]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/search#Solve
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/maze
// [report]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/report
// [render]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/mazesearch/pkg/server
package pkg
