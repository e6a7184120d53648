package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
)

// solveFlags holds the flags shared by commands that run a search.
type solveFlags struct {
	algorithm string
	heuristic string
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "search algorithm: dfs, bfs, greedy, astar (default from config: astar)")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "heuristic for greedy and astar: manhattan, euclidean, zero")
}

// apply overrides opts with the flags the user actually set.
func (f *solveFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("algorithm") {
		opts.Algorithm = f.algorithm
	}
	if cmd.Flags().Changed("heuristic") {
		opts.Heuristic = f.heuristic
	}
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		search       solveFlags
		formatsStr   string
		output       string
		noCache      bool
		refresh      bool
		explored     bool
		labels       bool
		hideSolution bool
		color        bool
		cellSize     int
	)

	cmd := &cobra.Command{
		Use:   "solve [maze.txt]",
		Short: "Find a path through a maze",
		Long: `Find a path from A to B through a text maze.

Each line of the file is one row: 'A' is the start, 'B' the goal, ' ' an open
cell and any other character a wall. Use "-" to read the maze from stdin.

Text output goes to stdout; png, svg, dot and json are written to files
named after the input (or --output). Results are cached locally, so solving
the same maze again is instant.

The command exits with status 1 when the goal cannot be reached; the
rendered output still shows what was explored.`,
		Example: `  mazesearch solve maze.txt
  mazesearch solve maze.txt -a bfs --explored
  mazesearch solve maze.txt -a greedy --heuristic euclidean -f txt,png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			search.apply(cmd, &opts)
			opts.Formats = parseFormats(formatsStr, opts.Formats)
			opts.Refresh = refresh
			opts.HideSolution = hideSolution
			if cmd.Flags().Changed("explored") {
				opts.Explored = explored
			}
			if cmd.Flags().Changed("heuristic-labels") {
				opts.HeuristicLabels = labels
			}
			if cmd.Flags().Changed("cell-size") {
				opts.CellSize = cellSize
			}
			if cmd.Flags().Changed("color") {
				opts.Color = color
			} else if output != "" || !isTerminal(stdout) {
				opts.Color = false
			}
			return c.runSolve(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	search.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): txt, png, svg, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results and solve again")
	cmd.Flags().BoolVar(&explored, "explored", false, "mark the cells the search expanded")
	cmd.Flags().BoolVar(&labels, "heuristic-labels", false, "label open cells with their heuristic value (png, svg, dot)")
	cmd.Flags().BoolVar(&hideSolution, "hide-solution", false, "do not draw the solution path")
	cmd.Flags().BoolVar(&color, "color", false, "colored text output (default: on for terminals)")
	cmd.Flags().IntVar(&cellSize, "cell-size", 0, "png cell size in pixels")

	return cmd
}

// runSolve loads the maze, runs the pipeline, and writes the outputs.
func (c *CLI) runSolve(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	text, err := readMaze(input)
	if err != nil {
		return err
	}
	opts.Maze = text
	opts.Source = input
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving with %s...", opts.Algorithm))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	noSolution := errs.Is(err, errs.ErrCodeNoSolution)
	if err != nil && !noSolution {
		spinner.StopWithError("Search failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	written, werr := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.RenderFormats(),
		input:     input,
		output:    output,
	})
	if werr != nil {
		return werr
	}

	rep := result.Report
	if noSolution {
		printError("No path from %s to %s", rep.Start, rep.Goal)
	} else {
		printSuccess("Found a path with %s (cost %g)", rep.Algorithm, rep.Cost)
	}
	for _, path := range written {
		printFile(path)
	}
	printStats(rep.Len(), len(rep.Explored), result.Stats.SolveTime, result.CacheInfo.SolveHit)

	return err
}
