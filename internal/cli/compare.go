package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		heuristic string
		algsStr   string
	)

	cmd := &cobra.Command{
		Use:   "compare [maze.txt]",
		Short: "Run every search strategy on a maze side by side",
		Long: `Run several search strategies on the same maze and compare them.

The table shows, for each algorithm, whether it reached the goal, the length
and cost of its path, how many cells it expanded, how many nodes it removed
from the frontier and how long it took. Searches run concurrently and skip
the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algs, err := parseAlgorithms(algsStr)
			if err != nil {
				return err
			}
			opts := c.baseOptions()
			if cmd.Flags().Changed("heuristic") {
				opts.Heuristic = heuristic
			}
			return c.runCompare(cmd.Context(), args[0], opts, algs)
		},
	}

	cmd.Flags().StringVar(&heuristic, "heuristic", "", "heuristic for greedy and astar: manhattan, euclidean, zero")
	cmd.Flags().StringVar(&algsStr, "algorithms", "", "algorithms to compare (comma-separated, default: all)")

	return cmd
}

// parseAlgorithms parses a comma-separated algorithm list. An empty string
// means every algorithm.
func parseAlgorithms(s string) ([]search.Algorithm, error) {
	if strings.TrimSpace(s) == "" {
		return search.Algorithms, nil
	}
	var algs []search.Algorithm
	for _, name := range strings.Split(s, ",") {
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidAlgorithm, err, "invalid algorithm")
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

func (c *CLI) runCompare(ctx context.Context, input string, opts pipeline.Options, algs []search.Algorithm) error {
	text, err := readMaze(input)
	if err != nil {
		return err
	}
	opts.Maze = text
	opts.Source = input

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %d searches...", len(algs)))
	spinner.Start()
	results, err := runner.Compare(ctx, opts, algs)
	if err != nil {
		spinner.StopWithError("Compare failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Compared %d algorithms", len(results)), "maze", input)

	fmt.Fprintln(stdout, compareTable(results))
	return nil
}

// compareTable lays the runs out as a lipgloss table, one row per algorithm.
func compareTable(results []pipeline.Comparison) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rep := r.Report
		found, length, cost := "no", "—", "—"
		if rep.Found {
			found = "yes"
			length = strconv.Itoa(rep.Len())
			cost = strconv.FormatFloat(rep.Cost, 'g', -1, 64)
		}
		heuristic := rep.Heuristic
		if heuristic == "" {
			heuristic = "—"
		}
		rows[i] = []string{
			string(r.Algorithm),
			heuristic,
			found,
			length,
			cost,
			strconv.Itoa(len(rep.Explored)),
			strconv.Itoa(rep.Removed),
			r.Duration.Round(time.Microsecond).String(),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Heuristic", "Found", "Path", "Cost", "Explored", "Removed", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				if results[row].Report.Found {
					return cellStyle.Foreground(colorGreen)
				}
				return cellStyle.Foreground(colorRed)
			}
			if col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})

	return t.Render()
}
