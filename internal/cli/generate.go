package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/maze"
)

// generateCommand creates the generate command for random perfect mazes.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		width  int
		height int
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random maze",
		Long: `Generate a random perfect maze: every open cell is reachable and there is
exactly one path between any two of them.

--width and --height count corridor cells, so the text grid is
(2*height+1) rows by (2*width+1) columns. The same --seed always produces
the same maze; without it the seed is taken from the clock and logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidateDimensions(width, height, maze.MaxGenerateCells); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			m, err := maze.Generate(width, height, seed)
			if err != nil {
				return err
			}
			c.Logger.Debug("generated maze", "width", m.Width(), "height", m.Height(), "seed", seed)

			if err := writeOutput(output, []byte(m.String())); err != nil {
				return fmt.Errorf("write maze: %w", err)
			}
			if output != "" && output != "-" {
				printSuccess("Generated %dx%d maze (seed %d)", m.Width(), m.Height(), seed)
				printFile(output)
				printNewline()
				printNextStep("Solve it", appName+" solve "+output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 10, "corridor cells per row")
	cmd.Flags().IntVar(&height, "height", 10, "corridor cells per column")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
