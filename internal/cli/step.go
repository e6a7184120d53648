package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
	"github.com/matzehuels/mazesearch/pkg/search"
)

const defaultStepInterval = 150 * time.Millisecond

// Grid styles
var (
	cellWallStyle     = lipgloss.NewStyle().Foreground(colorDim)
	cellEndpointStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cellPathStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	cellExploredStyle = lipgloss.NewStyle().Foreground(colorGray)
	cellFrontierStyle = lipgloss.NewStyle().Foreground(colorYellow)
	cellCurrentStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// stepCommand creates the step command.
func (c *CLI) stepCommand() *cobra.Command {
	var (
		flags    solveFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "step [maze.txt]",
		Short: "Watch a search explore a maze one node at a time",
		Long: `Open an interactive view that runs the search one frontier removal at a
time. Explored cells, the frontier and the node just removed are drawn on
the maze; once the goal is reached the path is shown.

Keys: space/n step, p play or pause, e run to the end, r restart, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			flags.apply(cmd, &opts)
			return c.runStep(cmd.Context(), args[0], opts, interval)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", defaultStepInterval, "delay between steps while playing")

	return cmd
}

func (c *CLI) runStep(ctx context.Context, input string, opts pipeline.Options, interval time.Duration) error {
	text, err := readMaze(input)
	if err != nil {
		return err
	}
	opts.Maze = text
	opts.Source = input
	if err := opts.ValidateForSolve(); err != nil {
		return err
	}
	m, err := pipeline.Load(ctx, opts)
	if err != nil {
		return err
	}

	model, err := newStepModel(m, opts, interval)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if sm, ok := final.(StepModel); ok && sm.Searcher.Done() {
		res := sm.Searcher.Result()
		if res.Found {
			printSuccess("Reached %s after %d steps", m.Goal(), sm.Searcher.Steps())
		} else {
			printError("No path from %s to %s", m.Start(), m.Goal())
		}
		printStats(res.Len(), len(res.Explored), 0, false)
	}
	return nil
}

// =============================================================================
// StepModel - Interactive search stepping
// =============================================================================

type tickMsg time.Time

// StepModel is the bubbletea model that drives a search one step per key
// press or tick.
type StepModel struct {
	Maze     *maze.Maze
	Opts     pipeline.Options
	Searcher *pipeline.Searcher
	Last     search.Event[maze.Point, maze.Action]
	Playing  bool
	Interval time.Duration
	Err      error
}

func newStepModel(m *maze.Maze, opts pipeline.Options, interval time.Duration) (StepModel, error) {
	s, err := pipeline.NewSearcher(m, opts)
	if err != nil {
		return StepModel{}, err
	}
	if interval <= 0 {
		interval = defaultStepInterval
	}
	return StepModel{Maze: m, Opts: opts, Searcher: s, Interval: interval}, nil
}

func (m StepModel) Init() tea.Cmd {
	return nil
}

func (m StepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "n", "right":
			m.Playing = false
			m.step()
		case "e", "end":
			m.Playing = false
			for !m.Searcher.Done() && m.Err == nil {
				m.step()
			}
		case "p":
			if m.Searcher.Done() {
				return m, nil
			}
			m.Playing = !m.Playing
			if m.Playing {
				return m, m.tick()
			}
		case "r":
			s, err := pipeline.NewSearcher(m.Maze, m.Opts)
			if err != nil {
				m.Err = err
				return m, nil
			}
			m.Searcher = s
			m.Last = search.Event[maze.Point, maze.Action]{}
			m.Playing = false
			m.Err = nil
		}
	case tickMsg:
		if !m.Playing {
			return m, nil
		}
		m.step()
		if m.Searcher.Done() || m.Err != nil {
			m.Playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *StepModel) step() {
	ev, err := m.Searcher.Step()
	if err != nil {
		m.Err = err
		return
	}
	m.Last = ev
}

func (m StepModel) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m StepModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s search", m.Searcher.Algorithm().Title())
	if m.Opts.Heuristic != "" {
		title += " · " + m.Opts.Heuristic
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.grid())
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space step  p play/pause  e end  r restart  q quit"))
	b.WriteString("\n")

	return b.String()
}

// grid draws the maze with the search state laid over it. The path wins
// over everything except the endpoints.
func (m StepModel) grid() string {
	frontier := make(map[maze.Point]bool)
	for _, p := range m.Searcher.FrontierStates() {
		frontier[p] = true
	}
	path := make(map[maze.Point]bool)
	for _, p := range m.Searcher.Result().States() {
		path[p] = true
	}
	var current maze.Point
	hasCurrent := m.Last.Node != nil
	if hasCurrent {
		current = m.Last.Node.State()
	}

	var b strings.Builder
	for row := 0; row < m.Maze.Height(); row++ {
		for col := 0; col < m.Maze.Width(); col++ {
			p := maze.Point{Row: row, Col: col}
			switch {
			case m.Maze.Wall(p):
				b.WriteString(cellWallStyle.Render("█"))
			case p == m.Maze.Start():
				b.WriteString(cellEndpointStyle.Render("A"))
			case p == m.Maze.Goal():
				b.WriteString(cellEndpointStyle.Render("B"))
			case path[p]:
				b.WriteString(cellPathStyle.Render("*"))
			case hasCurrent && p == current:
				b.WriteString(cellCurrentStyle.Render("@"))
			case frontier[p]:
				b.WriteString(cellFrontierStyle.Render("○"))
			case m.Searcher.IsExplored(p):
				b.WriteString(cellExploredStyle.Render("·"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m StepModel) status() string {
	s := m.Searcher
	line := fmt.Sprintf("step %d · explored %d · frontier %d · %s",
		s.Steps(), len(s.ExploredStates()), len(s.FrontierStates()), s.Status())

	switch {
	case m.Err != nil:
		return StyleError.Render("error: " + m.Err.Error())
	case s.Status() == search.StatusGoalFound:
		return StyleSuccess.Render(fmt.Sprintf("%s · path %d", line, s.Result().Len()))
	case s.Status() == search.StatusExhausted:
		return StyleError.Render(line + " · no path")
	case m.Playing:
		return StyleWarning.Render(line + " · playing")
	}
	return StyleValue.Render(line)
}
