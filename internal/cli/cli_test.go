package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/render"
)

const (
	smallMaze     = "A  #\n#  B\n"
	walledOffMaze = "A# \n # \n #B\n"
)

// runCLI executes the root command with args and returns what it printed.
// Config and cache live in temporary directories.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveText(t *testing.T) {
	path := writeMaze(t, smallMaze)

	out, err := runCLI(t, "solve", path, "-a", "bfs")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "A* █\n█**B\n") {
		t.Errorf("output missing the solved maze:\n%s", out)
	}
	if !strings.Contains(out, "Found a path with bfs") {
		t.Errorf("output missing success line:\n%s", out)
	}
	if !strings.Contains(out, "4 steps") || !strings.Contains(out, "5 explored") {
		t.Errorf("output missing stats:\n%s", out)
	}
}

func TestSolvePNGFile(t *testing.T) {
	path := writeMaze(t, smallMaze)
	outPath := filepath.Join(t.TempDir(), "solved.png")

	out, err := runCLI(t, "solve", path, "-f", "png", "-o", outPath, "--no-cache")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output file is not a PNG")
	}
	if !strings.Contains(out, outPath) {
		t.Errorf("output should list %s:\n%s", outPath, out)
	}
}

func TestSolveNoSolution(t *testing.T) {
	path := writeMaze(t, walledOffMaze)

	out, err := runCLI(t, "solve", path, "--no-cache")
	if !errs.Is(err, errs.ErrCodeNoSolution) {
		t.Fatalf("err = %v, want NO_SOLUTION", err)
	}
	if !strings.Contains(out, "No path") {
		t.Errorf("output missing failure line:\n%s", out)
	}
	if !strings.Contains(out, "3 explored") {
		t.Errorf("output missing explored count:\n%s", out)
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		code errs.Code
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"solve", filepath.Join(t.TempDir(), "nope.txt")}
			},
			code: errs.ErrCodeFileNotFound,
		},
		{
			name: "bad algorithm",
			args: func(t *testing.T) []string {
				return []string{"solve", writeMaze(t, smallMaze), "-a", "dijkstra"}
			},
			code: errs.ErrCodeInvalidAlgorithm,
		},
		{
			name: "bad heuristic",
			args: func(t *testing.T) []string {
				return []string{"solve", writeMaze(t, smallMaze), "--heuristic", "chebyshev"}
			},
			code: errs.ErrCodeInvalidHeuristic,
		},
		{
			name: "bad format",
			args: func(t *testing.T) []string {
				return []string{"solve", writeMaze(t, smallMaze), "-f", "pdf"}
			},
			code: errs.ErrCodeInvalidFormat,
		},
		{
			name: "two starts",
			args: func(t *testing.T) []string {
				return []string{"solve", writeMaze(t, "AA B\n")}
			},
			code: errs.ErrCodeInvalidMaze,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args(t)...)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := runCLI(t, "generate", "--width", "3", "--height", "2", "--seed", "7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := runCLI(t, "generate", "--width", "3", "--height", "2", "--seed", "7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different mazes:\n%s\n%s", first, second)
	}

	lines := strings.Split(strings.TrimRight(first, "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("got %d rows, want 5", len(lines))
	}
	if !strings.Contains(first, "A") || !strings.Contains(first, "B") {
		t.Errorf("maze has no endpoints:\n%s", first)
	}
}

func TestGenerateRejectsLargeMaze(t *testing.T) {
	_, err := runCLI(t, "generate", "--width", "1000", "--height", "1000")
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestCompareTable(t *testing.T) {
	path := writeMaze(t, smallMaze)

	out, err := runCLI(t, "compare", path)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"Algorithm", "dfs", "bfs", "greedy", "astar", "manhattan"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestCompareSubset(t *testing.T) {
	path := writeMaze(t, smallMaze)

	out, err := runCLI(t, "compare", path, "--algorithms", "bfs,a*")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if strings.Contains(out, "dfs") || strings.Contains(out, "greedy") {
		t.Errorf("table lists algorithms that were not asked for:\n%s", out)
	}

	if _, err := runCLI(t, "compare", path, "--algorithms", "bfs,ucs"); !errs.Is(err, errs.ErrCodeInvalidAlgorithm) {
		t.Errorf("err = %v, want INVALID_ALGORITHM", err)
	}
}

func TestConfigCommands(t *testing.T) {
	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"[search]", `algorithm = "astar"`, "[cache]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}

	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(cfgPath, []byte("[search]\nalgorithm = \"bfs\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = runCLI(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show --config: %v", err)
	}
	if !strings.Contains(out, `algorithm = "bfs"`) {
		t.Errorf("config file not applied:\n%s", out)
	}
}

func TestConfigDrivesSolveDefaults(t *testing.T) {
	path := writeMaze(t, smallMaze)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[search]\nalgorithm = \"dfs\"\n[cache]\nbackend = \"none\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--config", cfgPath, "solve", path)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "Found a path with dfs") {
		t.Errorf("configured algorithm not used:\n%s", out)
	}
}

func TestCachePath(t *testing.T) {
	out, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "mazes/small.txt", "mazes/small"},
		{"", "-", appName},
		{"out.png", "maze.txt", "out"},
		{"out", "maze.txt", "out"},
		{"out.backup", "maze.txt", "out.backup"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	input := filepath.Join(t.TempDir(), "maze.txt")
	written, err := writeArtifacts(artifactWriteParams{
		artifacts: map[render.Format][]byte{
			render.FormatText: []byte("A*B\n"),
			render.FormatJSON: []byte("{}"),
		},
		formats: []render.Format{render.FormatText, render.FormatJSON},
		input:   input,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if buf.String() != "A*B\n" {
		t.Errorf("stdout = %q, want the text artifact", buf.String())
	}

	wantJSON := strings.TrimSuffix(input, ".txt") + ".json"
	if len(written) != 1 || written[0] != wantJSON {
		t.Fatalf("written = %v, want [%s]", written, wantJSON)
	}
	if data, _ := os.ReadFile(wantJSON); string(data) != "{}" {
		t.Errorf("json file = %q", data)
	}
}

func TestWriteArtifactsMissingFormat(t *testing.T) {
	_, err := writeArtifacts(artifactWriteParams{
		artifacts: map[render.Format][]byte{},
		formats:   []render.Format{render.FormatSVG},
		output:    filepath.Join(t.TempDir(), "x.svg"),
	})
	if err == nil {
		t.Error("expected an error for an artifact that was not rendered")
	}
}
