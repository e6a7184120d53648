// Package cli implements the mazesearch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazesearch/pkg/buildinfo"
	"github.com/matzehuels/mazesearch/pkg/cache"
	"github.com/matzehuels/mazesearch/pkg/config"
	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
	"github.com/matzehuels/mazesearch/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mazesearch"

	// backendTimeout bounds connecting to Redis or MongoDB.
	backendTimeout = 10 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs. Commands read their
	// defaults from it; flags override.
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mazesearch solves grid mazes with DFS, BFS, greedy best-first and A*",
		Long:         `Mazesearch finds a path from A to B through a text maze with one of four search strategies, and shows how each strategy explores the maze.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/mazesearch/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.stepCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	for _, cmd := range root.Commands() {
		registerFlagCompletions(cmd)
	}

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.Config.Cache.Backend == config.CacheRedis {
		// A Redis instance may be shared with other applications.
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
	}
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	runner.TTL = c.Config.Cache.TTL.Duration
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		ctx, cancel := context.WithTimeout(ctx, backendTimeout)
		defer cancel()
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: c.Config.Cache.RedisAddr,
			DB:   c.Config.Cache.RedisDB,
		})
	}

	dir, err := c.localCacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore opens the run store named in the server config.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	switch c.Config.Server.Store {
	case config.StoreFile:
		dir := c.Config.Server.StoreDir
		if dir == "" {
			var err error
			if dir, err = store.DefaultDir(); err != nil {
				return nil, fmt.Errorf("get store dir: %w", err)
			}
		}
		return store.NewFileStore(dir)
	case config.StoreMongo:
		ctx, cancel := context.WithTimeout(ctx, backendTimeout)
		defer cancel()
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      c.Config.Server.MongoURI,
			Database: c.Config.Server.MongoDatabase,
		})
	}
	return store.NewMemoryStore(), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mazesearch/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions builds pipeline options from the loaded config. Flags are
// applied on top by each command.
func (c *CLI) baseOptions() pipeline.Options {
	cfg := c.Config
	return pipeline.Options{
		Algorithm:       cfg.Search.Algorithm,
		Heuristic:       cfg.Search.Heuristic,
		Formats:         cfg.Render.Formats,
		CellSize:        cfg.Render.CellSize,
		Explored:        cfg.Render.Explored,
		HeuristicLabels: cfg.Render.HeuristicLabels,
		Color:           cfg.Render.Color,
		Logger:          c.Logger,
	}
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string keeps the configured formats.
func parseFormats(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}
	return strings.Split(s, ",")
}

// readMaze reads maze text from path, or from stdin when path is "-".
func readMaze(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if err := errs.ValidatePath(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", errs.Wrap(errs.ErrCodeFileNotFound, err, "maze file %s not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("read maze %s: %w", path, err)
	}
	return string(data), nil
}
