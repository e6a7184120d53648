// Package config loads the mazesearch configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/mazesearch/config.toml
// (falling back to ~/.config/mazesearch/config.toml). Every key is optional;
// missing keys keep the values of [Default]. Command-line flags override
// the file.
//
//	[search]
//	algorithm = "astar"
//	heuristic = "manhattan"
//
//	[render]
//	formats = ["txt", "png"]
//	cell_size = 40
//	explored = true
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	store = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mazesearch/pkg/cache"
	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/render"
	"github.com/matzehuels/mazesearch/pkg/search"
)

const appName = "mazesearch"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreMongo  = "mongo"
)

// Config is the whole configuration file.
type Config struct {
	Search SearchConfig `toml:"search"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	Algorithm string `toml:"algorithm"`
	Heuristic string `toml:"heuristic"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	Formats         []string `toml:"formats"`
	CellSize        int      `toml:"cell_size"`
	Explored        bool     `toml:"explored"`
	HeuristicLabels bool     `toml:"heuristic_labels"`
	Color           bool     `toml:"color"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir,omitempty"`
	RedisAddr string   `toml:"redis_addr,omitempty"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	Store          string   `toml:"store"`
	StoreDir       string   `toml:"store_dir,omitempty"`
	MongoURI       string   `toml:"mongo_uri,omitempty"`
	MongoDatabase  string   `toml:"mongo_database"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Algorithm: string(search.AStar),
			Heuristic: maze.DefaultHeuristic,
		},
		Render: RenderConfig{
			Formats:  []string{string(render.FormatText)},
			CellSize: render.DefaultCellSize,
			Color:    true,
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			TTL:     Duration{cache.TTLSolve},
		},
		Server: ServerConfig{
			Addr:           ":8080",
			Store:          StoreMemory,
			MongoDatabase:  "mazesearch",
			RequestTimeout: Duration{30 * time.Second},
		},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path on top of Default. An empty path means the
// default location, where a missing file is not an error. An explicitly
// named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every named algorithm, heuristic, format and backend
// exists.
func (c Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("search.algorithm: %w", err)
	}
	if err := maze.ValidateHeuristic(c.Search.Heuristic); err != nil {
		return fmt.Errorf("search.heuristic: %w", err)
	}
	if _, err := render.ParseFormats(strings.Join(c.Render.Formats, ",")); err != nil {
		return fmt.Errorf("render.formats: %w", err)
	}
	if c.Render.CellSize < 0 {
		return errors.New("render.cell_size: must not be negative")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisAddr == "" {
		return errors.New("cache.redis_addr: required for the redis backend")
	}
	switch c.Server.Store {
	case StoreMemory, StoreFile, StoreMongo:
	default:
		return fmt.Errorf("server.store: unknown store %q (must be one of: memory, file, mongo)", c.Server.Store)
	}
	if c.Server.Store == StoreMongo && c.Server.MongoURI == "" {
		return errors.New("server.mongo_uri: required for the mongo store")
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
