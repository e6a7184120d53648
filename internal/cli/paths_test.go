package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mazesearch/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestLocalCacheDirPrefersConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(os.Stderr, LogInfo)
	c.Config = config.Default()
	c.Config.Cache.Dir = "/srv/mazesearch-cache"

	dir, err := c.localCacheDir()
	if err != nil {
		t.Fatalf("localCacheDir() error: %v", err)
	}
	if dir != "/srv/mazesearch-cache" {
		t.Errorf("localCacheDir() = %q, want the configured dir", dir)
	}
}
