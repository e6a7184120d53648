package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/mazesearch/pkg/report"
)

// FileStore is a file-based run store.
// Runs are stored as JSON files named after their ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based run store rooted at baseDir.
// If baseDir is empty, defaults to ~/.local/share/mazesearch/runs/
// (or $XDG_DATA_HOME/mazesearch/runs/).
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// DefaultDir returns the run directory used when none is configured.
func DefaultDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "mazesearch", "runs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "mazesearch", "runs"), nil
}

func (s *FileStore) runPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Save(ctx context.Context, r *report.Report) error {
	stamp(r)
	if !validID(r.ID) {
		return fmt.Errorf("save run: invalid id %q", r.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := report.WriteFile(*r, s.runPath(r.ID)); err != nil {
		return fmt.Errorf("write run file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (report.Report, error) {
	if !validID(id) {
		return report.Report{}, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := report.ReadFile(s.runPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return report.Report{}, ErrNotFound
	}
	if err != nil {
		return report.Report{}, fmt.Errorf("read run file: %w", err)
	}
	return r, nil
}

// List reads every run file. Unreadable files are skipped.
func (s *FileStore) List(ctx context.Context, limit int) ([]report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read run dir: %w", err)
	}

	runs := make([]report.Report, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := report.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		runs = append(runs, r)
	}

	sortNewestFirst(runs)
	if n := limitOrDefault(limit); len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.runPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove run file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for run files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
