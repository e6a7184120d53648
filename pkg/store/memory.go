package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/mazesearch/pkg/report"
)

// MemoryStore keeps runs in a map. Contents are lost on exit.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]report.Report
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]report.Report)}
}

func (s *MemoryStore) Save(ctx context.Context, r *report.Report) error {
	stamp(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = *r
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	if !ok {
		return report.Report{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]report.Report, error) {
	s.mu.RLock()
	runs := make([]report.Report, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	s.mu.RUnlock()

	sortNewestFirst(runs)
	if n := limitOrDefault(limit); len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// sortNewestFirst orders runs by creation time, newest first, breaking ties
// by ID so listings are stable.
func sortNewestFirst(runs []report.Report) {
	slices.SortFunc(runs, func(a, b report.Report) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

var _ Store = (*MemoryStore)(nil)
