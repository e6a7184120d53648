// Package store keeps finished solve reports so they can be fetched and
// re-rendered later by ID.
//
// This package defines the [Store] interface with three backends:
//   - memory: in-process map for tests and single-instance servers
//   - file: one JSON file per run, for the CLI and small deployments
//   - mongo: a MongoDB collection for shared deployments
//
// A store holds outputs only. It never holds search state, so a stored run
// cannot be resumed; it can only be read, listed, rendered or deleted.
//
// # Usage
//
//	s := store.NewMemoryStore()
//	if err := s.Save(ctx, &rep); err != nil {
//	    return err
//	}
//	// rep.ID and rep.CreatedAt are now set
//	got, err := s.Get(ctx, rep.ID)
//	if errors.Is(err, store.ErrNotFound) {
//	    // unknown run
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mazesearch/pkg/report"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// DefaultListLimit caps List when the caller passes no limit.
const DefaultListLimit = 50

// Store is the interface for run storage backends.
type Store interface {
	// Save stores r. An empty ID is replaced by a new UUID and a zero
	// CreatedAt by the current time; both are written back to r.
	// Saving an existing ID replaces the stored run.
	Save(ctx context.Context, r *report.Report) error

	// Get returns the run with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (report.Report, error)

	// List returns up to limit runs, newest first.
	List(ctx context.Context, limit int) ([]report.Report, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases the backend's resources.
	Close() error
}

// NewID returns a new run ID.
func NewID() string {
	return uuid.NewString()
}

// stamp assigns the ID and creation time of a run about to be saved.
func stamp(r *report.Report) {
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
}

// validID reports whether id has the shape NewID produces. Backends that
// turn IDs into paths or queries reject anything else as not found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
