package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a named save point: one immutable state recorded at a
// specific moment.
type Snapshot[S any] struct {
	// ID uniquely identifies the snapshot.
	ID string

	// Name is the caller-supplied label shown in save-point pickers.
	Name string

	// State is the recorded state.
	State S

	// Timestamp is when the snapshot was taken.
	Timestamp time.Time

	// Version increases monotonically per store, for ordering.
	Version int
}

// NewSnapshot records a state under a fresh id. The version is assigned by
// the store on save.
func NewSnapshot[S any](name string, state S) *Snapshot[S] {
	return &Snapshot[S]{
		ID:        fmt.Sprintf("snapshot_%s", uuid.New().String()),
		Name:      name,
		State:     state,
		Timestamp: time.Now(),
	}
}

// Store persists snapshots for one editor session.
type Store[S any] interface {
	// Save stores a snapshot, assigning its version.
	Save(ctx context.Context, snapshot *Snapshot[S]) error

	// Load retrieves a snapshot by id.
	Load(ctx context.Context, id string) (*Snapshot[S], error)

	// List returns all snapshots ordered by version.
	List(ctx context.Context) ([]*Snapshot[S], error)

	// Delete removes a snapshot by id.
	Delete(ctx context.Context, id string) error

	// Clear removes all snapshots.
	Clear(ctx context.Context) error
}
