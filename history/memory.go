package history

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store implementation. It is safe for
// concurrent readers, although a session dispatches from a single
// goroutine.
type MemoryStore[S any] struct {
	mu          sync.RWMutex
	snapshots   map[string]*Snapshot[S]
	nextVersion int
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore[S any]() *MemoryStore[S] {
	return &MemoryStore[S]{
		snapshots:   make(map[string]*Snapshot[S]),
		nextVersion: 1,
	}
}

var _ Store[any] = (*MemoryStore[any])(nil)

// Save stores a snapshot, assigning the next version.
func (m *MemoryStore[S]) Save(_ context.Context, snapshot *Snapshot[S]) error {
	if snapshot == nil {
		return fmt.Errorf("nil snapshot")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *snapshot
	stored.Version = m.nextVersion
	m.nextVersion++
	m.snapshots[stored.ID] = &stored
	snapshot.Version = stored.Version
	return nil
}

// Load retrieves a snapshot by id.
func (m *MemoryStore[S]) Load(_ context.Context, id string) (*Snapshot[S], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot, ok := m.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("snapshot %q not found", id)
	}

	copied := *snapshot
	return &copied, nil
}

// List returns all snapshots ordered by version.
func (m *MemoryStore[S]) List(_ context.Context) ([]*Snapshot[S], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Snapshot[S], 0, len(m.snapshots))
	for _, snapshot := range m.snapshots {
		copied := *snapshot
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Delete removes a snapshot by id.
func (m *MemoryStore[S]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.snapshots[id]; !ok {
		return fmt.Errorf("snapshot %q not found", id)
	}
	delete(m.snapshots, id)
	return nil
}

// Clear removes all snapshots.
func (m *MemoryStore[S]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots = make(map[string]*Snapshot[S])
	return nil
}
