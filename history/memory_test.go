package history

import (
	"context"
	"testing"
)

func TestMemoryStore_New(t *testing.T) {
	t.Parallel()

	ms := NewMemoryStore[string]()

	if ms == nil {
		t.Fatal("Store should not be nil")
	}

	var _ Store[string] = ms
}

func TestMemoryStore_BasicOperations(t *testing.T) {
	t.Parallel()

	t.Run("save and load", func(t *testing.T) {
		t.Parallel()

		ms := NewMemoryStore[string]()
		ctx := context.Background()

		snapshot := NewSnapshot("before refactor", "graph-v1")

		if err := ms.Save(ctx, snapshot); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}
		if snapshot.Version != 1 {
			t.Errorf("Version should be assigned on save, got %d", snapshot.Version)
		}

		loaded, err := ms.Load(ctx, snapshot.ID)
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}

		if loaded.ID != snapshot.ID {
			t.Errorf("ID mismatch: got %s, want %s", loaded.ID, snapshot.ID)
		}
		if loaded.Name != "before refactor" {
			t.Errorf("Name mismatch: got %s", loaded.Name)
		}
		if loaded.State != "graph-v1" {
			t.Errorf("State mismatch: got %s", loaded.State)
		}
	})

	t.Run("load missing returns error", func(t *testing.T) {
		t.Parallel()

		ms := NewMemoryStore[string]()

		_, err := ms.Load(context.Background(), "does-not-exist")
		if err == nil {
			t.Error("Expected error for missing snapshot")
		}
	})

	t.Run("list is ordered by version", func(t *testing.T) {
		t.Parallel()

		ms := NewMemoryStore[string]()
		ctx := context.Background()

		first := NewSnapshot("first", "s1")
		second := NewSnapshot("second", "s2")
		third := NewSnapshot("third", "s3")

		for _, s := range []*Snapshot[string]{first, second, third} {
			if err := ms.Save(ctx, s); err != nil {
				t.Fatalf("Failed to save: %v", err)
			}
		}

		all, err := ms.List(ctx)
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(all))
		}
		for i, want := range []string{"first", "second", "third"} {
			if all[i].Name != want {
				t.Errorf("Position %d: got %s, want %s", i, all[i].Name, want)
			}
			if all[i].Version != i+1 {
				t.Errorf("Position %d: version %d, want %d", i, all[i].Version, i+1)
			}
		}
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		ms := NewMemoryStore[string]()
		ctx := context.Background()

		snapshot := NewSnapshot("temp", "s")
		if err := ms.Save(ctx, snapshot); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		if err := ms.Delete(ctx, snapshot.ID); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}
		if _, err := ms.Load(ctx, snapshot.ID); err == nil {
			t.Error("Deleted snapshot should not load")
		}
		if err := ms.Delete(ctx, snapshot.ID); err == nil {
			t.Error("Deleting a missing snapshot should error")
		}
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		ms := NewMemoryStore[string]()
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if err := ms.Save(ctx, NewSnapshot("s", "state")); err != nil {
				t.Fatalf("Failed to save: %v", err)
			}
		}

		if err := ms.Clear(ctx); err != nil {
			t.Fatalf("Failed to clear: %v", err)
		}

		all, err := ms.List(ctx)
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		if len(all) != 0 {
			t.Errorf("Expected empty store, got %d snapshots", len(all))
		}
	})
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	t.Parallel()

	ms := NewMemoryStore[string]()
	ctx := context.Background()

	snapshot := NewSnapshot("original", "state")
	if err := ms.Save(ctx, snapshot); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := ms.Load(ctx, snapshot.ID)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	loaded.Name = "tampered"

	again, err := ms.Load(ctx, snapshot.ID)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if again.Name != "original" {
		t.Errorf("Stored snapshot was mutated through a loaded copy")
	}
}

func TestNewSnapshot_FreshIDs(t *testing.T) {
	t.Parallel()

	a := NewSnapshot("a", 1)
	b := NewSnapshot("b", 2)

	if a.ID == b.ID {
		t.Error("Snapshot ids should be unique")
	}
	if a.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}
