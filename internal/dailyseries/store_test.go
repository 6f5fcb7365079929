package dailyseries

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewStore(db.Conn(), zerolog.Nop())
}

func TestStore_AddAndLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	daily, err := store.IsDailySeries(ctx, 71663)
	if err != nil {
		t.Fatalf("IsDailySeries() error = %v", err)
	}
	if daily {
		t.Error("unknown series should not be daily")
	}

	if err := store.Add(ctx, 71663, "The Late Show"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	daily, err = store.IsDailySeries(ctx, 71663)
	if err != nil {
		t.Fatalf("IsDailySeries() error = %v", err)
	}
	if !daily {
		t.Error("added series should be daily")
	}
}

func TestStore_RemoveAndAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []int{100, 200, 300} {
		if err := store.Add(ctx, id, ""); err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
	}

	if err := store.Remove(ctx, 200); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	ids, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != 100 || ids[1] != 300 {
		t.Errorf("All() = %v, want [100 300]", ids)
	}
}
