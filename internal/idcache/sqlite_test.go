package idcache

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreFreshIsEmpty(t *testing.T) {
	store := openTestSQLite(t)

	entries, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %v, want empty map", entries)
	}
}

func TestSQLiteStoreMergeUpserts(t *testing.T) {
	store := openTestSQLite(t)
	ctx := context.Background()

	if err := store.Merge(ctx, map[string]string{"q1": "p1", "q2": "p2"}); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := store.Merge(ctx, map[string]string{"q2": "p2b"}); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	entries, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries["q1"] != "p1" {
		t.Errorf("q1 = %q, want retained entry", entries["q1"])
	}
	if entries["q2"] != "p2b" {
		t.Errorf("q2 = %q, want overwritten entry", entries["q2"])
	}
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := store.Merge(ctx, map[string]string{"q1": "p1"}); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries["q1"] != "p1" {
		t.Errorf("got %v", entries)
	}
}
