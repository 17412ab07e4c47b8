package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "examdeck-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSQLiteStoreGetSetDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	if err := store.Set(ctx, "1-1day", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "1-1day")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "true" {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := store.Set(ctx, "1-1day", "false"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get(ctx, "1-1day")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got != "false" {
		t.Fatalf("expected overwritten value, got %q", got)
	}

	if err := store.Delete(ctx, "1-1day"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "1-1day"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestSQLiteStoreKeysByPrefix(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	seed := map[string]string{
		"1-1day":               "true",
		"1-1hour":              "true",
		"12-1day":              "true",
		"notificationSettings": "{}",
	}
	for key, value := range seed {
		if err := store.Set(ctx, key, value); err != nil {
			t.Fatalf("seed %q: %v", key, err)
		}
	}

	keys, err := store.Keys(ctx, "1-")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "1-1day" || keys[1] != "1-1hour" {
		t.Fatalf("unexpected prefix match: %#v", keys)
	}

	all, err := store.Keys(ctx, "")
	if err != nil {
		t.Fatalf("all keys: %v", err)
	}
	if len(all) != len(seed) {
		t.Fatalf("expected %d keys, got %d", len(seed), len(all))
	}
}

func TestOpenSQLiteMigratesOnOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "examdeck.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set on freshly opened store: %v", err)
	}
}
