package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory db: %v", err)
	}
	store := NewStore(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := store.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	val, ok, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || val != "" {
		t.Errorf("Missing key should report absent, got %q ok=%v", val, ok)
	}
}

func TestSetGetDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyToken, "abc"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, ok, err := store.Get(ctx, KeyToken)
	if err != nil || !ok || val != "abc" {
		t.Fatalf("Expected abc, got %q ok=%v err=%v", val, ok, err)
	}

	if err := store.Delete(ctx, KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, KeyToken); ok {
		t.Error("Deleted key should report absent")
	}
}

func TestSetOverwritesExistingValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyNotifications, "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, KeyNotifications, "false"); err != nil {
		t.Fatalf("Second set failed: %v", err)
	}

	val, ok, err := store.Get(ctx, KeyNotifications)
	if err != nil || !ok {
		t.Fatalf("Get failed: %v ok=%v", err, ok)
	}
	if val != "false" {
		t.Errorf("Expected the last write to win, got %q", val)
	}
}
