package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	key, err := store.SaveSnapshot(context.Background(), []byte(`{"media":[]}`))
	if err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"media":[]}` {
		t.Errorf("unexpected content: %s", data)
	}
}

func TestLocalStorageRejectsEmptySnapshot(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}
	if _, err := store.SaveSnapshot(context.Background(), nil); err == nil {
		t.Error("expected error for empty snapshot")
	}
}

func TestLocalStorageHonoursCancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.SaveSnapshot(ctx, []byte("data")); err == nil {
		t.Error("expected error for cancelled context")
	}
}
