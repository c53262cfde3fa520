package state_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/remake/internal/adapters/state"
	"golang.org/x/sync/errgroup"
)

func TestStore_CloneRoundTrip(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if _, ok := store.Clone("x.txt"); ok {
		t.Fatal("expected no clone for fresh store")
	}

	if err := store.PutClone("x.txt", "x.txt.orig"); err != nil {
		t.Fatalf("PutClone failed: %v", err)
	}

	clone, ok := store.Clone("x.txt")
	if !ok {
		t.Fatal("expected clone to be registered")
	}
	if clone != "x.txt.orig" {
		t.Errorf("expected clone x.txt.orig, got %q", clone)
	}

	if err := store.DeleteClone("x.txt"); err != nil {
		t.Fatalf("DeleteClone failed: %v", err)
	}
	if _, ok := store.Clone("x.txt"); ok {
		t.Error("expected clone to be gone after delete")
	}

	// Deleting a registration that does not exist is a no-op.
	if err := store.DeleteClone("y.txt"); err != nil {
		t.Errorf("DeleteClone on missing entry failed: %v", err)
	}
}

func TestStore_BuiltHashRoundTrip(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if _, ok := store.BuiltHash("x.txt_append"); ok {
		t.Fatal("expected no hash for fresh store")
	}

	if err := store.PutBuiltHash("x.txt_append", "abc123"); err != nil {
		t.Fatalf("PutBuiltHash failed: %v", err)
	}

	hash, ok := store.BuiltHash("x.txt_append")
	if !ok || hash != "abc123" {
		t.Errorf("expected hash abc123, got %q (ok=%v)", hash, ok)
	}

	if err := store.DeleteBuiltHash("x.txt_append"); err != nil {
		t.Fatalf("DeleteBuiltHash failed: %v", err)
	}
	if _, ok := store.BuiltHash("x.txt_append"); ok {
		t.Error("expected hash to be gone after delete")
	}
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store1, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	if err := store1.PutClone("x.txt", "x.txt.orig"); err != nil {
		t.Fatalf("PutClone failed: %v", err)
	}
	if err := store1.PutBuiltHash("x.txt_append", "abc123"); err != nil {
		t.Fatalf("PutBuiltHash failed: %v", err)
	}

	// A fresh instance pointed at the same file sees the state.
	store2, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	clone, ok := store2.Clone("x.txt")
	if !ok || clone != "x.txt.orig" {
		t.Errorf("expected persisted clone x.txt.orig, got %q (ok=%v)", clone, ok)
	}
	hash, ok := store2.BuiltHash("x.txt_append")
	if !ok || hash != "abc123" {
		t.Errorf("expected persisted hash abc123, got %q (ok=%v)", hash, ok)
	}
}

func TestStore_WriteThrough(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	// Every mutation hits the disk without an explicit Flush.
	if err := store.PutClone("x.txt", "x.txt.orig"); err != nil {
		t.Fatalf("PutClone failed: %v", err)
	}

	//nolint:gosec // Test file with controlled path
	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var onDisk struct {
		Clones map[string]string `json:"clones"`
		Built  map[string]string `json:"built"`
	}
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if onDisk.Clones["x.txt"] != "x.txt.orig" {
		t.Errorf("expected clone on disk, got %v", onDisk.Clones)
	}
}

func TestStore_Clear(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.PutClone("x.txt", "x.txt.orig"); err != nil {
		t.Fatalf("PutClone failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, ok := store.Clone("x.txt"); ok {
		t.Error("expected clone to be gone after clear")
	}
	if _, err := os.Stat(storePath); !os.IsNotExist(err) {
		t.Errorf("expected database file to be removed, stat err: %v", err)
	}

	// Clearing an already empty store is a no-op.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty store failed: %v", err)
	}
}

func TestStore_Flush(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".remake", "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if _, err := os.Stat(storePath); err != nil {
		t.Errorf("expected database file after flush, stat err: %v", err)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := state.NewStore(storePath); err == nil {
		t.Fatal("expected error for corrupt database file")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			path := fmt.Sprintf("file%d.txt", i)
			if err := store.PutClone(path, path+".orig"); err != nil {
				return err
			}
			if err := store.PutBuiltHash(path+"_key", "hash"); err != nil {
				return err
			}
			_, _ = store.Clone(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent access failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		path := fmt.Sprintf("file%d.txt", i)
		if clone, ok := store.Clone(path); !ok || clone != path+".orig" {
			t.Errorf("expected clone for %s, got %q (ok=%v)", path, clone, ok)
		}
	}
}
