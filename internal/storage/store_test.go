package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockStoreSpec implements ValidatingSpec for testing FileStore
type mockStoreSpec struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (s *mockStoreSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func writeAsset(t *testing.T, dir, id string, spec *mockStoreSpec) {
	t.Helper()

	asset := Asset[*mockStoreSpec]{
		Version:    1,
		Identifier: id,
		Spec:       spec,
	}
	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("marshaling test asset: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, id+".json"), data, 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
}

func TestNewFileStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "path", store.path, tmpDir)
	testutil.AssertEqual(t, "records length", len(store.records), 0)
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*mockStoreSpec]("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewFileStore_WithExistingAssets(t *testing.T) {
	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "item-1", &mockStoreSpec{Name: "First", Value: 1})
	writeAsset(t, tmpDir, "item-2", &mockStoreSpec{Name: "Second", Value: 2})

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.records), 2)

	item1 := store.Get("item-1")
	if item1 == nil {
		t.Fatal("expected item-1 to be loaded")
	}
	testutil.AssertEqual(t, "item-1 name", item1.Name, "First")
	testutil.AssertEqual(t, "item-1 value", item1.Value, 1)
}

func TestNewFileStore_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "bad.json"), []byte(`{invalid json`), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if _, err := NewFileStore[*mockStoreSpec](tmpDir); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNewFileStore_SpecValidationFailure(t *testing.T) {
	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "bad-spec", &mockStoreSpec{Value: 1})

	if _, err := NewFileStore[*mockStoreSpec](tmpDir); err == nil {
		t.Error("expected error for spec validation failure")
	}
}

func TestNewFileStore_DuplicateKeys(t *testing.T) {
	tmpDir := t.TempDir()

	// Same identifier under two filenames.
	for _, file := range []string{"a.json", "b.json"} {
		asset := Asset[*mockStoreSpec]{
			Version:    1,
			Identifier: "dup",
			Spec:       &mockStoreSpec{Name: "Dup"},
		}
		data, _ := json.Marshal(asset)
		if err := os.WriteFile(filepath.Join(tmpDir, file), data, 0644); err != nil {
			t.Fatalf("writing test file: %v", err)
		}
	}

	if _, err := NewFileStore[*mockStoreSpec](tmpDir); err == nil {
		t.Error("expected duplicate key error")
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := NewFileStore[*mockStoreSpec](t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestStaticStore(t *testing.T) {
	store, err := NewStaticStore(map[string]*mockStoreSpec{
		"one": {Name: "One", Value: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "get name", store.Get("one").Name, "One")
	testutil.AssertEqual(t, "get all count", len(store.GetAll()), 1)
	if store.Get("missing") != nil {
		t.Error("expected nil for missing id")
	}
}

func TestStaticStore_ValidationFailure(t *testing.T) {
	_, err := NewStaticStore(map[string]*mockStoreSpec{
		"bad": {Value: 1},
	})
	if err == nil {
		t.Error("expected validation error")
	}
}
