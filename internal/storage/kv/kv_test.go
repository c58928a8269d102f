package kv

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	want := sample{Name: "mood", Count: 3}
	if err := store.Put("mood_2024-12-16", want); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	var got sample
	if err := store.Get("mood_2024-12-16", &got); err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestFileStoreGetMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	var got sample
	if err := store.Get("absent", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreMalformedValueSurfacesError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	path := filepath.Join(dir, url.PathEscape("communityPosts")+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed malformed file: %v", err)
	}

	var got []sample
	if err := store.Get("communityPosts", &got); err == nil {
		t.Fatal("expected decode error for malformed value")
	}
}

func TestFileStoreOverwriteIsLastWriteWins(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	if err := store.Put("mood_2024-12-16", sample{Name: "okay"}); err != nil {
		t.Fatalf("Put err: %v", err)
	}
	if err := store.Put("mood_2024-12-16", sample{Name: "good"}); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	var got sample
	if err := store.Get("mood_2024-12-16", &got); err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Name != "good" {
		t.Fatalf("expected overwritten value, got %q", got.Name)
	}
}

func TestFileStoreKeysPrefix(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	for _, key := range []string{"mood_2024-12-14", "mood_2024-12-16", "darkMode"} {
		if err := store.Put(key, sample{}); err != nil {
			t.Fatalf("Put %s err: %v", key, err)
		}
	}

	keys, err := store.Keys("mood_")
	if err != nil {
		t.Fatalf("Keys err: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 mood keys, got %v", keys)
	}
	if keys[0] != "mood_2024-12-14" || keys[1] != "mood_2024-12-16" {
		t.Fatalf("keys not sorted chronologically: %v", keys)
	}
}

func TestFileStoreDeleteAbsentKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	if err := store.Delete("never-written"); err != nil {
		t.Fatalf("Delete of absent key should be a no-op, got %v", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "mindcare.db"))
	if err != nil {
		t.Fatalf("OpenSQLite err: %v", err)
	}
	defer store.Close()

	want := sample{Name: "transcript", Count: 7}
	if err := store.Put("ai_chat_history", want); err != nil {
		t.Fatalf("Put err: %v", err)
	}
	if err := store.Put("ai_chat_history", sample{Name: "transcript", Count: 8}); err != nil {
		t.Fatalf("Put overwrite err: %v", err)
	}

	var got sample
	if err := store.Get("ai_chat_history", &got); err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Count != 8 {
		t.Fatalf("expected upserted value, got %+v", got)
	}

	keys, err := store.Keys("ai_")
	if err != nil {
		t.Fatalf("Keys err: %v", err)
	}
	if len(keys) != 1 || keys[0] != "ai_chat_history" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestOpenSelectsFileBackendByDefault(t *testing.T) {
	store, err := Open("file", t.TempDir())
	if err != nil {
		t.Fatalf("Open err: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("expected *FileStore, got %T", store)
	}
}
