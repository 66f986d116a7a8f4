package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	if _, ok := s.Get("missing"); ok {
		t.Error("Get on empty store reported a hit")
	}
	if err := s.Set("cv_draft_1", `{"title":"draft"}`); err != nil {
		t.Fatal(err)
	}
	v, ok := s.Get("cv_draft_1")
	if !ok || v != `{"title":"draft"}` {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if err := s.Delete("cv_draft_1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("cv_draft_1"); ok {
		t.Error("key survived Delete")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("cv_draft_7", "payload"); err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Get("cv_draft_7"); !ok || v != "payload" {
		t.Errorf("Get = %q, %v", v, ok)
	}

	// A fresh store over the same file sees the flushed data.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := reopened.Get("cv_draft_7"); !ok || v != "payload" {
		t.Errorf("reopened Get = %q, %v", v, ok)
	}

	if err := reopened.Delete("cv_draft_7"); err != nil {
		t.Fatal(err)
	}
	again, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := again.Get("cv_draft_7"); ok {
		t.Error("deleted key survived reopen")
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "drafts.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("draft file not written: %v", err)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Fatal("expected error for corrupt draft file")
	}
}
