package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPutAndExists(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Put(context.Background(), "a.jpg", strings.NewReader("data")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !s.Exists("a.jpg") {
		t.Error("stored file should exist")
	}
	if s.Exists("b.jpg") {
		t.Error("missing file should not exist")
	}
	if got := s.GetURL("a.jpg"); got != "/uploads/a.jpg" {
		t.Errorf("url = %q", got)
	}
}

func TestPathFlattensTraversal(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads")
	if err != nil {
		t.Fatal(err)
	}

	got := s.Path("../../etc/passwd")
	want := filepath.Join(dir, "passwd")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestCleanupExpired(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/results")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	s.Put(ctx, "old.jpg", strings.NewReader("old"))
	s.Put(ctx, "new.jpg", strings.NewReader("new"))

	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "old.jpg"), stale, stale); err != nil {
		t.Fatal(err)
	}

	n, err := s.CleanupExpired(24 * time.Hour)
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d files, want 1", n)
	}
	if s.Exists("old.jpg") {
		t.Error("stale file should be gone")
	}
	if !s.Exists("new.jpg") {
		t.Error("fresh file should survive")
	}
}

func TestListSorted(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/results")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	s.Put(ctx, "b.jpg", strings.NewReader("b"))
	s.Put(ctx, "a.jpg", strings.NewReader("a"))

	files, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files", len(files))
	}
	if files[0].Name != "a.jpg" || files[1].Name != "b.jpg" {
		t.Errorf("unexpected order: %v", files)
	}
}
