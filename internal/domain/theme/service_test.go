package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"captain_early_riser", "captain-early-riser"},
		{"The_Economizer", "the-economizer"},
		{"Super Mom!", "super-mom"},
		{"  spaced  out  ", "spaced-out"},
		{"already-slugged", "already-slugged"},
		{"MiXeD_CaSe-123", "mixed-case-123"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func writeTemplate(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListDiscoversTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "captain_early_riser.png")
	writeTemplate(t, dir, "The_Economizer.png")
	writeTemplate(t, dir, "notes.txt")

	svc := NewService(dir, "/templates", time.Minute)
	themes := svc.List()

	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}
	// Lexicographic filename order: "The_..." sorts before "captain_..."
	if themes[0].ID != "the-economizer" || themes[1].ID != "captain-early-riser" {
		t.Errorf("unexpected theme order: %s, %s", themes[0].ID, themes[1].ID)
	}

	got, err := svc.Get("the-economizer")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "The Economizer" {
		t.Errorf("name = %q, want %q", got.Name, "The Economizer")
	}
	if got.TemplateURL != "/templates/The_Economizer.png" {
		t.Errorf("template url = %q", got.TemplateURL)
	}
	if !got.TemplateExists {
		t.Error("discovered theme should report an existing template")
	}
}

func TestGetUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "captain_early_riser.png")

	svc := NewService(dir, "/templates", time.Minute)
	if _, err := svc.Get("no-such-theme"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSlugCollisionFirstFileWins(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "super-mom.png")
	writeTemplate(t, dir, "super_mom.png")

	svc := NewService(dir, "/templates", time.Minute)
	themes := svc.List()

	if len(themes) != 1 {
		t.Fatalf("colliding slugs should collapse to one theme, got %d", len(themes))
	}
	// "super-mom.png" sorts before "super_mom.png"
	if themes[0].TemplateFile != "super-mom.png" {
		t.Errorf("first file should win, got %q", themes[0].TemplateFile)
	}
}

func TestListCachesScan(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "captain_early_riser.png")

	svc := NewService(dir, "/templates", time.Hour)
	if got := len(svc.List()); got != 1 {
		t.Fatalf("expected 1 theme, got %d", got)
	}

	// New files are invisible until the TTL lapses
	writeTemplate(t, dir, "new_hero.png")
	if got := len(svc.List()); got != 1 {
		t.Errorf("cached listing should not rescan, got %d themes", got)
	}

	svc.fetchedAt = time.Now().Add(-2 * time.Hour)
	if got := len(svc.List()); got != 2 {
		t.Errorf("expired cache should rescan, got %d themes", got)
	}
}

func TestListEmptyDirFallsBackToDefault(t *testing.T) {
	svc := NewService(t.TempDir(), "/templates", time.Minute)
	themes := svc.List()

	if len(themes) != 1 {
		t.Fatalf("expected the default theme, got %d themes", len(themes))
	}
	if themes[0].ID != DefaultThemeID {
		t.Errorf("id = %q, want %q", themes[0].ID, DefaultThemeID)
	}
	if themes[0].TemplateExists {
		t.Error("missing default template should be flagged")
	}
}

func TestResolveFallsBackToDefaultTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "captain_early_riser.png")

	svc := NewService(dir, "/templates", time.Minute)

	// Unknown id resolves to the default theme
	th, path, err := svc.Resolve("no-such-theme")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if th.ID != DefaultThemeID {
		t.Errorf("theme = %q, want default", th.ID)
	}
	if filepath.Base(path) != DefaultTemplateFile {
		t.Errorf("template path = %q", path)
	}
}

func TestResolveNoTemplatesAtAll(t *testing.T) {
	svc := NewService(t.TempDir(), "/templates", time.Minute)
	if _, _, err := svc.Resolve("anything"); err != ErrNoTemplate {
		t.Errorf("expected ErrNoTemplate, got %v", err)
	}
}
