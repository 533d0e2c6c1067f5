package card

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestPhoto(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "photo.jpg")
	img := imaging.New(800, 1000, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("write test photo: %v", err)
	}
	return path
}

func TestGenerateShortStory(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "card.jpg")

	res := NewGenerator().Generate(Request{
		ImagePath:  writeTestPhoto(t, dir),
		Story:      "To the world you are a mother superhero",
		OutputPath: out,
	})

	if res.Degraded {
		t.Fatal("expected a composed card, got fallback")
	}
	if res.Path != out {
		t.Errorf("result path = %q, want %q", res.Path, out)
	}
	if res.Width != 1200 {
		t.Errorf("width = %d, want 1200", res.Width)
	}
	if res.Height != 600 {
		t.Errorf("short story should use the height floor, got %d", res.Height)
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != res.Height {
		t.Errorf("output is %dx%d, want 1200x%d", b.Dx(), b.Dy(), res.Height)
	}
}

func TestGenerateLongStoryGrowsHeight(t *testing.T) {
	dir := t.TempDir()

	story := ""
	for i := 0; i < 150; i++ {
		story += "superhero "
	}

	res := NewGenerator().Generate(Request{
		ImagePath:  writeTestPhoto(t, dir),
		Story:      story,
		OutputPath: filepath.Join(dir, "card.jpg"),
	})

	if res.Degraded {
		t.Fatal("expected a composed card, got fallback")
	}
	if res.Height <= 600 {
		t.Errorf("150-word story should exceed the height floor, got %d", res.Height)
	}
	if res.Lines < 10 {
		t.Errorf("expected many wrapped lines, got %d", res.Lines)
	}
}

func TestGenerateDefaultStory(t *testing.T) {
	dir := t.TempDir()

	res := NewGenerator().Generate(Request{
		ImagePath:  writeTestPhoto(t, dir),
		Story:      "  ",
		OutputPath: filepath.Join(dir, "card.jpg"),
	})

	if res.Degraded {
		t.Fatal("blank story should fall back to the default text, not fail")
	}
	if res.Lines == 0 {
		t.Error("default story should produce at least one line")
	}
}

func TestGenerateGreetingLine(t *testing.T) {
	dir := t.TempDir()

	plain := NewGenerator().Generate(Request{
		ImagePath:  writeTestPhoto(t, dir),
		Story:      longStory(120),
		OutputPath: filepath.Join(dir, "plain.jpg"),
	})
	greeted := NewGenerator().Generate(Request{
		ImagePath:  writeTestPhoto(t, dir),
		Story:      longStory(120),
		OutputPath: filepath.Join(dir, "greeted.jpg"),
		Greeting:   &Greeting{Name: "Amina", Nickname: "Mama A"},
	})

	if plain.Degraded || greeted.Degraded {
		t.Fatal("expected composed cards")
	}
	if greeted.Height != plain.Height+40 {
		t.Errorf("greeting should add 40px: plain=%d greeted=%d", plain.Height, greeted.Height)
	}
}

func TestGenerateFallbackOnBadSource(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "notanimage.jpg")
	if err := os.WriteFile(src, []byte("not image data"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "card.jpg")

	res := NewGenerator().Generate(Request{
		ImagePath:  src,
		Story:      "hello",
		OutputPath: out,
	})

	if !res.Degraded {
		t.Fatal("expected degraded result for a corrupt source")
	}
	if res.Path != src {
		t.Errorf("degraded result should point at the source, got %q", res.Path)
	}
	// The fallback still copies the bytes so the output path exists
	if _, err := os.Stat(out); err != nil {
		t.Errorf("fallback copy missing: %v", err)
	}
}

func longStory(words int) string {
	s := ""
	for i := 0; i < words; i++ {
		s += "wonderful "
	}
	return s
}
