package card

import (
	"strings"
	"testing"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		words    int
		bodySize int
	}{
		{0, 24},
		{30, 24},
		{31, 20},
		{60, 20},
		{61, 17},
		{100, 17},
		{101, 14},
		{500, 14},
	}

	for _, tt := range tests {
		tier := TierFor(tt.words)
		if tier.BodySize != tt.bodySize {
			t.Errorf("TierFor(%d): body size = %d, want %d", tt.words, tier.BodySize, tt.bodySize)
		}
	}
}

func TestWrapRespectsBudget(t *testing.T) {
	text := "To the world you are a mother but to our family you are a superhero every single day"
	lines := Wrap(text, 34)

	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	for _, line := range lines {
		if len(line) > 34 {
			t.Errorf("line %q exceeds budget: %d chars", line, len(line))
		}
	}

	// Rejoining must reproduce the original word sequence
	joined := strings.Join(lines, " ")
	if joined != text {
		t.Errorf("rejoined text differs:\n got %q\nwant %q", joined, text)
	}
}

func TestWrapShortStoryFitsOneLine(t *testing.T) {
	lines := Wrap("You are my superhero mom", 34)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
}

func TestWrapOversizedWordPassesThrough(t *testing.T) {
	long := strings.Repeat("a", 50)
	lines := Wrap("short "+long+" tail", 34)

	found := false
	for _, line := range lines {
		if line == long {
			found = true
		}
	}
	if !found {
		t.Errorf("oversized word should occupy its own line: %v", lines)
	}
}

func TestWrapEmpty(t *testing.T) {
	if lines := Wrap("   ", 34); lines != nil {
		t.Errorf("expected nil for blank input, got %v", lines)
	}
}
