package card

import "strings"

// Tier fixes the typography for a story length band. Longer stories get
// smaller fonts and tighter wrapping, bounding the worst-case card height.
type Tier struct {
	MaxWords   int
	BodySize   int
	LineHeight int
	MaxChars   int
	TitleSize  int
}

var tiers = []Tier{
	{MaxWords: 30, BodySize: 24, LineHeight: 34, MaxChars: 34, TitleSize: 36},
	{MaxWords: 60, BodySize: 20, LineHeight: 30, MaxChars: 38, TitleSize: 32},
	{MaxWords: 100, BodySize: 17, LineHeight: 25, MaxChars: 42, TitleSize: 28},
	{MaxWords: -1, BodySize: 14, LineHeight: 21, MaxChars: 48, TitleSize: 26},
}

// TierFor selects the typography tier for a word count
func TierFor(wordCount int) Tier {
	for _, t := range tiers {
		if t.MaxWords < 0 || wordCount <= t.MaxWords {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Wrap splits text into greedy character-budget lines. A single word longer
// than maxChars passes through oversized rather than being split.
func Wrap(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(words)/4+1)
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) <= maxChars {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)

	return lines
}
