package famdash

import (
	"strings"

	"golang.org/x/image/font"
)

// wrapText splits s into lines no wider than maxWidth pixels, breaking on
// word boundaries. A single word wider than maxWidth gets its own line and
// is left to clip horizontally. Empty input yields one empty line so blank
// spacer lines keep their height.
func wrapText(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
