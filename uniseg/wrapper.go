// Package uniseg implements wiki.TextWrapper using Unicode grapheme
// segmentation and display widths from github.com/rivo/uniseg.
package uniseg

import (
	"strings"

	"github.com/gilgamesh1111/wiki"
	"github.com/rivo/uniseg"
)

// DefaultWidth is the line width used when none is configured.
const DefaultWidth = 70

var _ wiki.TextWrapper = (*Wrapper)(nil)

// Wrapper greedily fills words into lines no wider than Width terminal
// cells. Wide characters count as two cells. Runs of whitespace collapse
// to a single space. A Width of zero or less disables wrapping.
type Wrapper struct {
	Width int
}

// NewWrapper creates a new Wrapper with the given width.
func NewWrapper(width int) *Wrapper {
	return &Wrapper{Width: width}
}

// Wrap reflows text into lines separated by "\n" with no trailing newline.
func (w *Wrapper) Wrap(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if w.Width <= 0 {
		return strings.Join(words, " ")
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range words {
		wordWidth := uniseg.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth <= w.Width {
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + wordWidth
			continue
		}

		if lineWidth > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}

		// Words wider than a whole line are broken between grapheme clusters.
		for wordWidth > w.Width {
			var head string
			head, word = splitAt(word, w.Width)
			lines = append(lines, head)
			wordWidth = uniseg.StringWidth(word)
		}

		line.WriteString(word)
		lineWidth = wordWidth
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// splitAt returns the longest prefix of s that fits in width cells, and the
// remainder. The prefix always holds at least one grapheme cluster.
func splitAt(s string, width int) (head, tail string) {
	rest := s
	state := -1
	used := 0
	for len(rest) > 0 {
		_, next, clusterWidth, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if used > 0 && used+clusterWidth > width {
			break
		}
		used += clusterWidth
		rest, state = next, newState
	}
	return s[:len(s)-len(rest)], rest
}
