package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps plain text to the given display width. Words wider
// than the width are emitted on their own line rather than split.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	lineWidth := 0
	for i, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
			out.WriteString(word)
			lineWidth = w
		case lineWidth+1+w > width:
			out.WriteRune('\n')
			out.WriteString(word)
			lineWidth = w
		default:
			out.WriteRune(' ')
			out.WriteString(word)
			lineWidth += 1 + w
		}
	}
	return out.String()
}
