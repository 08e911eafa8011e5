package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextBlock is measured multi-line text anchored at its top-left
type TextBlock struct {
	X, Y  float64
	W, H  float64
	Lines []string
}

// MeasureText sizes text by terminal cell width per line
func MeasureText(text string, m Metrics) TextBlock {
	if text == "" {
		return TextBlock{}
	}
	lines := strings.Split(text, "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, runewidth.StringWidth(l))
	}
	return TextBlock{
		W:     float64(cols) * m.CellWidth,
		H:     float64(len(lines)) * m.CellHeight,
		Lines: lines,
	}
}
