package display

import (
	"strings"

	"github.com/colinmarc/skimmer/cellwidth"
)

// DrawPreview draws already-rendered preview lines (one per terminal row,
// ANSI already stripped into style runs by the preview package) starting
// at scrollLine. A thin border separates it from the rest of the frame.
func DrawPreview(sr *ScreenRegion, sizer *cellwidth.Sizer, palette *Palette, lines []string, scrollLine int) {
	sr.Clear()
	width, height := sr.Size()
	if width <= 0 || height <= 0 {
		return
	}

	if scrollLine < 0 {
		scrollLine = 0
	}
	if scrollLine > len(lines) {
		scrollLine = len(lines)
	}

	for row := 0; row < height && scrollLine+row < len(lines); row++ {
		line := strings.TrimRight(lines[scrollLine+row], "\r")
		drawStringNoWrap(sr, sizer, line, 0, row, palette.StyleForPreviewText())
	}
}

// DrawVerticalBorder draws a single-column divider, used between the
// result pane and a left/right preview pane.
func DrawVerticalBorder(sr *ScreenRegion, palette *Palette) {
	_, height := sr.Size()
	for row := 0; row < height; row++ {
		sr.SetContent(0, row, '│', nil, palette.StyleForPreviewBorder())
	}
}

// DrawHorizontalBorder draws a single-row divider, used between the
// result pane and a top/bottom preview pane.
func DrawHorizontalBorder(sr *ScreenRegion, palette *Palette) {
	width, _ := sr.Size()
	for col := 0; col < width; col++ {
		sr.SetContent(col, 0, '─', nil, palette.StyleForPreviewBorder())
	}
}
