package display

import (
	"github.com/colinmarc/skimmer/cellwidth"
	"github.com/colinmarc/skimmer/selectionmodel"
)

// DrawQueryLine draws a single-line prompt and its edit buffer, with the
// cursor positioned at the buffer's cursor rune. Used for both the query
// line and, in --interactive mode, the cmd-query line.
func DrawQueryLine(sr *ScreenRegion, sizer *cellwidth.Sizer, palette *Palette, prompt string, buf *selectionmodel.EditBuffer) {
	sr.Clear()

	col := drawStringNoWrap(sr, sizer, prompt, 0, 0, palette.StyleForQueryPrompt())

	text := buf.Text()
	runes := []rune(text)
	width, _ := sr.Size()
	avail := width - col

	visible := runes
	offset := 0
	if int(sizer.StringWidth(text)) > avail {
		visible, offset = truncateElided(sizer, runes, buf.Cursor(), avail)
	}

	end := drawStringNoWrap(sr, sizer, string(visible), col, 0, palette.StyleForQueryText())

	cursorCol := col
	if offset > 0 {
		cursorCol += len(elision)
	}
	for i := offset; i < buf.Cursor() && i < len(runes); i++ {
		cursorCol += int(sizer.GraphemeClusterWidth([]rune{runes[i]}, uint64(cursorCol)))
	}
	if cursorCol > end {
		cursorCol = end
	}
	sr.ShowCursor(cursorCol, 0)
}
