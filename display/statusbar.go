package display

import (
	"fmt"

	"github.com/colinmarc/skimmer/cellwidth"
)

// spinnerFrames animates while the Reader or Matcher is running.
var spinnerFrames = []rune{'-', '\\', '|', '/'}

// StatusInfo carries the values DrawStatusBar renders: spinner, counts,
// cursor position and horizontal scroll column, per
// "spinner? match_count/item_count [selected_count] item_cursor/hscroll_offset[.]".
// Finished marks that the matcher has scored every item against the current
// query with nothing left in flight; DrawStatusBar appends a trailing "."
// to signal that the counts are final.
type StatusInfo struct {
	Spinning    bool
	SpinnerTick int
	MatchCount  int
	ItemCount   int
	SelectCount int
	ItemCursor  int
	HscrollCol  int
	Finished    bool
}

// DrawStatusBar draws the single-line status field.
func DrawStatusBar(sr *ScreenRegion, sizer *cellwidth.Sizer, palette *Palette, info StatusInfo) {
	sr.Clear()

	col := 0
	if info.Spinning {
		r := spinnerFrames[info.SpinnerTick%len(spinnerFrames)]
		sr.SetContent(col, 0, r, nil, palette.StyleForSpinner())
	}
	col = 2

	text := fmt.Sprintf("%d/%d", info.MatchCount, info.ItemCount)
	if info.SelectCount > 0 {
		text += fmt.Sprintf(" [%d]", info.SelectCount)
	}
	text += fmt.Sprintf(" %d/%d", info.ItemCursor, info.HscrollCol)
	if info.Finished {
		text += "."
	}

	drawStringNoWrap(sr, sizer, text, col, 0, palette.StyleForStatus())
}
