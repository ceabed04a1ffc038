package display

import (
	"github.com/colinmarc/skimmer/cellwidth"
	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/selectionmodel"
)

// ResultListOptions configures how DrawResultList lays out one frame.
type ResultListOptions struct {
	NoHscroll bool
	Reverse   bool // --tac / --layout=reverse: draw top-to-bottom as given, without re-flipping.
}

// DrawResultList draws up to region's height rows of results, ranked view
// results[0] first, honoring the cursor, the multi-select set and Scroll
// from model, and highlighting match positions. It returns the cursor row's
// horizontal scroll offset (0 if the cursor isn't on a visible row, or
// NoHscroll is set), for the status line to report.
func DrawResultList(sr *ScreenRegion, sizer *cellwidth.Sizer, palette *Palette, store *item.Store, results []matcher.MatchResult, model *selectionmodel.Model, opts ResultListOptions) int {
	_, height := sr.Size()
	if height <= 0 {
		return 0
	}

	cursorHscroll := 0
	visible, cursorRow := visibleWindow(results, model.Cursor, model.Scroll, height)
	for row, res := range visible {
		it, ok := store.At(res.ItemIndex)
		if !ok {
			continue
		}
		isCursor := row == cursorRow
		isSelected := model.Selected.Contains(res.ItemIndex)
		rowRegion := NewScreenRegion(sr.screen, sr.x, sr.y+row, sr.width, 1)
		offset := drawResultRow(rowRegion, sizer, palette, it, res, isCursor, isSelected, opts)
		if isCursor {
			cursorHscroll = offset
		}
	}
	return cursorHscroll
}

// visibleWindow slices results to the rows visible with the given scroll
// offset and reports which row (if any) the cursor lands on.
func visibleWindow(results []matcher.MatchResult, cursor, scroll, height int) ([]matcher.MatchResult, int) {
	if len(results) == 0 {
		return nil, -1
	}
	if scroll < 0 {
		scroll = 0
	}
	if scroll > len(results) {
		scroll = len(results)
	}
	end := scroll + height
	if end > len(results) {
		end = len(results)
	}
	cursorRow := cursor - scroll
	if cursorRow < 0 || cursorRow >= end-scroll {
		cursorRow = -1
	}
	return results[scroll:end], cursorRow
}

// drawResultRow draws one row and returns the horizontal scroll offset (in
// runes) it elided up to, for DrawResultList to report back for the cursor
// row.
func drawResultRow(sr *ScreenRegion, sizer *cellwidth.Sizer, palette *Palette, it item.Item, res matcher.MatchResult, isCursor, isSelected bool, opts ResultListOptions) int {
	sr.Clear()

	col := 0
	marker := ' '
	markerStyle := palette.StyleForRow(isSelected, isCursor)
	if isCursor {
		marker = '>'
	}
	sr.SetContent(col, 0, marker, nil, markerStyle)
	col++

	if isSelected {
		sr.SetContent(col, 0, '>', nil, palette.StyleForSelectedMarker())
	}
	col++

	runes := []rune(it.Display)
	width, _ := sr.Size()
	textWidth := width - col

	offset := 0
	displayRunes := runes
	if !opts.NoHscroll && len(res.Positions) > 0 {
		displayRunes, offset = truncateElided(sizer, runes, res.Positions[0], textWidth)
	}

	// Positions index the full display text; displayRunes starts with the
	// ".." marker whenever text was elided on the left (offset > 0).
	shift := offset
	if offset > 0 {
		shift -= len(elision)
	}
	matchSet := make(map[int]bool, len(res.Positions))
	for _, p := range res.Positions {
		if p >= offset {
			matchSet[p-shift] = true
		}
	}

	baseStyle := palette.StyleForRow(isSelected, isCursor)
	matchStyle := palette.StyleForMatch(isCursor)

	x := col
	for i, r := range displayRunes {
		style := baseStyle
		if matchSet[i] {
			style = matchStyle
		}
		w := int(sizer.GraphemeClusterWidth([]rune{r}, uint64(x)))
		drawGraphemeCluster(sr, x, 0, []rune{r}, w, style)
		x += w
		if x >= width {
			break
		}
	}
	return offset
}
