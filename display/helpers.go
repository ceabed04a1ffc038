package display

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/colinmarc/skimmer/cellwidth"
)

// drawStringNoWrap draws s starting at (col, row), clipped to the region's
// width, and returns the column just past the last cell written.
func drawStringNoWrap(sr *ScreenRegion, sizer *cellwidth.Sizer, s string, col, row int, style tcell.Style) int {
	maxWidth, _ := sr.Size()
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		gc := gr.Runes()
		w := sizer.GraphemeClusterWidth(gc, uint64(col))
		if uint64(col)+w > uint64(maxWidth) {
			break
		}
		drawGraphemeCluster(sr, col, row, gc, int(w), style)
		col += int(w)
	}
	return col
}

func drawGraphemeCluster(sr *ScreenRegion, col, row int, gc []rune, width int, style tcell.Style) {
	start := col
	if unicode.IsSpace(gc[0]) {
		for col == start || col < start+width {
			sr.SetContent(col, row, ' ', nil, style)
			col++
		}
		return
	}
	sr.SetContent(col, row, gc[0], gc[1:], style)
}

const elision = ".."

// truncateElided shortens runes to fit within width cells, replacing
// clipped text on either side with ".." while keeping the grapheme at
// focusRune inside the visible window. It returns the visible runes and
// the index into the original slice that they start at. Used to center a
// row's first match position when the row is wider than its pane
// (hscroll).
func truncateElided(sizer *cellwidth.Sizer, runes []rune, focusRune, width int) (visible []rune, offset int) {
	if width <= 0 || len(runes) == 0 {
		return nil, 0
	}

	cum := make([]int, len(runes)+1)
	for i, r := range runes {
		cum[i+1] = cum[i] + int(sizer.GraphemeClusterWidth([]rune{r}, uint64(cum[i])))
	}
	total := cum[len(runes)]
	if total <= width {
		return runes, 0
	}

	if focusRune < 0 {
		focusRune = 0
	}
	if focusRune > len(runes) {
		focusRune = len(runes)
	}
	focusPos := cum[focusRune]

	startWidth := focusPos - width/2
	if startWidth < 0 {
		startWidth = 0
	}
	if startWidth > total-width {
		startWidth = total - width
	}
	endWidth := startWidth + width

	startIdx := indexAtOrAboveWidth(cum, startWidth)
	endIdx := indexAtOrAboveWidth(cum, endWidth)

	leftElided := startIdx > 0
	rightElided := endIdx < len(runes)

	budget := width
	if leftElided {
		budget -= len(elision)
	}
	if rightElided {
		budget -= len(elision)
	}
	if budget < 0 {
		budget = 0
	}

	for cum[endIdx]-cum[startIdx] > budget && endIdx > startIdx {
		switch {
		case endIdx-1 >= focusRune:
			endIdx--
			rightElided = true
		case startIdx+1 <= focusRune:
			startIdx++
			leftElided = true
		default:
			endIdx--
		}
	}

	var b strings.Builder
	if leftElided {
		b.WriteString(elision)
	}
	b.WriteString(string(runes[startIdx:endIdx]))
	if rightElided {
		b.WriteString(elision)
	}
	return []rune(b.String()), startIdx
}

// indexAtOrAboveWidth returns the smallest index i such that cum[i] >= w.
func indexAtOrAboveWidth(cum []int, w int) int {
	for i, c := range cum {
		if c >= w {
			return i
		}
	}
	return len(cum) - 1
}
