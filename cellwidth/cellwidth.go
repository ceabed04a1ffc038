// Package cellwidth computes the number of terminal cells a rune or
// grapheme cluster occupies, for tab expansion, horizontal scroll
// centering, and preview-pane wrapping.
package cellwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sizer determines the cell width of grapheme clusters for a fixed tab size.
type Sizer struct {
	tabSize uint64
}

// New constructs a Sizer with the given tab stop size.
func New(tabSize uint64) *Sizer {
	if tabSize == 0 {
		tabSize = 8
	}
	return &Sizer{tabSize: tabSize}
}

// RuneWidth returns the display width of a single rune, outside of any
// tab-expansion context. Used for quick per-rune accounting (e.g. match
// position highlighting) where grapheme clustering is unnecessary.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// GraphemeClusterWidth returns the width in cells of a grapheme cluster.
// Tab width depends on offsetInLine so that characters after a tab line up
// at even multiples of the tab size.
func (s *Sizer) GraphemeClusterWidth(gc []rune, offsetInLine uint64) uint64 {
	if len(gc) == 0 {
		return 0
	}

	if gc[0] == '\t' {
		nextTabPosition := ((offsetInLine / s.tabSize) + 1) * s.tabSize
		return nextTabPosition - offsetInLine
	}

	// tcell sizes cells using rivo/uniseg since v2.11, so match it here.
	return uint64(uniseg.StringWidth(string(gc)))
}

// StringWidth returns the total display width of a string, expanding tabs
// as if the string started at column 0.
func (s *Sizer) StringWidth(str string) uint64 {
	var width uint64
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		width += s.GraphemeClusterWidth(gr.Runes(), width)
	}
	return width
}
