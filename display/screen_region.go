package display

import "github.com/gdamore/tcell/v2"

// ScreenRegion draws to a rectangular region of a screen, translating
// region-relative coordinates into absolute ones and clipping anything
// outside its bounds.
type ScreenRegion struct {
	screen              tcell.Screen
	x, y, width, height int
}

// NewScreenRegion defines a new rectangular region within a screen.
func NewScreenRegion(screen tcell.Screen, x, y, width, height int) *ScreenRegion {
	return &ScreenRegion{screen, x, y, width, height}
}

// Resize changes the region's dimensions in place.
func (r *ScreenRegion) Resize(width, height int) {
	r.width, r.height = width, height
}

// Clear resets the region to blank cells in the default style.
func (r *ScreenRegion) Clear() {
	r.Fill(' ', tcell.StyleDefault)
}

// Fill sets every cell in the region to c styled with style.
func (r *ScreenRegion) Fill(c rune, style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.SetContent(x, y, c, nil, style)
		}
	}
}

// SetContent sets one cell, relative to the region's origin. Coordinates
// outside the region are ignored.
func (r *ScreenRegion) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(r.x+x, r.y+y, mainc, combc, style)
}

// GetContent returns the contents of one cell, relative to the region's
// origin.
func (r *ScreenRegion) GetContent(x, y int) (mainc rune, combc []rune, style tcell.Style, width int) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0, nil, tcell.StyleDefault, 0
	}
	return r.screen.GetContent(r.x+x, r.y+y)
}

// SetStyleInCell sets the style of a cell without changing its content.
func (r *ScreenRegion) SetStyleInCell(x, y int, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	mainc, combc, _, _ := r.GetContent(x, y)
	r.SetContent(x, y, mainc, combc, style)
}

// HideCursor prevents the cursor from being displayed.
func (r *ScreenRegion) HideCursor() {
	r.screen.HideCursor()
}

// ShowCursor positions the cursor, relative to the region's origin. A
// position outside the region hides the cursor instead.
func (r *ScreenRegion) ShowCursor(x, y int) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		r.HideCursor()
		return
	}
	r.screen.ShowCursor(r.x+x, r.y+y)
}

// Size returns the width and height of the region.
func (r *ScreenRegion) Size() (width int, height int) {
	return r.width, r.height
}
