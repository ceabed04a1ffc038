package display

import "github.com/gdamore/tcell/v2"

// Palette controls the style of every displayed element.
type Palette struct {
	normalStyle       tcell.Style
	cursorRowStyle     tcell.Style
	matchStyle         tcell.Style
	cursorMatchStyle   tcell.Style
	selectedMarkerStyle tcell.Style
	headerStyle        tcell.Style
	borderStyle        tcell.Style
	spinnerStyle       tcell.Style
	statusStyle        tcell.Style
	queryPromptStyle   tcell.Style
	queryTextStyle     tcell.Style
	previewBorderStyle tcell.Style
	previewTextStyle   tcell.Style
}

// NewPalette returns the default style set.
func NewPalette() *Palette {
	s := tcell.StyleDefault
	return &Palette{
		normalStyle:         s,
		cursorRowStyle:      s.Bold(true),
		matchStyle:          s.Foreground(tcell.ColorGreen).Bold(true),
		cursorMatchStyle:    s.Foreground(tcell.ColorGreen).Bold(true).Underline(true),
		selectedMarkerStyle: s.Foreground(tcell.ColorYellow).Bold(true),
		headerStyle:         s.Dim(true),
		borderStyle:         s.Dim(true),
		spinnerStyle:        s.Foreground(tcell.ColorBlue).Bold(true),
		statusStyle:         s.Dim(true),
		queryPromptStyle:    s.Bold(true),
		queryTextStyle:      s,
		previewBorderStyle:  s.Dim(true),
		previewTextStyle:    s,
	}
}

func (p *Palette) StyleForRow(selected, cursor bool) tcell.Style {
	if cursor {
		return p.cursorRowStyle
	}
	return p.normalStyle
}

func (p *Palette) StyleForMatch(cursor bool) tcell.Style {
	if cursor {
		return p.cursorMatchStyle
	}
	return p.matchStyle
}

func (p *Palette) StyleForSelectedMarker() tcell.Style { return p.selectedMarkerStyle }
func (p *Palette) StyleForHeader() tcell.Style         { return p.headerStyle }
func (p *Palette) StyleForBorder() tcell.Style         { return p.borderStyle }
func (p *Palette) StyleForSpinner() tcell.Style        { return p.spinnerStyle }
func (p *Palette) StyleForStatus() tcell.Style         { return p.statusStyle }
func (p *Palette) StyleForQueryPrompt() tcell.Style    { return p.queryPromptStyle }
func (p *Palette) StyleForQueryText() tcell.Style      { return p.queryTextStyle }
func (p *Palette) StyleForPreviewBorder() tcell.Style  { return p.previewBorderStyle }
func (p *Palette) StyleForPreviewText() tcell.Style    { return p.previewTextStyle }
