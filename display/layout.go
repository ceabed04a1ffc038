package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/colinmarc/skimmer/cellwidth"
	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/selectionmodel"
)

// PreviewPosition names which edge of the screen the preview pane is
// docked to. The zero value means no preview pane.
type PreviewPosition int

const (
	PreviewNone PreviewPosition = iota
	PreviewUp
	PreviewDown
	PreviewLeft
	PreviewRight
)

// Options configures the overall frame layout, set once from the parsed
// CLI flags (--reverse, --header, --preview-window, --tabstop, ...).
type Options struct {
	Reverse         bool
	HeaderLines     []string
	TabStop         uint64
	NoHscroll       bool
	PreviewPosition PreviewPosition
	PreviewPercent  int // 1-99; ignored when PreviewPosition is PreviewNone.
	Interactive     bool
	Prompt          string // query line prompt; defaults to "> " when empty.
	CmdPrompt       string // cmd-query line prompt; defaults to "c> " when empty.
}

// Frame is everything DrawFrame needs to render one tick.
type Frame struct {
	Store        *item.Store
	Results      []matcher.MatchResult
	Model        *selectionmodel.Model
	Status       StatusInfo
	PreviewLines []string
	PreviewLine  int
}

// DrawFrame renders one complete screen: the optional preview pane, the
// header lines, the ranked result list, the status line and the query (or
// cmd-query, in --interactive mode) line.
func DrawFrame(screen tcell.Screen, palette *Palette, opts Options, frame Frame) {
	screen.Clear()
	sizer := cellwidth.New(opts.TabStop)
	screenWidth, screenHeight := screen.Size()
	if screenWidth == 0 || screenHeight == 0 {
		return
	}

	mainX, mainY, mainW, mainH := 0, 0, screenWidth, screenHeight
	if opts.PreviewPosition != PreviewNone {
		mainX, mainY, mainW, mainH = layoutWithPreview(screen, sizer, palette, opts, frame, screenWidth, screenHeight)
	}

	drawMainPane(screen, sizer, palette, opts, frame, mainX, mainY, mainW, mainH)
}

func layoutWithPreview(screen tcell.Screen, sizer *cellwidth.Sizer, palette *Palette, opts Options, frame Frame, screenWidth, screenHeight int) (x, y, w, h int) {
	percent := opts.PreviewPercent
	if percent <= 0 || percent >= 100 {
		percent = 50
	}

	switch opts.PreviewPosition {
	case PreviewUp:
		previewH := screenHeight * percent / 100
		previewRegion := NewScreenRegion(screen, 0, 0, screenWidth, previewH)
		DrawPreview(previewRegion, sizer, palette, frame.PreviewLines, frame.PreviewLine)
		borderRegion := NewScreenRegion(screen, 0, previewH, screenWidth, 1)
		DrawHorizontalBorder(borderRegion, palette)
		return 0, previewH + 1, screenWidth, screenHeight - previewH - 1
	case PreviewDown:
		previewH := screenHeight * percent / 100
		mainH := screenHeight - previewH - 1
		borderRegion := NewScreenRegion(screen, 0, mainH, screenWidth, 1)
		DrawHorizontalBorder(borderRegion, palette)
		previewRegion := NewScreenRegion(screen, 0, mainH+1, screenWidth, previewH)
		DrawPreview(previewRegion, sizer, palette, frame.PreviewLines, frame.PreviewLine)
		return 0, 0, screenWidth, mainH
	case PreviewLeft:
		previewW := screenWidth * percent / 100
		previewRegion := NewScreenRegion(screen, 0, 0, previewW, screenHeight)
		DrawPreview(previewRegion, sizer, palette, frame.PreviewLines, frame.PreviewLine)
		borderRegion := NewScreenRegion(screen, previewW, 0, 1, screenHeight)
		DrawVerticalBorder(borderRegion, palette)
		return previewW + 1, 0, screenWidth - previewW - 1, screenHeight
	case PreviewRight:
		previewW := screenWidth * percent / 100
		mainW := screenWidth - previewW - 1
		borderRegion := NewScreenRegion(screen, mainW, 0, 1, screenHeight)
		DrawVerticalBorder(borderRegion, palette)
		previewRegion := NewScreenRegion(screen, mainW+1, 0, previewW, screenHeight)
		DrawPreview(previewRegion, sizer, palette, frame.PreviewLines, frame.PreviewLine)
		return 0, 0, mainW, screenHeight
	default:
		return 0, 0, screenWidth, screenHeight
	}
}

func drawMainPane(screen tcell.Screen, sizer *cellwidth.Sizer, palette *Palette, opts Options, frame Frame, x, y, w, h int) {
	if h <= 0 || w <= 0 {
		return
	}

	queryRows := 1
	if opts.Interactive {
		queryRows = 2
	}
	headerRows := len(opts.HeaderLines)

	statusRow, queryRow, headerRow, listRow, listHeight := 0, 0, 0, 0, 0
	listHeight = h - 1 - queryRows - headerRows
	if listHeight < 0 {
		listHeight = 0
	}

	if opts.Reverse {
		// --layout=reverse: prompt and status pinned to the top, list fills
		// downward below them.
		queryRow = y
		statusRow = queryRow + queryRows
		headerRow = statusRow + 1
		listRow = headerRow + headerRows
	} else {
		// Default layout: list fills from the top, prompt and status
		// pinned to the bottom.
		headerRow = y
		listRow = headerRow + headerRows
		statusRow = listRow + listHeight
		queryRow = statusRow + 1
	}

	for i, line := range opts.HeaderLines {
		region := NewScreenRegion(screen, x, headerRow+i, w, 1)
		region.Clear()
		drawStringNoWrap(region, sizer, line, 0, 0, palette.StyleForHeader())
	}

	listRegion := NewScreenRegion(screen, x, listRow, w, listHeight)
	hscroll := DrawResultList(listRegion, sizer, palette, frame.Store, frame.Results, frame.Model, ResultListOptions{NoHscroll: opts.NoHscroll})

	status := frame.Status
	status.HscrollCol = hscroll
	statusRegion := NewScreenRegion(screen, x, statusRow, w, 1)
	DrawStatusBar(statusRegion, sizer, palette, status)

	prompt := opts.Prompt
	if prompt == "" {
		prompt = "> "
	}
	cmdPrompt := opts.CmdPrompt
	if cmdPrompt == "" {
		cmdPrompt = "c> "
	}

	queryRegion := NewScreenRegion(screen, x, queryRow, w, 1)
	DrawQueryLine(queryRegion, sizer, palette, prompt, frame.Model.Query)

	if opts.Interactive {
		cmdQueryRegion := NewScreenRegion(screen, x, queryRow+1, w, 1)
		DrawQueryLine(cmdQueryRegion, sizer, palette, cmdPrompt, frame.Model.CmdQuery)
	}
}
