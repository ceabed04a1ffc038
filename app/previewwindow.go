package app

import (
	"strconv"
	"strings"

	"github.com/colinmarc/skimmer/display"
)

// parsePreviewWindow parses a --preview-window spec such as "right:50%",
// "up:40%:+3" or "hidden" into a dock position, a percent (1-99) and a
// scroll-offset expression suitable for preview.Options.OffsetExpr.
func parsePreviewWindow(spec string) (display.PreviewPosition, int, string) {
	pos := display.PreviewRight
	percent := 50
	offset := ""

	if spec == "" {
		return pos, percent, offset
	}

	for _, part := range strings.Split(spec, ":") {
		switch {
		case part == "up" || part == "top":
			pos = display.PreviewUp
		case part == "down" || part == "bottom":
			pos = display.PreviewDown
		case part == "left":
			pos = display.PreviewLeft
		case part == "right":
			pos = display.PreviewRight
		case part == "hidden":
			pos = display.PreviewNone
		case strings.HasSuffix(part, "%"):
			if n, err := strconv.Atoi(strings.TrimSuffix(part, "%")); err == nil && n > 0 && n < 100 {
				percent = n
			}
		case strings.HasPrefix(part, "+"):
			offset = part
		}
	}
	return pos, percent, offset
}
