package preview

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/reader"
)

// Options configures one preview render.
type Options struct {
	// Command is the template passed to --preview, with {}/{N}/{N..M}
	// placeholders.
	Command string

	// Delimiter splits the cursor row's candidate text into fields for
	// placeholder substitution (empty means whitespace runs).
	Delimiter string

	// OffsetExpr is the --preview-window scroll-offset expression
	// ("+N", "+{k}", "+{k}-N"), evaluated against the same row.
	OffsetExpr string

	Env []string
}

// Result is a rendered preview: plain-text lines (ANSI stripped) and the
// scroll offset the pane should start at.
type Result struct {
	Lines      []string
	ScrollLine int
}

// Render expands opts.Command against it, runs it to completion, and
// splits its stdout into lines for display.
func Render(ctx context.Context, it item.Item, opts Options) (Result, error) {
	cmd := ExpandPlaceholders(opts.Command, it.Candidate, opts.Delimiter)

	out, err := runAndCaptureOutput(ctx, cmd, opts.Env)
	if err != nil {
		return Result{}, errors.Wrap(err, "preview.Render")
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		plain, _ := reader.StripANSI(line)
		lines = append(lines, plain)
	}

	scroll := ParseOffset(opts.OffsetExpr, it.Candidate, opts.Delimiter)
	if scroll == 0 && opts.OffsetExpr == "" {
		scroll = scrollFromLocation(it.Candidate)
	}
	return Result{Lines: lines, ScrollLine: scroll}, nil
}

// scrollFromLocation auto-scrolls the preview to the line number embedded
// in a grep -n / ripgrep --vimgrep style candidate ("path:line:snippet" or
// "path:line:col:snippet"), so browsing search-tool output previews the
// matched line directly rather than the top of the file. Returns 0 when
// the candidate doesn't parse as exactly one such location.
func scrollFromLocation(candidate string) int {
	locs, err := fileLocationsFromLines(strings.NewReader(candidate))
	if err != nil || len(locs) != 1 {
		return 0
	}
	line := locs[0].lineNum - 1
	if line < 0 {
		return 0
	}
	return line
}
