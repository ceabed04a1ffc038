// Package item implements the data model for a single candidate line and
// the append-only store that the Reader publishes into and the Matcher
// reads from.
package item

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is one input record after delimiter splitting. Items are immutable
// once constructed and carry a dense, zero-based index assigned by the
// store that owns them.
type Item struct {
	// Index is the position of this item in the ItemStore, assigned at
	// append time. Indices are dense and never reused.
	Index int

	// Raw is the bytes of the line (without its terminator). With --ansi,
	// these are the bytes left after escape sequences were stripped.
	Raw []byte

	// Display is the text shown in the result list, after --with-nth
	// projection. If no projection was configured, Display == Candidate.
	Display string

	// Candidate is the substring that participates in matching, after
	// --nth projection. If no projection was configured, Candidate is the
	// full line.
	Candidate string

	// Styles holds per-rune-offset ANSI styling extracted from the input
	// line when --ansi is set. Nil when ANSI parsing is disabled or the line carried
	// no escape sequences.
	Styles []StyleRun

	// Generation identifies which Reader run produced this item. The
	// Matcher discards items whose generation is stale relative to the
	// store's current generation.
	Generation uint64
}

// StyleRun describes a contiguous run of display runes sharing one SGR
// style, as extracted from embedded ANSI escape sequences.
type StyleRun struct {
	Start, End int // rune offsets into Display, [Start, End).
	Bold       bool
	Underline  bool
	Reverse    bool
	Fg, Bg     int32 // -1 when unset; otherwise a packed tcell color.
}

// New constructs an Item by applying delimiter-based field projections.
// nthRanges selects the candidate (match) text; withNthRanges selects the
// display text. Either may be nil, meaning "the whole line".
func New(index int, raw []byte, generation uint64, delim string, nthRanges, withNthRanges []FieldRange) Item {
	line := string(raw)
	it := Item{
		Index:      index,
		Raw:        raw,
		Display:    line,
		Candidate:  line,
		Generation: generation,
	}
	if len(nthRanges) > 0 {
		it.Candidate = projectFields(line, delim, nthRanges)
	}
	if len(withNthRanges) > 0 {
		it.Display = projectFields(line, delim, withNthRanges)
	}
	return it
}

// FieldRange is a 1-based, inclusive field range as used by --nth/--with-nth
// (e.g. "2", "3..", "..4", "2..4"). A zero Start or End of 0 means "open on
// that side" (start of fields / end of fields).
type FieldRange struct {
	Start, End int // End == 0 means "to the last field".
}

// ParseFieldRanges parses a comma-separated --nth/--with-nth spec such as
// "2,4..6,8..". Each comma-separated term is either a single field number
// or a ".."-joined range with either side optional.
func ParseFieldRanges(spec string) ([]FieldRange, error) {
	var ranges []FieldRange
	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		r, err := parseFieldRange(term)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseFieldRange(term string) (FieldRange, error) {
	if !strings.Contains(term, "..") {
		n, err := strconv.Atoi(term)
		if err != nil {
			return FieldRange{}, fmt.Errorf("item: invalid field range %q", term)
		}
		return FieldRange{Start: n, End: n}, nil
	}

	parts := strings.SplitN(term, "..", 2)
	var r FieldRange
	if parts[0] != "" {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return FieldRange{}, fmt.Errorf("item: invalid field range %q", term)
		}
		r.Start = n
	}
	if parts[1] != "" {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return FieldRange{}, fmt.Errorf("item: invalid field range %q", term)
		}
		r.End = n
	}
	return r, nil
}

func splitFields(line, delim string) []string {
	if delim == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, delim)
}

func projectFields(line, delim string, ranges []FieldRange) string {
	fields := splitFields(line, delim)
	sep := delim
	if sep == "" {
		sep = " "
	}

	var picked []string
	for _, r := range ranges {
		start := r.Start
		if start <= 0 {
			start = 1
		}
		end := r.End
		if end <= 0 || end > len(fields) {
			end = len(fields)
		}
		for i := start; i <= end && i <= len(fields); i++ {
			picked = append(picked, fields[i-1])
		}
	}
	return strings.Join(picked, sep)
}
